package classify

import (
	"strings"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
)

// categoryKeys lists the only tags the model may use, taken straight from
// the catalog so the prompt can never drift from what the builder accepts.
func categoryKeys() []string {
	var keys []string
	for _, g := range menu.Catalog() {
		keys = append(keys, g.Keys...)
	}
	return keys
}

func BuildClassifyPrompt(menuText string) string {
	return `You are a data extraction engine for French restaurant menus.

Your task:
- Classify every menu line into one of the allowed categories.
- Output MUST be valid JSON.
- Output MUST be a single JSON object.
- Keys MUST be category names from the allowed list.
- Values MUST be arrays of items: {"name": string, "price": number, "description": string}.
- Omit the description field when the menu has none.
- Omit a category entirely when the menu has no item for it.
- Keep item order as it appears on the menu.
- NO explanations, NO markdown, NO extra text.

Allowed categories:
` + strings.Join(categoryKeys(), ", ") + `

MENU TEXT:
` + menuText
}
