package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
)

// classificationSchema rejects anything that is not a mapping of item
// lists before the flexible field decoding runs. Price and description
// stay loose on purpose: the model sends numbers, comma strings, or
// nothing, and the normalizer decides.
const classificationSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"}
			}
		}
	}
}`

var schema = jsonschema.MustCompileString("classification.json", classificationSchema)

// ParseClassification decodes the model's output into a classified
// mapping. A surrounding markdown code fence is tolerated; any payload
// that is not a JSON mapping of item lists is rejected outright, never
// partially decoded.
func ParseClassification(raw string) (map[string][]menu.RawItem, error) {
	cleaned := stripFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty classification payload")
	}

	var generic interface{}
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return nil, fmt.Errorf("classification is not valid JSON: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("classification is not a mapping of item lists: %w", err)
	}

	var classified map[string][]menu.RawItem
	if err := json.Unmarshal([]byte(cleaned), &classified); err != nil {
		return nil, fmt.Errorf("classification decode failed: %w", err)
	}
	return classified, nil
}

// stripFence removes a wrapping ``` or ```json fence if present.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
