package assemble

import (
	"encoding/json"
	"fmt"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
)

// Document is one named output artifact ready for the sink.
type Document struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// Bundle is the full artifact set for one generation: the serialized
// documents plus the banner image paths the sink should pick up.
type Bundle struct {
	Documents []Document `json:"documents"`
	Images    []string   `json:"images,omitempty"`
}

// v1Document embeds the backend configuration the older platform
// version reads alongside the menu tree.
type v1Document struct {
	Restaurant Restaurant     `json:"restaurant"`
	QRMode     string         `json:"qrMode"`
	Banners    []string       `json:"banners"`
	Categories []v1Category   `json:"categories"`
	Menus      []string       `json:"menus"`
	Sections   []menu.Section `json:"sections"`
	Drinks     []menu.Section `json:"drinks"`
}

type v1Category struct {
	ID       int       `json:"id"`
	Name     menu.Name `json:"name"`
	TaxClass string    `json:"taxClass"`
	CourseID int       `json:"courseId"`
}

// v2Document carries only the menu substructure plus display behavior.
type v2Document struct {
	Menu    v2Menu    `json:"menu"`
	Display v2Display `json:"display"`
}

type v2Menu struct {
	Menus    []string       `json:"menus"`
	Sections []menu.Section `json:"sections"`
	Drinks   []menu.Section `json:"drinks"`
}

type v2Display struct {
	ShowDescriptions bool   `json:"showDescriptions"`
	ShowImages       bool   `json:"showImages"`
	Currency         string `json:"currency"`
}

// Assemble wraps one built MenuDocument into the requested variant's
// schema. It only re-wraps: section structure and article identifiers
// come through exactly as built.
func Assemble(doc menu.MenuDocument, meta Restaurant, v Variant) (Document, error) {
	stamped := doc.WithDescriptionMode(v.DescriptionAsBool)

	var (
		payload interface{}
		name    string
	)

	switch v.Name {
	case "v1":
		name = "menus.json"
		banners := meta.Banners
		if banners == nil {
			banners = []string{}
		}
		cats := make([]v1Category, 0, len(menu.Catalog()))
		for _, g := range menu.Catalog() {
			cats = append(cats, v1Category{ID: g.ID, Name: g.Name, TaxClass: g.TaxClass, CourseID: g.CourseID})
		}
		payload = v1Document{
			Restaurant: meta,
			QRMode:     meta.QRMode,
			Banners:    banners,
			Categories: cats,
			Menus:      []string{},
			Sections:   emptySections(stamped.Food),
			Drinks:     emptySections(stamped.Drinks),
		}
	case "v2":
		name = "articles.json"
		payload = v2Document{
			Menu: v2Menu{
				Menus:    []string{},
				Sections: emptySections(stamped.Food),
				Drinks:   emptySections(stamped.Drinks),
			},
			Display: v2Display{
				ShowDescriptions: true,
				Currency:         "EUR",
			},
		}
	default:
		return Document{}, fmt.Errorf("unknown document variant %q", v.Name)
	}

	var (
		data []byte
		err  error
	)
	if v.Compact {
		data, err = json.Marshal(payload)
	} else {
		data, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		return Document{}, fmt.Errorf("serialize %s: %w", name, err)
	}

	return Document{Name: name, Data: data}, nil
}

// emptySections keeps the wire shape stable: absent halves serialize as
// [] rather than null.
func emptySections(s []menu.Section) []menu.Section {
	if s == nil {
		return []menu.Section{}
	}
	return s
}
