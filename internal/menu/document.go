package menu

import (
	"encoding/json"
	"errors"
)

// Name is a bilingual display label as consumed by the ordering platform.
type Name struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

// Price carries the amount plus the platform's price-identifier slot,
// which is always empty for generated menus.
type Price struct {
	PriceID string  `json:"priceId"`
	Amount  float64 `json:"amount"`
}

// Descr is one localized description value. The ordering platform has two
// wire representations for "no description": the older menus document emits
// boolean false, the newer ones an empty string. AsBool selects which one
// this value serializes as; both are accepted on input.
type Descr struct {
	Text   string
	AsBool bool
}

func (d Descr) MarshalJSON() ([]byte, error) {
	if d.Text == "" && d.AsBool {
		return []byte("false"), nil
	}
	return json.Marshal(d.Text)
}

func (d *Descr) UnmarshalJSON(b []byte) error {
	if string(b) == "false" || string(b) == "null" {
		d.Text = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("description must be a string or false")
	}
	d.Text = s
	return nil
}

// BilingualDescr mirrors Name for descriptions. Generated menus carry the
// same text in both languages.
type BilingualDescr struct {
	FR Descr `json:"fr"`
	EN Descr `json:"en"`
}

// Article is the canonical output unit. Once built it is never mutated;
// the assembler only copies it when stamping a variant's description mode.
type Article struct {
	Name             Name           `json:"name"`
	ArticleID        string         `json:"articleId"`
	PosName          string         `json:"posName"`
	Price            Price          `json:"price"`
	Img              string         `json:"img"`
	Descr            BilingualDescr `json:"descr"`
	Allergens        Name           `json:"allergens"`
	Additional       Name           `json:"additional"`
	WinePairing      Name           `json:"wine_pairing"`
	Options          []string       `json:"options"`
	DefaultCourseID  int            `json:"defaultCourseId"`
	ChoicesForCourse []string       `json:"choicesForCourse"`
}

// Section is either a flat list of articles or a list of named
// sub-sections (wine regions, beer service styles). Never both.
type Section struct {
	Name     Name      `json:"name"`
	Articles []Article `json:"articles,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// MenuDocument is the canonical build output: food sections and drink
// sections in catalog declaration order.
type MenuDocument struct {
	Food   []Section `json:"sections"`
	Drinks []Section `json:"drinks"`
}

// WithDescriptionMode returns a deep copy whose description values
// serialize in the requested representation. Section structure and
// article identifiers are carried over untouched.
func (d MenuDocument) WithDescriptionMode(asBool bool) MenuDocument {
	out := MenuDocument{
		Food:   copySections(d.Food, asBool),
		Drinks: copySections(d.Drinks, asBool),
	}
	return out
}

func copySections(sections []Section, asBool bool) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{
			Name:     s.Name,
			Articles: copyArticles(s.Articles, asBool),
			Sections: copySections(s.Sections, asBool),
		}
	}
	return out
}

func copyArticles(articles []Article, asBool bool) []Article {
	if articles == nil {
		return nil
	}
	out := make([]Article, len(articles))
	for i, a := range articles {
		a.Descr.FR.AsBool = asBool
		a.Descr.EN.AsBool = asBool
		out[i] = a
	}
	return out
}
