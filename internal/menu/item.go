package menu

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawItem is one classified line item as returned by the language model
// or entered manually. Prices arrive as numbers or strings (often with a
// decimal comma), descriptions as strings or boolean false.
type RawItem struct {
	Name        string   `json:"name"`
	Price       RawPrice `json:"price"`
	Description RawText  `json:"description"`
	TaxRate     *float64 `json:"tax_rate,omitempty"`
}

// RawPrice tolerates the upstream formats: a JSON number, a numeric
// string with comma or point separator, or a "no value" marker.
// Valid is false when no usable amount was present.
type RawPrice struct {
	Amount float64
	Valid  bool
}

func (p RawPrice) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Amount)
}

func (p *RawPrice) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
		if text == "" || text == "-" {
			return nil
		}
		amount, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil
		}
		p.Amount = amount
		p.Valid = true
		return nil
	}

	var amount float64
	if err := json.Unmarshal(b, &amount); err != nil {
		return nil
	}
	p.Amount = amount
	p.Valid = true
	return nil
}

// RawText tolerates string, boolean false, or null. Anything that is not
// usable text decodes to the empty string.
type RawText string

func (t *RawText) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "false" || s == "null" || s == "true" {
		*t = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		*t = ""
		return nil
	}
	*t = RawText(text)
	return nil
}

// Item is the normalized, non-nullable menu item handed to the section
// builder. Description is "" when the item has none.
type Item struct {
	Name        string
	Price       float64
	Description string
	TaxRate     float64
}
