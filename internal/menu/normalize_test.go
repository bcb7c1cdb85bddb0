package menu

import (
	"encoding/json"
	"testing"
)

func decodeItem(t *testing.T, raw string) RawItem {
	t.Helper()
	var item RawItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return item
}

func TestNormalizeCommaPrice(t *testing.T) {
	item, ok := Normalize(decodeItem(t, `{"name": "Soupe", "price": "8,50"}`))
	if !ok {
		t.Fatal("item was dropped")
	}
	if item.Price != 8.5 {
		t.Fatalf("expected 8.5, got %v", item.Price)
	}
}

func TestNormalizeDropsPlaceholderPrice(t *testing.T) {
	for _, raw := range []string{
		`{"name": "Café", "price": "-"}`,
		`{"name": "Café", "price": ""}`,
		`{"name": "Café", "price": "prix du jour"}`,
		`{"name": "Café"}`,
		`{"name": "Café", "price": null}`,
	} {
		if _, ok := Normalize(decodeItem(t, raw)); ok {
			t.Fatalf("expected drop for %s", raw)
		}
	}
}

func TestNormalizeDropsNegativePrice(t *testing.T) {
	if _, ok := Normalize(decodeItem(t, `{"name": "Café", "price": -2}`)); ok {
		t.Fatal("expected drop for negative price")
	}
}

func TestNormalizeDropsMissingName(t *testing.T) {
	if _, ok := Normalize(decodeItem(t, `{"price": 5}`)); ok {
		t.Fatal("expected drop for missing name")
	}
}

func TestNormalizePreservesNameVerbatim(t *testing.T) {
	name := `Pouilly-Fumé "Les Griottes"`
	item, ok := Normalize(RawItem{
		Name:  name,
		Price: RawPrice{Amount: 28, Valid: true},
	})
	if !ok {
		t.Fatal("item was dropped")
	}
	if item.Name != name {
		t.Fatalf("name altered: %q", item.Name)
	}
}

func TestNormalizeDescriptionEqualToName(t *testing.T) {
	item, ok := Normalize(decodeItem(t, `{"name": "Tiramisu", "price": 9, "description": "Tiramisu"}`))
	if !ok {
		t.Fatal("item was dropped")
	}
	if item.Description != "" {
		t.Fatalf("expected empty description, got %q", item.Description)
	}
}

func TestNormalizeDescriptionFalse(t *testing.T) {
	item, ok := Normalize(decodeItem(t, `{"name": "Tiramisu", "price": 9, "description": false}`))
	if !ok {
		t.Fatal("item was dropped")
	}
	if item.Description != "" {
		t.Fatalf("expected empty description, got %q", item.Description)
	}
}

func TestNormalizeKeepsRealDescription(t *testing.T) {
	item, ok := Normalize(decodeItem(t, `{"name": "Tiramisu", "price": 9, "description": "mascarpone, café"}`))
	if !ok {
		t.Fatal("item was dropped")
	}
	if item.Description != "mascarpone, café" {
		t.Fatalf("description altered: %q", item.Description)
	}
}
