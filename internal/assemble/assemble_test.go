package assemble

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
)

func buildFixture(t *testing.T, base int) menu.MenuDocument {
	t.Helper()
	mapping := map[string][]menu.RawItem{
		"plats": {{
			Name:  "Risotto",
			Price: menu.RawPrice{Amount: 19, Valid: true},
		}},
		"desserts": {{
			Name:        "Tiramisu",
			Price:       menu.RawPrice{Amount: 9, Valid: true},
			Description: "Tiramisu", // sentinel: same as name
		}},
	}
	doc, _ := menu.Build(mapping, base)
	return doc
}

func testMeta() Restaurant {
	return Restaurant{
		ID:      "le-bistrot",
		Name:    "Le Bistrot",
		Address: "12 rue des Halles, Paris",
		Colors:  Colors{Primary: "#8B0000", Background: "#FFF8F0"},
		QRMode:  "table",
	}
}

func TestAssembleV1DescriptionIsFalse(t *testing.T) {
	doc := buildFixture(t, 3000)

	out, err := Assemble(doc, testMeta(), V1())
	if err != nil {
		t.Fatal(err)
	}
	if out.Name != "menus.json" {
		t.Fatalf("unexpected document name %s", out.Name)
	}
	if !bytes.Contains(out.Data, []byte(`"fr": false`)) {
		t.Fatal("v1 must serialize missing descriptions as false")
	}
}

func TestAssembleV2DescriptionIsEmptyString(t *testing.T) {
	doc := buildFixture(t, 4000)

	out, err := Assemble(doc, testMeta(), V2())
	if err != nil {
		t.Fatal(err)
	}
	if out.Name != "articles.json" {
		t.Fatalf("unexpected document name %s", out.Name)
	}
	if bytes.Contains(out.Data, []byte(`"descr":{"fr":false`)) {
		t.Fatal("v2 must not serialize boolean descriptions")
	}
	if !bytes.Contains(out.Data, []byte(`"descr":{"fr":"","en":""}`)) {
		t.Fatal("v2 must serialize missing descriptions as empty strings")
	}
}

func TestAssembleV1IsIndented(t *testing.T) {
	doc := buildFixture(t, 3000)

	out, err := Assemble(doc, testMeta(), V1())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out.Data), "\n  ") {
		t.Fatal("v1 output must be indented")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(out.Data, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed["qrMode"] != "table" {
		t.Fatalf("backend config missing qrMode: %v", parsed["qrMode"])
	}
	if _, ok := parsed["categories"]; !ok {
		t.Fatal("v1 must embed the category configuration")
	}
}

func TestAssembleV2IsCompact(t *testing.T) {
	doc := buildFixture(t, 4000)

	out, err := Assemble(doc, testMeta(), V2())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(out.Data, []byte("\n")) {
		t.Fatal("v2 output must use compact separators")
	}
}

func TestAssembleDoesNotRebuild(t *testing.T) {
	doc := buildFixture(t, 4000)

	v1 := V1()
	v1.Base = 4000 // same build feeds both variants
	outV1, err := Assemble(doc, testMeta(), v1)
	if err != nil {
		t.Fatal(err)
	}
	outV2, err := Assemble(doc, testMeta(), V2())
	if err != nil {
		t.Fatal(err)
	}

	// identifiers must be identical across variants of one build
	if !bytes.Contains(outV1.Data, []byte(`"articleId": "4000"`)) {
		t.Fatal("v1 lost the build's identifiers")
	}
	if !bytes.Contains(outV2.Data, []byte(`"articleId":"4000"`)) {
		t.Fatal("v2 lost the build's identifiers")
	}
}

func TestAssembleUnknownVariant(t *testing.T) {
	doc := buildFixture(t, 3000)

	if _, err := Assemble(doc, testMeta(), Variant{Name: "v3"}); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestAssembleEmptyHalvesSerializeAsArrays(t *testing.T) {
	mapping := map[string][]menu.RawItem{
		"cocktails": {{Name: "Mojito", Price: menu.RawPrice{Amount: 12, Valid: true}}},
	}
	doc, _ := menu.Build(mapping, 3000)

	out, err := Assemble(doc, testMeta(), V1())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Data, []byte(`"sections": []`)) {
		t.Fatal("empty food half must serialize as [] not null")
	}
}
