package assemble

// Variant pins everything that differs between the document schemas the
// ordering platform has consumed over time: the identifier base, how
// "no description" serializes, and whether output is indented for
// hand-editing or compact for the large menus document.
type Variant struct {
	Name              string `json:"name"`
	Base              int    `json:"base"`
	DescriptionAsBool bool   `json:"description_as_bool"`
	Compact           bool   `json:"compact"`
}

// V1 is the older, richer document: full backend configuration around
// the menu tree, identifiers from 3000, boolean-false descriptions,
// indented output.
func V1() Variant {
	return Variant{Name: "v1", Base: 3000, DescriptionAsBool: true}
}

// V2 is the leaner document: menu substructure plus display flags,
// identifiers from 4000, empty-string descriptions, compact output.
func V2() Variant {
	return Variant{Name: "v2", Base: 4000, Compact: true}
}

// Defaults returns the variants generated when a request names none.
func Defaults() []Variant {
	return []Variant{V1(), V2()}
}
