package assemble

// Colors is the restaurant's display palette.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Restaurant is the metadata the assembler wraps around a built menu.
// It comes from the request or from configured defaults; the core
// transformation never reads it.
type Restaurant struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Colors  Colors   `json:"colors"`
	QRMode  string   `json:"qr_mode"`
	Banners []string `json:"banners,omitempty"`
}
