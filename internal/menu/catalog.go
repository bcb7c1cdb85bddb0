package menu

// Target says which half of the document a section lands in.
type Target int

const (
	TargetFood Target = iota
	TargetDrinks
)

// GroupMode controls how a group's member categories are laid out.
type GroupMode int

const (
	// GroupFlat merges all member categories into one article list.
	GroupFlat GroupMode = iota
	// GroupByCategory gives each member category its own named sub-section.
	GroupByCategory
	// GroupByRegion splits one category into region sub-sections via Region.
	GroupByRegion
)

// TaxClass tags for the backend configuration document. French VAT:
// food and soft drinks at the reduced rate, alcohol at the standard rate.
const (
	TaxReduced  = "tva_10"
	TaxStandard = "tva_20"
)

// Group is one catalog entry: the category keys it collapses, the
// bilingual section name, routing and layout, and the backend metadata
// the richer document variant carries.
type Group struct {
	Keys     []string
	Name     Name
	Target   Target
	Mode     GroupMode
	SubNames []Name     // parallel to Keys, GroupByCategory only
	Region   RegionFunc // GroupByRegion only
	ID       int
	TaxClass string
	CourseID int
}

// catalog is the authoritative table. Declaration order determines final
// section order in the document and therefore identifier assignment.
// Merged keys route into one section under the first key's display name.
var catalog = []Group{
	// food
	{Keys: []string{"planches", "tapas"}, Name: Name{FR: "SNACKING", EN: "SNACKING"}, Target: TargetFood, ID: 1, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"entrees"}, Name: Name{FR: "ENTRÉES", EN: "STARTERS"}, Target: TargetFood, ID: 2, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"salades"}, Name: Name{FR: "SALADES", EN: "SALADS"}, Target: TargetFood, ID: 3, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"plats"}, Name: Name{FR: "PLATS", EN: "MAINS"}, Target: TargetFood, ID: 4, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"desserts"}, Name: Name{FR: "DESSERTS", EN: "DESSERTS"}, Target: TargetFood, ID: 5, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"pinsa_pizza"}, Name: Name{FR: "PINSA & PIZZA", EN: "PINSA & PIZZA"}, Target: TargetFood, ID: 6, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"pates"}, Name: Name{FR: "PÂTES", EN: "PASTA"}, Target: TargetFood, ID: 7, TaxClass: TaxReduced, CourseID: 1},

	// drinks
	{Keys: []string{"cocktails"}, Name: Name{FR: "COCKTAILS", EN: "COCKTAILS"}, Target: TargetDrinks, ID: 8, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"mocktails"}, Name: Name{FR: "MOCKTAILS", EN: "MOCKTAILS"}, Target: TargetDrinks, ID: 9, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"aperitifs", "spritz"}, Name: Name{FR: "APÉRITIFS", EN: "APERITIFS"}, Target: TargetDrinks, ID: 10, TaxClass: TaxStandard, CourseID: 1},
	{
		Keys:     []string{"bieres_pression", "bieres_bouteilles"},
		Name:     Name{FR: "BIÈRES", EN: "BEERS"},
		Target:   TargetDrinks,
		Mode:     GroupByCategory,
		SubNames: []Name{{FR: "Pression", EN: "Pression"}, {FR: "Bouteilles", EN: "Bouteilles"}},
		ID:       11, TaxClass: TaxStandard, CourseID: 1,
	},
	{Keys: []string{"boissons_soft", "jus"}, Name: Name{FR: "SOFTS-EAUX", EN: "SOFT DRINKS"}, Target: TargetDrinks, ID: 12, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"boissons_chaudes"}, Name: Name{FR: "CAFÉTERIE", EN: "CAFE"}, Target: TargetDrinks, ID: 13, TaxClass: TaxReduced, CourseID: 1},
	{Keys: []string{"vins_blancs_verre"}, Name: Name{FR: "VINS VERRE BLANCS", EN: "WHITE WINES GLASS"}, Target: TargetDrinks, ID: 14, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"vins_rouges_verre"}, Name: Name{FR: "VINS VERRE ROUGES", EN: "RED WINES GLASS"}, Target: TargetDrinks, ID: 15, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"vins_roses_verre"}, Name: Name{FR: "VINS VERRE ROSÉS", EN: "ROSÉ WINES GLASS"}, Target: TargetDrinks, ID: 16, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"champagnes_coupe", "champagnes_bouteille"}, Name: Name{FR: "CHAMPAGNES BLANCS", EN: "CHAMPAGNES WHITE"}, Target: TargetDrinks, ID: 17, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"champagnes_magnum"}, Name: Name{FR: "CHAMPAGNES ROSÉ", EN: "CHAMPAGNES ROSÉ"}, Target: TargetDrinks, ID: 18, TaxClass: TaxStandard, CourseID: 1},
	{
		Keys:   []string{"rhums", "vodkas", "gins", "tequilas", "whiskies", "digestifs", "cognacs_armagnacs"},
		Name:   Name{FR: "ALCOOLS", EN: "SPIRITS"},
		Target: TargetDrinks,
		ID:     19, TaxClass: TaxStandard, CourseID: 1,
	},
	{Keys: []string{"vins_blancs_bouteille"}, Name: Name{FR: "BT VINS BLANCS", EN: "WHITE WINES BOTTLE"}, Target: TargetDrinks, Mode: GroupByRegion, Region: WhiteWineRegion, ID: 20, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"vins_roses_bouteille"}, Name: Name{FR: "BT VINS ROSÉS", EN: "ROSÉ WINES BOTTLE"}, Target: TargetDrinks, Mode: GroupByRegion, Region: RoseWineRegion, ID: 21, TaxClass: TaxStandard, CourseID: 1},
	{Keys: []string{"vins_rouges_bouteille"}, Name: Name{FR: "BT VINS ROUGES", EN: "RED WINES BOTTLE"}, Target: TargetDrinks, Mode: GroupByRegion, Region: RedWineRegion, ID: 22, TaxClass: TaxStandard, CourseID: 1},
}

// Catalog returns the groups in declaration order.
func Catalog() []Group {
	return catalog
}

// Lookup returns the group owning the given category key. The catalog is
/// authoritative: an absent second return means the key is unrecognized
// and the category must be skipped.
func Lookup(key string) (Group, bool) {
	for _, g := range catalog {
		for _, k := range g.Keys {
			if k == key {
				return g, true
			}
		}
	}
	return Group{}, false
}
