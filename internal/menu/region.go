package menu

import "strings"

// RegionFunc maps a wine name to the region bucket its bottle is listed
// under. The builder never inspects wine names itself; swapping the
// heuristic means swapping the function on the catalog group.
type RegionFunc func(name string) string

type regionRule struct {
	keywords []string
	bucket   string
}

// byKeywords builds a classifier that lower-cases the name and returns
// the bucket of the first rule with a matching substring. Rule order is
// the precedence order: a name matching several rules takes the earliest.
func byKeywords(rules []regionRule, fallback string) RegionFunc {
	return func(name string) string {
		lower := strings.ToLower(name)
		for _, rule := range rules {
			for _, kw := range rule.keywords {
				if strings.Contains(lower, kw) {
					return rule.bucket
				}
			}
		}
		return fallback
	}
}

// WhiteWineRegion buckets bottled white wines.
var WhiteWineRegion = byKeywords([]regionRule{
	{[]string{"languedoc", "viognier"}, "LE LANGUEDOC"},
	{[]string{"bourgogne", "chablis", "beaune"}, "LA BOURGOGNE"},
	{[]string{"loire", "sancerre", "pouilly"}, "LA LOIRE"},
	{[]string{"rhône", "condrieu"}, "LE RHÔNE"},
}, "AUTRES")

// RedWineRegion buckets bottled red wines.
var RedWineRegion = byKeywords([]regionRule{
	{[]string{"bourgogne", "gevrey", "mercurey", "beaune"}, "LA BOURGOGNE"},
	{[]string{"rhône", "châteauneuf", "crozes", "vacqueras"}, "LE RHÔNE"},
	{[]string{"bordeaux", "médoc", "saint-julien", "morgon"}, "BORDEAUX"},
}, "AUTRES")

// RoseWineRegion is fixed: the house list only carries Provence rosés,
// so every bottle lands there regardless of name.
var RoseWineRegion = func(name string) string { return "La PROVENCE" }
