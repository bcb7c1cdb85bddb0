package menu

import (
	"log"
	"sort"
	"strconv"
)

// BuildStats reports what happened to the input during one build.
// Dropped items and unknown categories are counted, never fatal.
type BuildStats struct {
	Articles          int      `json:"articles"`
	Dropped           int      `json:"dropped"`
	UnknownCategories []string `json:"unknown_categories,omitempty"`
}

// Build transforms a classified mapping into a MenuDocument. Sections
// appear in catalog declaration order; within a section, items keep
// their input order. Every placed article gets the next identifier from
// a counter starting at base, so the same input and base always produce
// the same identifiers. The counter lives on the stack: concurrent
// builds never interleave.
func Build(classified map[string][]RawItem, base int) (MenuDocument, BuildStats) {
	var (
		doc     MenuDocument
		stats   BuildStats
		nextID  = base
		matched = make(map[string]bool)
	)

	newArticle := func(item Item, group Group) Article {
		a := Article{
			Name:             Name{FR: item.Name, EN: item.Name},
			ArticleID:        strconv.Itoa(nextID),
			PosName:          item.Name,
			Price:            Price{Amount: item.Price},
			Descr:            BilingualDescr{FR: Descr{Text: item.Description}, EN: Descr{Text: item.Description}},
			Options:          []string{},
			DefaultCourseID:  group.CourseID,
			ChoicesForCourse: []string{},
		}
		nextID++
		return a
	}

	for _, group := range catalog {
		for _, key := range group.Keys {
			matched[key] = matched[key] || classified[key] != nil
		}

		var section Section
		switch group.Mode {
		case GroupByCategory:
			for i, key := range group.Keys {
				var sub Section
				sub.Name = group.SubNames[i]
				for _, raw := range classified[key] {
					item, ok := Normalize(raw)
					if !ok {
						stats.Dropped++
						continue
					}
					sub.Articles = append(sub.Articles, newArticle(item, group))
				}
				if len(sub.Articles) > 0 {
					section.Sections = append(section.Sections, sub)
				}
			}

		case GroupByRegion:
			// Region sub-sections appear in the order their first
			// item is encountered, not alphabetically.
			index := make(map[string]int)
			for _, key := range group.Keys {
				for _, raw := range classified[key] {
					item, ok := Normalize(raw)
					if !ok {
						stats.Dropped++
						continue
					}
					bucket := group.Region(item.Name)
					i, seen := index[bucket]
					if !seen {
						i = len(section.Sections)
						index[bucket] = i
						section.Sections = append(section.Sections, Section{
							Name: Name{FR: bucket, EN: bucket},
						})
					}
					section.Sections[i].Articles = append(section.Sections[i].Articles, newArticle(item, group))
				}
			}

		default:
			for _, key := range group.Keys {
				for _, raw := range classified[key] {
					item, ok := Normalize(raw)
					if !ok {
						stats.Dropped++
						continue
					}
					section.Articles = append(section.Articles, newArticle(item, group))
				}
			}
		}

		if len(section.Articles) == 0 && len(section.Sections) == 0 {
			continue
		}
		section.Name = group.Name

		if group.Target == TargetFood {
			doc.Food = append(doc.Food, section)
		} else {
			doc.Drinks = append(doc.Drinks, section)
		}
	}

	for key := range classified {
		if _, ok := matched[key]; !ok {
			log.Printf("menu: skipping unknown category %q (%d items)", key, len(classified[key]))
			stats.UnknownCategories = append(stats.UnknownCategories, key)
		}
	}
	sort.Strings(stats.UnknownCategories)

	stats.Articles = nextID - base
	return doc, stats
}
