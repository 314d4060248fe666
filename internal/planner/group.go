package planner

import (
	"strings"

	"github.com/shopcrawl-service/internal/domain"
)

// Fallback separators for places that match no known brand: everything
// before the first parenthesis or branch suffix clusters together.
var groupKeySeparators = []string{"（", "(", "分店", "店"}

// GroupBranches partitions search results into per-brand groups, preserving
// first-seen order. Unbranded places fall back to a name-prefix key so that
// visually similar results still cluster; this fallback is best-effort, not
// a correctness guarantee.
func (c *Classifier) GroupBranches(places []domain.Place) []domain.BrandGroup {
	var order []string
	byBrand := make(map[string][]domain.Place)

	for _, place := range places {
		key, ok := c.Classify(place.Name)
		if !ok {
			key = fallbackGroupKey(place.Name)
		}
		if _, seen := byBrand[key]; !seen {
			order = append(order, key)
		}
		byBrand[key] = append(byBrand[key], place)
	}

	groups := make([]domain.BrandGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, domain.BrandGroup{
			BrandName: key,
			Branches:  byBrand[key],
		})
	}
	return groups
}

func fallbackGroupKey(name string) string {
	cut := len(name)
	for _, sep := range groupKeySeparators {
		if idx := strings.Index(name, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	key := strings.TrimSpace(name[:cut])
	if key == "" {
		return name
	}
	return key
}
