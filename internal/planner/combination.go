package planner

import "github.com/shopcrawl-service/internal/domain"

// Product returns the number of combinations the brand groups would produce.
func Product(groups []domain.BrandGroup) int {
	product := 1
	for _, g := range groups {
		product *= len(g.Branches)
	}
	return product
}

// Narrow applies the second-pass truncation: when the combination product
// exceeds the threshold, every brand keeps only its closest
// NarrowedBranchLimit branches. This trades accuracy for a bounded search
// space; it is a deliberate narrowing of the candidate lists, not a sampling
// of the full product.
func Narrow(groups []domain.BrandGroup, t Tuning) []domain.BrandGroup {
	if Product(groups) <= t.CombinationThreshold {
		return groups
	}

	narrowed := make([]domain.BrandGroup, len(groups))
	for i, g := range groups {
		branches := g.Branches
		if len(branches) > t.NarrowedBranchLimit {
			branches = branches[:t.NarrowedBranchLimit]
		}
		narrowed[i] = domain.BrandGroup{BrandName: g.BrandName, Branches: branches}
	}
	return narrowed
}

// Generate produces the Cartesian product over brand groups: every
// combination holds the fixed stops followed by exactly one branch per
// brand. Groups must be non-empty; callers drop empty groups beforehand.
// With no groups the fixed stops alone form the single combination.
func Generate(groups []domain.BrandGroup, fixed []domain.Place) [][]domain.Place {
	if len(groups) == 0 {
		if len(fixed) == 0 {
			return nil
		}
		combination := make([]domain.Place, len(fixed))
		copy(combination, fixed)
		return [][]domain.Place{combination}
	}

	combinations := make([][]domain.Place, 0, Product(groups))
	prefix := make([]domain.Place, len(fixed))
	copy(prefix, fixed)

	var walk func(prefix []domain.Place, idx int)
	walk = func(prefix []domain.Place, idx int) {
		if idx == len(groups) {
			combination := make([]domain.Place, len(prefix))
			copy(combination, prefix)
			combinations = append(combinations, combination)
			return
		}
		for _, branch := range groups[idx].Branches {
			// Appending to a fresh copy keeps recursive calls from sharing
			// a mutable accumulator.
			next := make([]domain.Place, len(prefix), len(prefix)+1)
			copy(next, prefix)
			walk(append(next, branch), idx+1)
		}
	}
	walk(prefix, 0)

	return combinations
}
