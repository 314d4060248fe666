package planner

import (
	"sort"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/pkg/utils"
)

// FilterByHome computes DistanceToHome for every branch, discards branches
// beyond maxRadiusMeters, sorts ascending by distance and truncates to
// maxCount. The result is empty (never nil deref, never an error) when all
// branches are out of radius.
func FilterByHome(branches []domain.Place, home domain.Coordinate, maxCount int, maxRadiusMeters float64) []domain.Place {
	kept := make([]domain.Place, 0, len(branches))
	for _, branch := range branches {
		branch.DistanceToHome = utils.HaversineDistance(
			home.Latitude, home.Longitude,
			branch.Location.Latitude, branch.Location.Longitude,
		)
		if branch.DistanceToHome > maxRadiusMeters {
			continue
		}
		kept = append(kept, branch)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DistanceToHome < kept[j].DistanceToHome
	})

	if maxCount > 0 && len(kept) > maxCount {
		kept = kept[:maxCount]
	}
	return kept
}
