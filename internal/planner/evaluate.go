package planner

import (
	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/pkg/utils"
)

// Evaluate builds a home -> stops -> home tour with a greedy nearest-neighbor
// pass under the given travel mode.
//
// At each step the closest unvisited stop is appended; after the last stop
// the return leg to home is added. This is not an optimal TSP solution: it
// trades optimality for O(n^2) work per combination, which matters because
// it runs once per generated combination. Ties break on input order, so the
// result is deterministic. The candidate is flagged IsEstimated; callers
// that obtain a live directions result clear the flag and override totals.
func (s Speeds) Evaluate(home domain.Coordinate, stops []domain.Place, mode domain.TravelMode) domain.RouteCandidate {
	candidate := domain.RouteCandidate{
		Stops:       stops,
		IsEstimated: true,
	}
	if len(stops) == 0 {
		return candidate
	}

	unvisited := make([]domain.Place, len(stops))
	copy(unvisited, stops)

	current := home
	order := make([]domain.Place, 0, len(stops))
	totalMeters := 0.0
	totalMinutes := 0.0

	for len(unvisited) > 0 {
		bestIdx := 0
		bestMeters := legMeters(current, unvisited[0])
		for i := 1; i < len(unvisited); i++ {
			if m := legMeters(current, unvisited[i]); m < bestMeters {
				bestIdx = i
				bestMeters = m
			}
		}

		next := unvisited[bestIdx]
		totalMeters += bestMeters
		totalMinutes += s.TravelMinutes(bestMeters, mode)
		order = append(order, next)
		current = next.Location
		unvisited = append(unvisited[:bestIdx], unvisited[bestIdx+1:]...)
	}

	// Return leg back home closes the tour.
	backMeters := utils.HaversineDistance(
		current.Latitude, current.Longitude,
		home.Latitude, home.Longitude,
	)
	totalMeters += backMeters
	totalMinutes += s.TravelMinutes(backMeters, mode)

	candidate.VisitOrder = order
	candidate.TotalDistanceMeters = totalMeters
	candidate.TotalDurationSeconds = totalMinutes * 60
	return candidate
}

func legMeters(from domain.Coordinate, to domain.Place) float64 {
	return utils.HaversineDistance(
		from.Latitude, from.Longitude,
		to.Location.Latitude, to.Location.Longitude,
	)
}
