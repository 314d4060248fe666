package planner

import (
	"sort"
	"strings"

	"github.com/shopcrawl-service/internal/domain"
)

// Score blends time and distance into the composite used for pre-selecting
// the single best candidate. The ranked output lists are each sorted by
// their own single metric, never by this composite.
func Score(c domain.RouteCandidate, t Tuning) float64 {
	return t.TimeWeight*(c.TotalDurationSeconds/60) + t.DistanceWeight*(c.TotalDistanceMeters/1000)
}

// Rank deduplicates candidates sharing the same stop multiset and returns
// the top-N by total duration and, separately, the top-N by total distance.
// Both sorts are stable, so ties keep generation order. Candidates are not
// mutated.
func Rank(candidates []domain.RouteCandidate, t Tuning) domain.RankedResultSet {
	unique := dedupe(candidates)

	byTime := make([]domain.RouteCandidate, len(unique))
	copy(byTime, unique)
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].TotalDurationSeconds < byTime[j].TotalDurationSeconds
	})

	byDistance := make([]domain.RouteCandidate, len(unique))
	copy(byDistance, unique)
	sort.SliceStable(byDistance, func(i, j int) bool {
		return byDistance[i].TotalDistanceMeters < byDistance[j].TotalDistanceMeters
	})

	topN := t.TopN
	if topN <= 0 {
		topN = len(unique)
	}
	if len(byTime) > topN {
		byTime = byTime[:topN]
	}
	if len(byDistance) > topN {
		byDistance = byDistance[:topN]
	}

	return domain.RankedResultSet{
		ByTime:     byTime,
		ByDistance: byDistance,
	}
}

// dedupe drops candidates whose stop multiset was already seen, keeping the
// first occurrence. Stop order within the tour is irrelevant to identity.
func dedupe(candidates []domain.RouteCandidate) []domain.RouteCandidate {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]domain.RouteCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := stopSetKey(c.Stops)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

func stopSetKey(stops []domain.Place) string {
	ids := make([]string, len(stops))
	for i, s := range stops {
		ids[i] = s.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
