package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/planner"
)

func TestSpeeds_Evaluate(t *testing.T) {
	speeds := planner.DefaultSpeeds()
	home := domain.Coordinate{Latitude: 39.909, Longitude: 116.397}

	t.Run("visits every stop exactly once and closes the tour", func(t *testing.T) {
		stops := []domain.Place{
			{ID: "a", Location: domain.Coordinate{Latitude: 39.930, Longitude: 116.397}},
			{ID: "b", Location: domain.Coordinate{Latitude: 39.950, Longitude: 116.397}},
			{ID: "c", Location: domain.Coordinate{Latitude: 39.918, Longitude: 116.397}},
		}

		candidate := speeds.Evaluate(home, stops, domain.ModeDriving)

		require.Len(t, candidate.VisitOrder, 3)
		visited := map[string]int{}
		for _, stop := range candidate.VisitOrder {
			visited[stop.ID]++
		}
		assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, visited)
		assert.True(t, candidate.IsEstimated)
	})

	t.Run("greedy pass picks the nearest stop first", func(t *testing.T) {
		stops := []domain.Place{
			{ID: "far", Location: domain.Coordinate{Latitude: 39.990, Longitude: 116.397}},
			{ID: "near", Location: domain.Coordinate{Latitude: 39.918, Longitude: 116.397}},
			{ID: "mid", Location: domain.Coordinate{Latitude: 39.950, Longitude: 116.397}},
		}

		candidate := speeds.Evaluate(home, stops, domain.ModeDriving)
		require.Len(t, candidate.VisitOrder, 3)
		assert.Equal(t, "near", candidate.VisitOrder[0].ID)
		assert.Equal(t, "mid", candidate.VisitOrder[1].ID)
		assert.Equal(t, "far", candidate.VisitOrder[2].ID)
	})

	t.Run("single stop is a round trip", func(t *testing.T) {
		// ~2 km north of home.
		stops := []domain.Place{
			{ID: "only", Location: domain.Coordinate{Latitude: 39.927, Longitude: 116.397}},
		}

		candidate := speeds.Evaluate(home, stops, domain.ModeDriving)
		assert.InDelta(t, 4000, candidate.TotalDistanceMeters, 100)
		// 4 km at 500 m/min => 8 min => 480 s.
		assert.InDelta(t, 480, candidate.TotalDurationSeconds, 15)
	})

	t.Run("duration scales with mode", func(t *testing.T) {
		stops := []domain.Place{
			{ID: "only", Location: domain.Coordinate{Latitude: 39.927, Longitude: 116.397}},
		}

		driving := speeds.Evaluate(home, stops, domain.ModeDriving)
		transit := speeds.Evaluate(home, stops, domain.ModeTransit)
		walking := speeds.Evaluate(home, stops, domain.ModeWalking)

		assert.Less(t, driving.TotalDurationSeconds, transit.TotalDurationSeconds)
		assert.Less(t, transit.TotalDurationSeconds, walking.TotalDurationSeconds)
		assert.InDelta(t, driving.TotalDistanceMeters, walking.TotalDistanceMeters, 1e-9)
	})

	t.Run("no stops yields an empty estimated candidate", func(t *testing.T) {
		candidate := speeds.Evaluate(home, nil, domain.ModeDriving)
		assert.Zero(t, candidate.TotalDistanceMeters)
		assert.Zero(t, candidate.TotalDurationSeconds)
		assert.Empty(t, candidate.VisitOrder)
		assert.True(t, candidate.IsEstimated)
	})

	t.Run("input stops slice is untouched", func(t *testing.T) {
		stops := []domain.Place{
			{ID: "far", Location: domain.Coordinate{Latitude: 39.990, Longitude: 116.397}},
			{ID: "near", Location: domain.Coordinate{Latitude: 39.918, Longitude: 116.397}},
		}
		speeds.Evaluate(home, stops, domain.ModeDriving)
		assert.Equal(t, "far", stops[0].ID)
		assert.Equal(t, "near", stops[1].ID)
	})
}
