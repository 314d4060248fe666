package repository

import (
	"context"

	"github.com/shopcrawl-service/internal/domain"
)

// DirectionsRepository computes a concrete route through ordered waypoints.
// Any provider failure (non-OK status, timeout, transport error) is returned
// as an error; the caller falls back to the heuristic evaluator.
type DirectionsRepository interface {
	Route(ctx context.Context, mode domain.TravelMode, waypoints []domain.Coordinate) (*domain.DirectionsResult, error)
}
