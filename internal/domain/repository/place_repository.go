package repository

import (
	"context"

	"github.com/shopcrawl-service/internal/domain"
)

// PlaceRepository resolves keywords to located places. An empty result list
// is a valid answer, not an error.
type PlaceRepository interface {
	Search(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error)
}
