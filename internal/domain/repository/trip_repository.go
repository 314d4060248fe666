package repository

import (
	"context"

	"github.com/shopcrawl-service/internal/domain"
)

// TripRepository persists saved shop-crawl trips.
type TripRepository interface {
	Save(ctx context.Context, trip *domain.Trip) error
	List(ctx context.Context, limit int) ([]domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	Delete(ctx context.Context, id string) error
}
