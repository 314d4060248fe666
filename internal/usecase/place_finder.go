package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
)

// placeFinder wraps the place provider with a read-through cache. Cache
// failures are never fatal; the live provider is always the fallback.
type placeFinder struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func newPlaceFinder(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *placeFinder {
	return &placeFinder{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (f *placeFinder) search(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error) {
	key := searchCacheKey(query)

	if f.cacheRepo != nil {
		cached, err := f.cacheRepo.Get(ctx, key)
		if err != nil {
			f.logger.Warn("Place cache read failed", zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			var places []domain.Place
			if err := json.Unmarshal(cached, &places); err == nil {
				return places, nil
			}
			f.logger.Warn("Dropping corrupt cache entry", zap.String("key", key))
			_ = f.cacheRepo.Delete(ctx, key)
		}
	}

	places, err := f.placeRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if f.cacheRepo != nil {
		if data, err := json.Marshal(places); err == nil {
			if err := f.cacheRepo.Set(ctx, key, data, f.cacheTTL); err != nil {
				f.logger.Warn("Place cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return places, nil
}

// searchCacheKey rounds the anchor to ~11 m so nearby requests share entries.
func searchCacheKey(query domain.PlaceQuery) string {
	anchor := "none"
	if query.Near != nil {
		anchor = fmt.Sprintf("%.4f,%.4f", query.Near.Latitude, query.Near.Longitude)
	}
	return fmt.Sprintf("places:%s:%s:%s:%d", query.Keywords, query.City, anchor, query.RadiusMeters)
}
