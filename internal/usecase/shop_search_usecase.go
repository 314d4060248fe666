package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
	"github.com/shopcrawl-service/internal/pkg/errors"
	"github.com/shopcrawl-service/internal/pkg/utils"
	"github.com/shopcrawl-service/internal/planner"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

// ShopSearchUseCase answers keyword place searches and tags each hit with
// the detected chain brand, if any.
type ShopSearchUseCase struct {
	finder     *placeFinder
	classifier *planner.Classifier
	tuning     planner.Tuning
	logger     *zap.Logger
}

func NewShopSearchUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	classifier *planner.Classifier,
	tuning planner.Tuning,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ShopSearchUseCase {
	return &ShopSearchUseCase{
		finder:     newPlaceFinder(placeRepo, cacheRepo, cacheTTL, logger),
		classifier: classifier,
		tuning:     tuning,
		logger:     logger,
	}
}

func (uc *ShopSearchUseCase) FindShops(ctx context.Context, req dto.FindShopsRequest) (*dto.FindShopsResponse, error) {
	query := domain.PlaceQuery{
		Keywords: req.Keywords,
		City:     req.City,
	}

	if req.Near != nil {
		if !utils.ValidateCoordinates(req.Near.Lat, req.Near.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		radius := req.RadiusMeters
		if radius == 0 {
			radius = int(uc.tuning.MaxRadiusMeters)
		}
		query.Near = &domain.Coordinate{Latitude: req.Near.Lat, Longitude: req.Near.Lon}
		query.RadiusMeters = radius
	}

	places, err := uc.finder.search(ctx, query)
	if err != nil {
		uc.logger.Error("Place search failed", zap.String("keywords", req.Keywords), zap.Error(err))
		return nil, err
	}

	if query.Near != nil {
		places = planner.FilterByHome(places, *query.Near, uc.tuning.MaxBranchesPerBrand, float64(query.RadiusMeters))
	}

	results := make([]dto.PlaceResult, 0, len(places))
	for _, p := range places {
		result := dto.ConvertPlace(p)
		if brand, ok := uc.classifier.Classify(p.Name); ok {
			result.Brand = brand
			result.Kind = string(domain.ShopKindChain)
		} else {
			result.Kind = string(domain.ShopKindPrivate)
		}
		results = append(results, result)
	}

	return &dto.FindShopsResponse{
		Shops: results,
		Total: len(results),
	}, nil
}
