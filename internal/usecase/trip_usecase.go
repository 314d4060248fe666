package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
	"github.com/shopcrawl-service/internal/planner"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

const defaultTripListLimit = 50

// TripUseCase saves and reloads named shop lists.
type TripUseCase struct {
	tripRepo   repository.TripRepository
	classifier *planner.Classifier
	logger     *zap.Logger
}

func NewTripUseCase(
	tripRepo repository.TripRepository,
	classifier *planner.Classifier,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		tripRepo:   tripRepo,
		classifier: classifier,
		logger:     logger,
	}
}

func (uc *TripUseCase) Save(ctx context.Context, req dto.SaveTripRequest) (*dto.TripResponse, error) {
	shops := dto.ShopsToDomain(req.Shops)
	for i := range shops {
		if _, ok := uc.classifier.Classify(shops[i].Name); ok {
			shops[i].Kind = domain.ShopKindChain
		} else {
			shops[i].Kind = domain.ShopKindPrivate
		}
	}

	trip := &domain.Trip{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Shops:     shops,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.tripRepo.Save(ctx, trip); err != nil {
		return nil, err
	}

	uc.logger.Info("Trip saved",
		zap.String("trip_id", trip.ID),
		zap.Int("shops", len(trip.Shops)))

	resp := dto.ConvertTrip(*trip)
	return &resp, nil
}

func (uc *TripUseCase) List(ctx context.Context, limit int) (*dto.TripListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultTripListLimit
	}

	trips, err := uc.tripRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		results = append(results, dto.ConvertTrip(t))
	}

	return &dto.TripListResponse{
		Trips: results,
		Total: len(results),
	}, nil
}

func (uc *TripUseCase) GetByID(ctx context.Context, id string) (*dto.TripResponse, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertTrip(*trip)
	return &resp, nil
}

func (uc *TripUseCase) Delete(ctx context.Context, id string) error {
	return uc.tripRepo.Delete(ctx, id)
}
