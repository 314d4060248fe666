package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
	apperrors "github.com/shopcrawl-service/internal/pkg/errors"
	"github.com/shopcrawl-service/internal/planner"
	"github.com/shopcrawl-service/internal/usecase"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

func newShopSearchUseCase(place *MockPlaceRepository, cache repository.CacheRepository) *usecase.ShopSearchUseCase {
	return usecase.NewShopSearchUseCase(
		place,
		cache,
		planner.NewClassifier(planner.DefaultBrands()),
		planner.DefaultTuning(),
		zap.NewNop(),
		5*time.Minute,
	)
}

func TestShopSearchUseCase_FindShops(t *testing.T) {
	ctx := context.Background()

	t.Run("tags chains and private shops", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, mock.Anything).Return([]domain.Place{
			{ID: "p1", Name: "肯德基(西单店)", Location: domain.Coordinate{Latitude: 39.913, Longitude: 116.374}},
			{ID: "p2", Name: "张记面馆", Location: domain.Coordinate{Latitude: 39.915, Longitude: 116.380}},
		}, nil)

		uc := newShopSearchUseCase(mockPlace, nil)
		resp, err := uc.FindShops(ctx, dto.FindShopsRequest{Keywords: "吃的"})
		require.NoError(t, err)

		require.Len(t, resp.Shops, 2)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "肯德基", resp.Shops[0].Brand)
		assert.Equal(t, "chain", resp.Shops[0].Kind)
		assert.Empty(t, resp.Shops[1].Brand)
		assert.Equal(t, "private", resp.Shops[1].Kind)
	})

	t.Run("anchored search sorts by distance and caps the list", func(t *testing.T) {
		var places []domain.Place
		for i := 0; i < 12; i++ {
			places = append(places, domain.Place{
				ID: string(rune('a' + i)),
				// Farther with every index, then shuffled by reversing.
				Location: domain.Coordinate{Latitude: 39.909 + float64(12-i)*0.003, Longitude: 116.397},
			})
		}

		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, mock.Anything).Return(places, nil)

		uc := newShopSearchUseCase(mockPlace, nil)
		resp, err := uc.FindShops(ctx, dto.FindShopsRequest{
			Keywords: "全家",
			Near:     &dto.Point{Lat: 39.909, Lon: 116.397},
		})
		require.NoError(t, err)

		require.Len(t, resp.Shops, 8)
		for i := 1; i < len(resp.Shops); i++ {
			assert.LessOrEqual(t, resp.Shops[i-1].DistanceToHome, resp.Shops[i].DistanceToHome)
		}
	})

	t.Run("rejects an invalid anchor", func(t *testing.T) {
		uc := newShopSearchUseCase(&MockPlaceRepository{}, nil)
		_, err := uc.FindShops(ctx, dto.FindShopsRequest{
			Keywords: "全家",
			Near:     &dto.Point{Lat: 200, Lon: 0},
		})
		assert.ErrorContains(t, err, apperrors.ErrInvalidCoordinates.Code)
	})

	t.Run("serves repeated searches from cache", func(t *testing.T) {
		cachedPlaces := []domain.Place{
			{ID: "c1", Name: "全家(国贸店)", Location: domain.Coordinate{Latitude: 39.91, Longitude: 116.40}},
		}
		data, err := json.Marshal(cachedPlaces)
		require.NoError(t, err)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, mock.Anything).Return(data, nil)

		mockPlace := &MockPlaceRepository{}

		uc := newShopSearchUseCase(mockPlace, mockCache)
		resp, err := uc.FindShops(ctx, dto.FindShopsRequest{Keywords: "全家"})
		require.NoError(t, err)

		require.Len(t, resp.Shops, 1)
		assert.Equal(t, "c1", resp.Shops[0].ID)
		mockPlace.AssertNotCalled(t, "Search")
	})
}
