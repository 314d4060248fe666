package usecase_test

import (
	"context"
	"errors"
	"fmt"
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

var testHome = dto.Point{Lat: 39.909, Lon: 116.397}

func newPlanUseCase(
	place repository.PlaceRepository,
	directions repository.DirectionsRepository,
	directionsEnabled bool,
) *usecase.PlanUseCase {
	return usecase.NewPlanUseCase(
		place,
		directions,
		nil,
		planner.NewClassifier(planner.DefaultBrands()),
		planner.DefaultTuning(),
		planner.DefaultSpeeds(),
		zap.NewNop(),
		time.Minute,
		directionsEnabled,
		2,
	)
}

func searchFor(keywords string) interface{} {
	return mock.MatchedBy(func(q domain.PlaceQuery) bool {
		return q.Keywords == keywords
	})
}

func place(id string, lat float64) domain.Place {
	return domain.Place{
		ID:       id,
		Name:     id,
		Location: domain.Coordinate{Latitude: lat, Longitude: 116.397},
	}
}

func branches(prefix string, count int) []domain.Place {
	out := make([]domain.Place, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, place(fmt.Sprintf("%s-%d", prefix, i), 39.910+float64(i)*0.002))
	}
	return out
}

func TestPlanUseCase_Plan(t *testing.T) {
	ctx := context.Background()

	t.Run("combines chain branches with a fixed private stop", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("麦当劳")).
			Return([]domain.Place{place("mcd-near", 39.918), place("mcd-far", 39.930)}, nil)
		mockPlace.On("Search", mock.Anything, searchFor("张记面馆")).
			Return([]domain.Place{place("noodle", 39.915)}, nil)

		uc := newPlanUseCase(mockPlace, nil, false)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home: testHome,
			Shops: []dto.ShopInput{
				{Name: "麦当劳", StayDurationMinutes: 30},
				{Name: "张记面馆", StayDurationMinutes: 45},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "DRIVING", resp.TravelMode)
		assert.Equal(t, 2, resp.Stats.CombinationsTotal)
		assert.Equal(t, 2, resp.Stats.CombinationsEvaluated)
		assert.False(t, resp.Stats.Narrowed)

		require.Len(t, resp.ByTime, 2)
		require.Len(t, resp.ByDistance, 2)
		for _, route := range resp.ByTime {
			assert.Len(t, route.VisitOrder, 2)
			assert.True(t, route.IsEstimated)
		}

		// The nearer branch produces the shorter tour.
		best := resp.ByTime[0]
		ids := []string{best.VisitOrder[0].ID, best.VisitOrder[1].ID}
		assert.Contains(t, ids, "mcd-near")
		assert.Contains(t, ids, "noodle")

		// Resolution metadata flows through to the response.
		for _, stop := range best.VisitOrder {
			switch stop.ID {
			case "mcd-near":
				assert.Equal(t, "麦当劳", stop.Brand)
				assert.Equal(t, "chain", stop.Kind)
				assert.Equal(t, 30, stop.StayDurationMinutes)
			case "noodle":
				assert.Empty(t, stop.Brand)
				assert.Equal(t, "private", stop.Kind)
				assert.Equal(t, 45, stop.StayDurationMinutes)
			}
		}
	})

	t.Run("unresolvable shop becomes a warning, not an error", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("星巴克")).
			Return([]domain.Place{place("sbux", 39.920)}, nil)
		mockPlace.On("Search", mock.Anything, searchFor("幽灵小店")).
			Return([]domain.Place{}, nil)

		uc := newPlanUseCase(mockPlace, nil, false)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "星巴克"}, {Name: "幽灵小店"}},
		})
		require.NoError(t, err)

		require.Len(t, resp.ByTime, 1)
		assert.Len(t, resp.ByTime[0].VisitOrder, 1)
		require.Len(t, resp.Warnings, 1)
		assert.Contains(t, resp.Warnings[0], "幽灵小店")
	})

	t.Run("duplicate brand shops collapse into one group", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("麦当劳")).
			Return(branches("mcd", 3), nil).Once()

		uc := newPlanUseCase(mockPlace, nil, false)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "麦当劳"}, {Name: "McDonald's 王府井"}},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, resp.Stats.CombinationsTotal)
		require.NotEmpty(t, resp.Warnings)
		assert.Contains(t, resp.Warnings[0], "McDonald's 王府井")
		mockPlace.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("nothing resolvable yields no viable stops", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		uc := newPlanUseCase(mockPlace, nil, false)
		_, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "幽灵小店"}},
		})
		assert.ErrorContains(t, err, apperrors.ErrNoViableStops.Code)
	})

	t.Run("search errors for every shop also yield no viable stops", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, mock.Anything).
			Return(nil, errors.New("provider down"))

		uc := newPlanUseCase(mockPlace, nil, false)
		_, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "麦当劳"}},
		})
		assert.ErrorContains(t, err, apperrors.ErrNoViableStops.Code)
	})

	t.Run("oversized products are narrowed and capped", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("麦当劳")).Return(branches("mcd", 8), nil)
		mockPlace.On("Search", mock.Anything, searchFor("肯德基")).Return(branches("kfc", 8), nil)
		mockPlace.On("Search", mock.Anything, searchFor("星巴克")).Return(branches("sbux", 8), nil)

		uc := newPlanUseCase(mockPlace, nil, false)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "麦当劳"}, {Name: "肯德基"}, {Name: "星巴克"}},
		})
		require.NoError(t, err)

		assert.Equal(t, 512, resp.Stats.CombinationsTotal)
		assert.True(t, resp.Stats.Narrowed)
		assert.Equal(t, 50, resp.Stats.CombinationsEvaluated)
		require.NotEmpty(t, resp.Warnings)
		assert.Contains(t, resp.Warnings[len(resp.Warnings)-1], "50")
		assert.Len(t, resp.ByTime, 5)
		assert.Len(t, resp.ByDistance, 5)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := newPlanUseCase(&MockPlaceRepository{}, nil, false)

		_, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  dto.Point{Lat: 91, Lon: 0},
			Shops: []dto.ShopInput{{Name: "麦当劳"}},
		})
		assert.ErrorContains(t, err, apperrors.ErrInvalidCoordinates.Code)

		_, err = uc.Plan(ctx, dto.PlanRequest{Home: testHome})
		assert.ErrorContains(t, err, apperrors.ErrEmptyShopList.Code)

		_, err = uc.Plan(ctx, dto.PlanRequest{
			Home:       testHome,
			Shops:      []dto.ShopInput{{Name: "麦当劳"}},
			TravelMode: "TELEPORT",
		})
		assert.ErrorContains(t, err, apperrors.ErrInvalidTravelMode.Code)
	})

	t.Run("concurrent plan is rejected", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})

		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				close(started)
				<-release
			}).
			Return([]domain.Place{place("sbux", 39.920)}, nil)

		uc := newPlanUseCase(mockPlace, nil, false)
		req := dto.PlanRequest{Home: testHome, Shops: []dto.ShopInput{{Name: "星巴克"}}}

		done := make(chan error, 1)
		go func() {
			_, err := uc.Plan(ctx, req)
			done <- err
		}()

		<-started
		_, err := uc.Plan(ctx, req)
		assert.ErrorContains(t, err, apperrors.ErrAlreadyPlanning.Code)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, usecase.StateIdle, uc.State())
	})
}

func TestPlanUseCase_Directions(t *testing.T) {
	ctx := context.Background()

	t.Run("successful directions replace the estimate", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("张记面馆")).
			Return([]domain.Place{place("noodle", 39.915)}, nil)

		mockDirections := &MockDirectionsRepository{}
		mockDirections.On("Route", mock.Anything, domain.ModeDriving, mock.MatchedBy(func(wp []domain.Coordinate) bool {
			return len(wp) == 3 // home, stop, home
		})).Return(&domain.DirectionsResult{DistanceMeters: 3456, DurationSeconds: 789}, nil)

		uc := newPlanUseCase(mockPlace, mockDirections, true)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "张记面馆"}},
		})
		require.NoError(t, err)

		require.Len(t, resp.ByTime, 1)
		route := resp.ByTime[0]
		assert.False(t, route.IsEstimated)
		assert.Equal(t, 3456.0, route.TotalDistanceMeters)
		assert.Equal(t, 789.0, route.TotalDurationSeconds)
	})

	t.Run("failed directions keep the heuristic estimate", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockPlace.On("Search", mock.Anything, searchFor("张记面馆")).
			Return([]domain.Place{place("noodle", 39.915)}, nil)

		mockDirections := &MockDirectionsRepository{}
		mockDirections.On("Route", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("quota exceeded"))

		uc := newPlanUseCase(mockPlace, mockDirections, true)
		resp, err := uc.Plan(ctx, dto.PlanRequest{
			Home:  testHome,
			Shops: []dto.ShopInput{{Name: "张记面馆"}},
		})
		require.NoError(t, err)

		require.Len(t, resp.ByTime, 1)
		route := resp.ByTime[0]
		assert.True(t, route.IsEstimated)
		assert.Greater(t, route.TotalDistanceMeters, 0.0)
		assert.Greater(t, route.TotalDurationSeconds, 0.0)
	})
}
