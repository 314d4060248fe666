package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
	"github.com/shopcrawl-service/internal/pkg/errors"
	"github.com/shopcrawl-service/internal/pkg/utils"
	"github.com/shopcrawl-service/internal/planner"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

// PlanState names the phase the planner is currently in. Only one plan runs
// at a time, so a single state value is enough.
type PlanState string

const (
	StateIdle       PlanState = "idle"
	StateSearching  PlanState = "searching"
	StateGenerating PlanState = "generating"
	StateEvaluating PlanState = "evaluating"
	StateRanked     PlanState = "ranked"
)

// PlanUseCase runs the whole pipeline for one plan request: resolve shops to
// places, expand chain brands into branch combinations, evaluate each
// combination and rank the results.
type PlanUseCase struct {
	finder         *placeFinder
	directionsRepo repository.DirectionsRepository
	classifier     *planner.Classifier
	tuning         planner.Tuning
	speeds         planner.Speeds
	logger         *zap.Logger

	directionsEnabled bool
	evalConcurrency   int

	isPlanning atomic.Bool
	state      atomic.Value // PlanState
}

func NewPlanUseCase(
	placeRepo repository.PlaceRepository,
	directionsRepo repository.DirectionsRepository,
	cacheRepo repository.CacheRepository,
	classifier *planner.Classifier,
	tuning planner.Tuning,
	speeds planner.Speeds,
	logger *zap.Logger,
	cacheTTL time.Duration,
	directionsEnabled bool,
	evalConcurrency int,
) *PlanUseCase {
	if evalConcurrency <= 0 {
		evalConcurrency = 4
	}
	uc := &PlanUseCase{
		finder:            newPlaceFinder(placeRepo, cacheRepo, cacheTTL, logger),
		directionsRepo:    directionsRepo,
		classifier:        classifier,
		tuning:            tuning,
		speeds:            speeds,
		logger:            logger,
		directionsEnabled: directionsEnabled,
		evalConcurrency:   evalConcurrency,
	}
	uc.state.Store(StateIdle)
	return uc
}

// State reports the current planning phase.
func (uc *PlanUseCase) State() PlanState {
	return uc.state.Load().(PlanState)
}

func (uc *PlanUseCase) setState(s PlanState) {
	uc.state.Store(s)
	uc.logger.Info("Planner state changed", zap.String("state", string(s)))
}

// Plan computes ranked route candidates. A second call while one is in
// flight is rejected with ErrAlreadyPlanning rather than queued.
func (uc *PlanUseCase) Plan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	if !uc.isPlanning.CompareAndSwap(false, true) {
		return nil, errors.ErrAlreadyPlanning
	}
	defer func() {
		uc.setState(StateIdle)
		uc.isPlanning.Store(false)
	}()

	started := time.Now()

	if !utils.ValidateCoordinates(req.Home.Lat, req.Home.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if len(req.Shops) == 0 {
		return nil, errors.ErrEmptyShopList
	}

	modeStr := req.TravelMode
	if modeStr == "" {
		modeStr = string(domain.ModeDriving)
	}
	mode, ok := domain.ParseTravelMode(modeStr)
	if !ok {
		return nil, errors.ErrInvalidTravelMode
	}

	home := domain.Coordinate{Latitude: req.Home.Lat, Longitude: req.Home.Lon}
	shops := dto.ShopsToDomain(req.Shops)

	uc.setState(StateSearching)
	fixed, groups, stays, warnings := uc.resolveShops(ctx, home, req.City, shops)
	if len(fixed) == 0 && len(groups) == 0 {
		return nil, errors.ErrNoViableStops.WithDetails(map[string]interface{}{
			"warnings": warnings,
		})
	}

	uc.setState(StateGenerating)
	combinationsTotal := planner.Product(groups)
	narrowed := combinationsTotal > uc.tuning.CombinationThreshold
	if narrowed {
		uc.logger.Info("Narrowing branch lists",
			zap.Int("combinations", combinationsTotal),
			zap.Int("threshold", uc.tuning.CombinationThreshold))
		groups = planner.Narrow(groups, uc.tuning)
	}

	combinations := planner.Generate(groups, fixed)
	if len(combinations) == 0 {
		return nil, errors.ErrNoRoutes
	}
	if len(combinations) > uc.tuning.EvaluationCap {
		warnings = append(warnings, fmt.Sprintf(
			"evaluated only the first %d of %d combinations", uc.tuning.EvaluationCap, len(combinations)))
		combinations = combinations[:uc.tuning.EvaluationCap]
	}

	uc.setState(StateEvaluating)
	candidates := uc.evaluate(ctx, home, combinations, mode)
	if len(candidates) == 0 {
		return nil, errors.ErrNoRoutes
	}

	uc.setState(StateRanked)
	ranked := planner.Rank(candidates, uc.tuning)

	elapsed := time.Since(started)
	uc.logger.Info("Plan completed",
		zap.Int("combinations_total", combinationsTotal),
		zap.Int("combinations_evaluated", len(combinations)),
		zap.Bool("narrowed", narrowed),
		zap.Duration("elapsed", elapsed))

	return &dto.PlanResponse{
		TravelMode: string(mode),
		Shops:      req.Shops,
		ByTime:     uc.convertRoutes(ranked.ByTime, stays),
		ByDistance: uc.convertRoutes(ranked.ByDistance, stays),
		Warnings:   warnings,
		Stats: dto.PlanStats{
			CombinationsTotal:     combinationsTotal,
			CombinationsEvaluated: len(combinations),
			Narrowed:              narrowed,
			ElapsedMSec:           elapsed.Milliseconds(),
		},
	}, nil
}

// shopResolution carries per-place metadata collected while resolving shops.
type shopResolution struct {
	stayMinutes int
	brand       string
	kind        domain.ShopKind
}

// resolveShops turns each shop intent into either a fixed stop (private
// shops, nearest hit wins) or a brand group of candidate branches (chains).
// Unresolvable shops produce a warning and are skipped, not an error.
func (uc *PlanUseCase) resolveShops(
	ctx context.Context,
	home domain.Coordinate,
	city string,
	shops []domain.ShopToVisit,
) ([]domain.Place, []domain.BrandGroup, map[string]shopResolution, []string) {
	var fixed []domain.Place
	var groups []domain.BrandGroup
	var warnings []string
	stays := make(map[string]shopResolution)
	seenBrands := make(map[string]bool)

	for _, shop := range shops {
		brand, isChain := uc.classifier.Classify(shop.Name)

		keywords := shop.Name
		if isChain {
			if seenBrands[brand] {
				warnings = append(warnings, fmt.Sprintf("%s is already covered by another shop", shop.Name))
				continue
			}
			keywords = brand
		}

		places, err := uc.finder.search(ctx, domain.PlaceQuery{
			Keywords:     keywords,
			City:         city,
			Near:         &home,
			RadiusMeters: int(uc.tuning.MaxRadiusMeters),
		})
		if err != nil {
			uc.logger.Warn("Shop search failed",
				zap.String("shop", shop.Name),
				zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("search failed for %s", shop.Name))
			continue
		}

		reachable := planner.FilterByHome(places, home, uc.tuning.MaxBranchesPerBrand, uc.tuning.MaxRadiusMeters)
		if len(reachable) == 0 {
			warnings = append(warnings, fmt.Sprintf("no reachable location for %s", shop.Name))
			continue
		}

		if isChain {
			// Keyword search can return hits from other chains; keep only the
			// cluster that classifies to the requested brand.
			branches := reachable
			for _, g := range uc.classifier.GroupBranches(reachable) {
				if g.BrandName == brand {
					branches = g.Branches
					break
				}
			}

			seenBrands[brand] = true
			groups = append(groups, domain.BrandGroup{BrandName: brand, Branches: branches})
			uc.logger.Debug("Shop resolved to brand group",
				zap.String("shop", shop.Name),
				zap.String("brand", brand),
				zap.Int("branches", len(branches)))
			for _, branch := range branches {
				stays[branch.ID] = shopResolution{
					stayMinutes: shop.StayDurationMinutes,
					brand:       brand,
					kind:        domain.ShopKindChain,
				}
			}
		} else {
			nearest := reachable[0]
			fixed = append(fixed, nearest)
			uc.logger.Debug("Shop resolved to fixed stop",
				zap.String("shop", shop.Name),
				zap.String("place_id", nearest.ID))
			stays[nearest.ID] = shopResolution{
				stayMinutes: shop.StayDurationMinutes,
				kind:        domain.ShopKindPrivate,
			}
		}
	}

	return fixed, groups, stays, warnings
}

// evaluate scores every combination with the heuristic speed model first,
// then, when live directions are enabled, upgrades as many candidates as the
// provider answers for. A failed directions call leaves the heuristic result
// in place with IsEstimated still true.
func (uc *PlanUseCase) evaluate(
	ctx context.Context,
	home domain.Coordinate,
	combinations [][]domain.Place,
	mode domain.TravelMode,
) []domain.RouteCandidate {
	candidates := make([]domain.RouteCandidate, len(combinations))
	for i, stops := range combinations {
		candidates[i] = uc.speeds.Evaluate(home, stops, mode)
	}

	if !uc.directionsEnabled || uc.directionsRepo == nil {
		return candidates
	}

	sem := make(chan struct{}, uc.evalConcurrency)
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			waypoints := make([]domain.Coordinate, 0, len(candidates[i].VisitOrder)+2)
			waypoints = append(waypoints, home)
			for _, stop := range candidates[i].VisitOrder {
				waypoints = append(waypoints, stop.Location)
			}
			waypoints = append(waypoints, home)

			result, err := uc.directionsRepo.Route(ctx, mode, waypoints)
			if err != nil {
				uc.logger.Warn("Directions call failed, keeping estimate",
					zap.Int("candidate", i),
					zap.Error(err))
				return
			}

			candidates[i].TotalDistanceMeters = result.DistanceMeters
			candidates[i].TotalDurationSeconds = result.DurationSeconds
			candidates[i].IsEstimated = false
		}(i)
	}
	wg.Wait()

	return candidates
}

func (uc *PlanUseCase) convertRoutes(
	candidates []domain.RouteCandidate,
	stays map[string]shopResolution,
) []dto.RouteResult {
	results := make([]dto.RouteResult, 0, len(candidates))
	for _, c := range candidates {
		result := dto.ConvertRoute(c, planner.Score(c, uc.tuning))
		for i := range result.VisitOrder {
			if res, ok := stays[result.VisitOrder[i].ID]; ok {
				result.VisitOrder[i].StayDurationMinutes = res.stayMinutes
				result.VisitOrder[i].Brand = res.brand
				result.VisitOrder[i].Kind = string(res.kind)
			}
		}
		results = append(results, result)
	}
	return results
}
