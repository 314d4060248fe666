package main

// @title Shop Crawl Service API
// @version 1.0.0
// @description Service for planning multi-stop shopping trips. Resolves a shop list to concrete places via AMap, expands chain brands into nearby branches, evaluates the branch combinations and returns the best routes ranked by time and by distance.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/shopcrawl-service/docs/swagger"
	"github.com/shopcrawl-service/internal/config"
	httpDelivery "github.com/shopcrawl-service/internal/delivery/http"
	"github.com/shopcrawl-service/internal/delivery/http/handler"
	"github.com/shopcrawl-service/internal/infrastructure/amap"
	"github.com/shopcrawl-service/internal/pkg/logger"
	"github.com/shopcrawl-service/internal/planner"
	"github.com/shopcrawl-service/internal/repository/cache"
	"github.com/shopcrawl-service/internal/repository/postgres"
	"github.com/shopcrawl-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Shop Crawl Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks and schema
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	amapClient := amap.NewClient(&cfg.AMap, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	tripRepo := postgres.NewTripRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize planner components
	classifier := planner.NewClassifier(planner.DefaultBrands())
	tuning := planner.Tuning{
		MaxBranchesPerBrand:  cfg.Planner.MaxBranchesPerBrand,
		MaxRadiusMeters:      cfg.Planner.MaxRadiusMeters,
		CombinationThreshold: cfg.Planner.CombinationThreshold,
		NarrowedBranchLimit:  cfg.Planner.NarrowedBranchLimit,
		EvaluationCap:        cfg.Planner.EvaluationCap,
		TopN:                 cfg.Planner.TopN,
		TimeWeight:           cfg.Planner.TimeWeight,
		DistanceWeight:       cfg.Planner.DistanceWeight,
	}
	speeds := planner.DefaultSpeeds()

	// 8. Initialize Use Cases
	planUC := usecase.NewPlanUseCase(
		amapClient,
		amapClient,
		cacheRepo,
		classifier,
		tuning,
		speeds,
		log,
		cfg.Cache.SearchCacheTTL,
		cfg.Planner.DirectionsEnabled,
		cfg.Planner.EvalConcurrency,
	)

	shopSearchUC := usecase.NewShopSearchUseCase(
		amapClient,
		cacheRepo,
		classifier,
		tuning,
		log,
		cfg.Cache.SearchCacheTTL,
	)

	tripUC := usecase.NewTripUseCase(tripRepo, classifier, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	planHandler := handler.NewPlanHandler(planUC, log)
	shopHandler := handler.NewShopHandler(shopSearchUC, log)
	tripHandler := handler.NewTripHandler(tripUC, log)

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		planHandler,
		shopHandler,
		tripHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
