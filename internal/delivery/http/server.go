package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/config"
	"github.com/shopcrawl-service/internal/delivery/http/handler"
	"github.com/shopcrawl-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server wiring middleware, routes and handlers.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	planHandler *handler.PlanHandler
	shopHandler *handler.ShopHandler
	tripHandler *handler.TripHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	planHandler *handler.PlanHandler,
	shopHandler *handler.ShopHandler,
	tripHandler *handler.TripHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Shop Crawl Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:         app,
		config:      cfg,
		logger:      logger,
		planHandler: planHandler,
		shopHandler: shopHandler,
		tripHandler: tripHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Planner routes
	api.Post("/route/plan", s.planHandler.Plan)
	api.Get("/route/state", s.planHandler.State)

	// Shop search
	api.Post("/shops/find", s.shopHandler.FindShops)

	// Saved trips
	api.Post("/trips", s.tripHandler.Save)
	api.Get("/trips", s.tripHandler.List)
	api.Get("/trips/:id", s.tripHandler.GetByID)
	api.Delete("/trips/:id", s.tripHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the Fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
