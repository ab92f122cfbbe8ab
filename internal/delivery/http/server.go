package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/nearby-restaurants/internal/config"
	"github.com/nearby-restaurants/internal/delivery/http/handler"
	"github.com/nearby-restaurants/internal/delivery/http/middleware"
	"github.com/nearby-restaurants/internal/metrics"
	apperrors "github.com/nearby-restaurants/internal/pkg/errors"
	"github.com/nearby-restaurants/internal/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	registry prometheus.Gatherer
	metrics  *metrics.Metrics

	// Handlers
	indexHandler      *handler.IndexHandler
	restaurantHandler *handler.RestaurantHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	registry prometheus.Gatherer,
	m *metrics.Metrics,
	indexHandler *handler.IndexHandler,
	restaurantHandler *handler.RestaurantHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Nearby Restaurants API",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.Places.RequestTimeout + 5*time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		registry:          registry,
		metrics:           m,
		indexHandler:      indexHandler,
		restaurantHandler: restaurantHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/", s.indexHandler.Index)
	s.app.Get("/postman", s.indexHandler.Postman)
	s.app.Get("/restuarants", s.restaurantHandler.GetRestaurants)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
}

// App exposes the underlying fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escaped the handlers: unmatched
// routes, wrong methods and recovered panics.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := apperrors.ErrInternalServer

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			appErr = apperrors.FromStatus(fiberErr.Code)
			appErr = appErr.WithMessage(fiberErr.Message)
			appErr.StatusCode = fiberErr.Code
		}

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", fiberutils.CopyString(c.Path())),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		return utils.SendError(c, appErr)
	}
}
