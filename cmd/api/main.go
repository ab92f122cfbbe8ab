package main

// @title Nearby Restaurants API
// @version 1.0.0
// @description Relay over the Google Places nearby search, restricted to meal-takeaway venues.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nearby-restaurants/docs"
	"github.com/nearby-restaurants/internal/config"
	httpDelivery "github.com/nearby-restaurants/internal/delivery/http"
	"github.com/nearby-restaurants/internal/delivery/http/handler"
	"github.com/nearby-restaurants/internal/infrastructure/googleplaces"
	"github.com/nearby-restaurants/internal/metrics"
	"github.com/nearby-restaurants/internal/pkg/logger"
	"github.com/nearby-restaurants/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Nearby Restaurants API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_provider", cfg.Places.Provider),
	)

	// 3. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	// 4. Upstream client
	placesRepo, err := googleplaces.NewRepository(&cfg.Places, log)
	if err != nil {
		log.Fatal("Failed to create places client", zap.Error(err))
	}

	// 5. Use cases and handlers
	restaurantUC := usecase.NewRestaurantUseCase(placesRepo, cfg.Places.Provider, m, log)

	indexHandler := handler.NewIndexHandler(docs.PostmanCollection)
	restaurantHandler := handler.NewRestaurantHandler(restaurantUC, cfg.Auth.ClientAPIKey, log)

	// 6. HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		reg,
		m,
		indexHandler,
		restaurantHandler,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("Shutting down server gracefully...", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
