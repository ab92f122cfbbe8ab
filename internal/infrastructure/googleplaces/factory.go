package googleplaces

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nearby-restaurants/internal/config"
	"github.com/nearby-restaurants/internal/domain/repository"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// Provider names accepted by PLACES_PROVIDER.
const (
	ProviderHTTP = "http"
	ProviderSDK  = "sdk"
)

// NewRepository builds the places repository selected by cfg.Provider.
func NewRepository(cfg *config.PlacesConfig, logger *zap.Logger) (repository.PlacesRepository, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required for Google Places")
	}

	switch cfg.Provider {
	case ProviderHTTP, "":
		return NewClient(cfg, logger), nil
	case ProviderSDK:
		return newSDKRepository(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported places provider: %s", cfg.Provider)
	}
}

func newSDKRepository(cfg *config.PlacesConfig, logger *zap.Logger) (repository.PlacesRepository, error) {
	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(cfg.RateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewSDKClient(client, logger), nil
}
