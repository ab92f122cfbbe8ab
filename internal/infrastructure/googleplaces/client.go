package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nearby-restaurants/internal/config"
	"github.com/nearby-restaurants/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const nearbySearchPath = "/maps/api/place/nearbysearch/json"

// HTTPClient is the part of *http.Client the places client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Places nearby-search endpoint over plain HTTP and passes
// result records through uninterpreted.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

type nearbySearchResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Results      []json.RawMessage `json:"results"`
}

// NewClient creates a places client from configuration.
func NewClient(cfg *config.PlacesConfig, logger *zap.Logger) *Client {
	return NewClientWithHTTP(
		&http.Client{Timeout: cfg.RequestTimeout},
		cfg.BaseURL,
		cfg.APIKey,
		newLimiter(cfg.RateLimit),
		logger,
	)
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
func NewClientWithHTTP(
	httpClient HTTPClient,
	baseURL string,
	apiKey string,
	limiter *rate.Limiter,
	logger *zap.Logger,
) *Client {
	if limiter == nil {
		limiter = newLimiter(0)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    limiter,
		logger:     logger,
	}
}

func newLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

// NearbySearch returns meal-takeaway places around the point.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radius int) ([]domain.Place, error) {
	if lat == 0 || lng == 0 {
		return []domain.Place{}, nil
	}
	radius, err := searchRadius(radius)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewPlacesRequestFailed(fmt.Errorf("rate limit exceeded: %w", err))
	}

	reqURL, err := url.Parse(c.baseURL + nearbySearchPath)
	if err != nil {
		return nil, domain.NewPlacesRequestFailed(fmt.Errorf("failed to parse base URL: %w", err))
	}

	query := reqURL.Query()
	query.Set("location", formatCoordinate(lat)+","+formatCoordinate(lng))
	query.Set("radius", strconv.Itoa(radius))
	query.Set("key", c.apiKey)
	query.Set("type", domain.PlaceTypeMealTakeaway)
	reqURL.RawQuery = query.Encode()

	c.logger.Debug("Calling Google Places nearby search",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Int("radius", radius))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, domain.NewPlacesRequestFailed(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, domain.NewPlacesRequestFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("Google Places API returned error",
			zap.Int("status_code", resp.StatusCode))
		return nil, domain.NewPlacesRequestFailed(
			fmt.Errorf("request failed with status code %d", resp.StatusCode))
	}

	var body nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, domain.NewPlacesRequestFailed(fmt.Errorf("failed to decode response: %w", err))
	}

	if err := domain.PlacesStatusError(body.Status); err != nil {
		c.logger.Error("Google Places API returned non-OK status",
			zap.String("status", body.Status),
			zap.String("error_message", body.ErrorMessage))
		return nil, err
	}

	places := make([]domain.Place, 0, len(body.Results))
	places = append(places, body.Results...)

	c.logger.Debug("Google Places nearby search successful",
		zap.String("status", body.Status),
		zap.Int("results", len(places)),
		zap.Duration("took", time.Since(start)))

	return places, nil
}

// searchRadius applies the default radius. Both providers reject negative
// values before calling upstream.
func searchRadius(radius int) (int, error) {
	switch {
	case radius == 0:
		return domain.DefaultRadiusMeters, nil
	case radius < 0:
		return 0, domain.NewPlacesRequestFailed(fmt.Errorf("invalid radius %d", radius))
	default:
		return radius, nil
	}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
