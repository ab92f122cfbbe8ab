package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nearby-restaurants/internal/domain"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// MapsAPIClient is the part of *maps.Client the SDK provider needs.
type MapsAPIClient interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// SDKClient searches places through the googlemaps client library. Results
// are re-encoded from the library's typed records.
type SDKClient struct {
	client MapsAPIClient
	logger *zap.Logger
}

func NewSDKClient(client MapsAPIClient, logger *zap.Logger) *SDKClient {
	return &SDKClient{client: client, logger: logger}
}

func (c *SDKClient) NearbySearch(ctx context.Context, lat, lng float64, radius int) ([]domain.Place, error) {
	if lat == 0 || lng == 0 {
		return []domain.Place{}, nil
	}
	radius, err := searchRadius(radius)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Calling Google Places nearby search via SDK",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Int("radius", radius))

	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   uint(radius),
		Type:     maps.PlaceTypeMealTakeaway,
	}

	resp, err := c.client.NearbySearch(ctx, req)
	if err != nil {
		c.logger.Error("Google Places SDK request failed", zap.Error(err))
		return nil, sdkError(err)
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, result := range resp.Results {
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, domain.NewPlacesRequestFailed(fmt.Errorf("failed to encode place: %w", err))
		}
		places = append(places, raw)
	}

	return places, nil
}

// sdkError maps the library's "maps: STATUS - message" errors onto the
// provider status table.
func sdkError(err error) error {
	if rest, ok := strings.CutPrefix(err.Error(), "maps: "); ok {
		status, _, _ := strings.Cut(rest, " ")
		if placesErr, known := domain.LookupPlacesStatus(status); known {
			return placesErr
		}
	}
	return domain.NewPlacesRequestFailed(err)
}
