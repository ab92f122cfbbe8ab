package dto

import (
	"fmt"
	"strconv"

	"github.com/nearby-restaurants/internal/domain"
)

// RestaurantsRequest - raw parameters of a nearby restaurants search
type RestaurantsRequest struct {
	Latitude       string  `param:"latitude" location:"query" validate:"required,floating"`
	Longitude      string  `param:"longitude" location:"query" validate:"required,floating"`
	RadiusInMeters *string `param:"radiusInMeters" location:"query" validate:"omitempty,integer"`
	APIKey         string  `param:"x-api-key" location:"headers" validate:"required,eqfield=ExpectedAPIKey"`

	// ExpectedAPIKey is the configured client key the header must match.
	ExpectedAPIKey string `json:"-" validate:"-"`
}

// RestaurantsRequestMessages maps "<param>.<tag>" to client-facing messages.
var RestaurantsRequestMessages = map[string]string{
	"latitude.required":      "Latitude required.",
	"latitude.floating":      "Latitude should be a double / float.",
	"longitude.required":     "Longitude required.",
	"longitude.floating":     "Longitude should be a double / float.",
	"radiusInMeters.integer": "Radius should be a number in meters.",
	"x-api-key.required":     "X-API-KEY header required.",
	"x-api-key.eqfield":      "Invalid X-API-KEY.",
}

// ToQuery converts a validated request into a search query.
func (r *RestaurantsRequest) ToQuery() (domain.SearchQuery, error) {
	lat, err := strconv.ParseFloat(r.Latitude, 64)
	if err != nil {
		return domain.SearchQuery{}, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(r.Longitude, 64)
	if err != nil {
		return domain.SearchQuery{}, fmt.Errorf("parse longitude: %w", err)
	}

	query := domain.SearchQuery{Latitude: lat, Longitude: lng}
	if r.RadiusInMeters != nil {
		radius, err := strconv.Atoi(*r.RadiusInMeters)
		if err != nil {
			return domain.SearchQuery{}, fmt.Errorf("parse radius: %w", err)
		}
		query.RadiusMeters = &radius
	}
	return query, nil
}
