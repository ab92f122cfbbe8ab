package repository

import (
	"context"

	"github.com/nearby-restaurants/internal/domain"
)

// PlacesRepository searches the upstream places provider.
type PlacesRepository interface {
	// NearbySearch returns meal-takeaway places within radius meters of the
	// point. A zero radius means domain.DefaultRadiusMeters. Failures are
	// always *domain.PlacesError.
	NearbySearch(ctx context.Context, lat, lng float64, radius int) ([]domain.Place, error)
}
