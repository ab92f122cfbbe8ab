package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/nearby-restaurants/internal/domain"
	"github.com/nearby-restaurants/internal/domain/repository"
	"github.com/nearby-restaurants/internal/metrics"
	"github.com/nearby-restaurants/internal/usecase/dto"
	"go.uber.org/zap"
)

type RestaurantUseCase struct {
	placesRepo   repository.PlacesRepository
	providerName string
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewRestaurantUseCase(
	placesRepo repository.PlacesRepository,
	providerName string,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		placesRepo:   placesRepo,
		providerName: providerName,
		metrics:      metrics,
		logger:       logger,
	}
}

// FindNearby runs exactly one upstream search for q. Any failure is returned
// as *domain.PlacesError.
func (uc *RestaurantUseCase) FindNearby(
	ctx context.Context,
	q domain.SearchQuery,
) (*dto.RestaurantsResponse, error) {
	radius := q.EffectiveRadius()

	start := time.Now()
	places, err := uc.placesRepo.NearbySearch(ctx, q.Latitude, q.Longitude, radius)
	uc.metrics.RequestSeconds.WithLabelValues(uc.providerName).Observe(time.Since(start).Seconds())

	if err != nil {
		var placesErr *domain.PlacesError
		if !errors.As(err, &placesErr) {
			err = domain.NewPlacesRequestFailed(err)
		}

		uc.metrics.Searches.WithLabelValues("failure").Inc()
		uc.metrics.APIErrors.Inc()
		uc.logger.Warn("Nearby search failed",
			zap.Float64("lat", q.Latitude),
			zap.Float64("lng", q.Longitude),
			zap.Int("radius", radius),
			zap.Error(err),
		)
		return nil, err
	}

	if places == nil {
		places = []domain.Place{}
	}
	uc.metrics.Searches.WithLabelValues("success").Inc()

	return &dto.RestaurantsResponse{
		Success: true,
		Results: places,
		Meta: dto.SearchMeta{
			Latitude:      q.Latitude,
			Longitude:     q.Longitude,
			Radius:        radius,
			ResultsLength: len(places),
		},
	}, nil
}
