package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	apperrors "github.com/nearby-restaurants/internal/pkg/errors"
	"github.com/nearby-restaurants/internal/pkg/utils"
	"github.com/nearby-restaurants/internal/pkg/validator"
	"github.com/nearby-restaurants/internal/usecase"
	"github.com/nearby-restaurants/internal/usecase/dto"
	"go.uber.org/zap"
)

// APIKeyHeader carries the client credential.
const APIKeyHeader = "X-API-KEY"

// RestaurantHandler - обработчик поиска ближайших ресторанов
type RestaurantHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	clientAPIKey string
	logger       *zap.Logger
}

// NewRestaurantHandler - создание нового RestaurantHandler
func NewRestaurantHandler(
	restaurantUC *usecase.RestaurantUseCase,
	clientAPIKey string,
	logger *zap.Logger,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		clientAPIKey: clientAPIKey,
		logger:       logger,
	}
}

// GetRestaurants godoc
// @Summary Nearby takeaway restaurants
// @Description Searches Google Places for meal-takeaway venues around a point. Upstream failures are reported with HTTP 200 and success=false.
// @Tags Restaurants
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radiusInMeters query int false "Search radius in meters" default(5000)
// @Param X-API-KEY header string true "Client API key"
// @Success 200 {object} dto.RestaurantsResponse
// @Failure 400 {array} validator.FieldError
// @Router /restuarants [get]
func (h *RestaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	req := dto.RestaurantsRequest{
		Latitude:       c.Query("latitude"),
		Longitude:      c.Query("longitude"),
		APIKey:         strings.TrimSpace(c.Get(APIKeyHeader)),
		ExpectedAPIKey: h.clientAPIKey,
	}
	if c.Context().QueryArgs().Has("radiusInMeters") {
		radius := c.Query("radiusInMeters")
		req.RadiusInMeters = &radius
	}

	if err := validator.Validate(&req); err != nil {
		errs := validator.Describe(err, &req, dto.RestaurantsRequestMessages)
		h.logger.Debug("Rejected restaurants request", zap.Int("errors", len(errs)))
		return utils.SendValidationErrors(c, errs)
	}

	query, err := req.ToQuery()
	if err != nil {
		h.logger.Error("Validated request did not parse", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	result, err := h.restaurantUC.FindNearby(c.Context(), query)
	if err != nil {
		return utils.SendFailure(c, err)
	}

	return utils.SendSuccess(c, result)
}
