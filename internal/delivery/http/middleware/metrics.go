package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/nearby-restaurants/internal/metrics"
)

// Metrics counts handled requests by method, route and status. Label values
// are copied because the registry keeps them beyond the request.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		m.HTTPRequests.WithLabelValues(
			utils.CopyString(c.Method()),
			utils.CopyString(c.Route().Path),
			strconv.Itoa(responseStatus(c, err)),
		).Inc()

		return err
	}
}
