package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nearby-restaurants/internal/pkg/utils"
	"github.com/nearby-restaurants/internal/usecase/dto"
)

// IndexHandler serves the endpoint listing and the bundled Postman collection.
type IndexHandler struct {
	postmanCollection []byte
}

func NewIndexHandler(postmanCollection []byte) *IndexHandler {
	return &IndexHandler{postmanCollection: postmanCollection}
}

// Index godoc
// @Summary List endpoints
// @Tags Meta
// @Produce json
// @Success 200 {object} dto.IndexResponse
// @Router / [get]
func (h *IndexHandler) Index(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.IndexResponse{
		Endpoints: []string{"/restuarants", "/postman"},
	})
}

// Postman godoc
// @Summary Postman collection
// @Description Returns the bundled Postman collection for this API.
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /postman [get]
func (h *IndexHandler) Postman(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(h.postmanCollection)
}
