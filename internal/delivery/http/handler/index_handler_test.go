package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearby-restaurants/internal/delivery/http/handler"
)

func TestIndexHandler(t *testing.T) {
	collection := []byte(`{"info":{"name":"Nearby Restaurants"},"item":[]}`)
	h := handler.NewIndexHandler(collection)

	app := fiber.New()
	app.Get("/", h.Index)
	app.Get("/postman", h.Postman)

	t.Run("index lists endpoints", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"endpoints":["/restuarants","/postman"]}`, string(body))
	})

	t.Run("postman collection served verbatim", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/postman", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
		assert.Equal(t, collection, body)
	})
}
