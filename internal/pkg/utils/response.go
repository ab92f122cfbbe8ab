package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nearby-restaurants/internal/pkg/errors"
	"github.com/nearby-restaurants/internal/pkg/validator"
)

// FailureResponse is returned with HTTP 200 when the upstream search fails.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendFailure reports an upstream failure. Clients branch on the success
// field, so the status stays 200.
func SendFailure(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusOK).JSON(FailureResponse{
		Success: false,
		Message: err.Error(),
	})
}

// SendValidationErrors responds 400 with the bare descriptor list.
func SendValidationErrors(c *fiber.Ctx, errs []validator.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(errs)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
