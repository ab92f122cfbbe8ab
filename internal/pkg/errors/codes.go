package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrMethodNotAllowed = New(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		http.StatusMethodNotAllowed,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// FromStatus returns the error matching an HTTP status code, falling back
// to ErrInternalServer.
func FromStatus(status int) *AppError {
	switch status {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusMethodNotAllowed:
		return ErrMethodNotAllowed
	default:
		return ErrInternalServer
	}
}
