package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/services"
)

// mapServiceError maps service-layer errors to the uniform error envelope.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			validErr.Error(), "fix the named field and retry")
	}

	if se, ok := services.AsError(err); ok {
		return writeError(c, statusOf(se), se.Code, se.Message, se.Remediation)
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return writeError(c, http.StatusNotFound, services.CodeContentItemNotFound,
			"resource not found", "check the resource id")
	case errors.Is(err, services.ErrAlreadyExists):
		return writeError(c, http.StatusConflict, services.CodeValidationFailed,
			"resource already exists", "fetch the existing resource instead")
	case errors.Is(err, services.ErrInvalidInput):
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			err.Error(), "fix the request and retry")
	case errors.Is(err, services.ErrConcurrentModification):
		return writeError(c, http.StatusConflict, services.CodeVersionConflict,
			err.Error(), "re-read the resource and retry")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err, "request_id", requestIDOf(c))
	return writeError(c, http.StatusInternalServerError, services.CodeInternal,
		"internal server error", "retry with the same request id and contact support if it persists")
}

// statusOf picks the HTTP status for a coded service error. The sentinel
// picks the family; a few codes override it.
func statusOf(se *services.Error) int {
	switch se.Code {
	case services.CodeAuthMissingCredentials, services.CodeAuthInvalidKey,
		services.CodeAuthKeyRevoked, services.CodeAuthKeyExpired:
		return http.StatusUnauthorized
	case services.CodeAuthInsufficientScope:
		return http.StatusForbidden
	case services.CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case services.CodeSchemaValidationFailed:
		// Well-formed JSON that fails the type's schema, as opposed to a
		// malformed request.
		return http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(se, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(se, services.ErrAlreadyExists), errors.Is(se, services.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(se, services.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(se, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(se, services.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
