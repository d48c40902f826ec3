package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
)

// ErrorEnvelope is the uniform error body. Every error carries a stable
// machine-readable code and an actionable remediation hint; context always
// holds the request correlation id.
type ErrorEnvelope struct {
	Error       string         `json:"error"`
	Code        string         `json:"code"`
	Remediation string         `json:"remediation,omitempty"`
	Context     ErrorContext   `json:"context"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// ErrorContext correlates the error with the request.
type ErrorContext struct {
	RequestID string `json:"requestId"`
}

// ListEnvelope wraps collection responses with pagination metadata.
type ListEnvelope struct {
	Data any             `json:"data"`
	Meta models.ListMeta `json:"meta"`
}

func writeError(c *echo.Context, status int, code, message, remediation string) error {
	return writeErrorMeta(c, status, code, message, remediation, nil)
}

func writeErrorMeta(c *echo.Context, status int, code, message, remediation string, meta map[string]any) error {
	return c.JSON(status, ErrorEnvelope{
		Error:       message,
		Code:        code,
		Remediation: remediation,
		Context:     ErrorContext{RequestID: requestIDOf(c)},
		Meta:        meta,
	})
}
