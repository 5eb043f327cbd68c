// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope.
type Response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Error      string             `json:"error,omitempty"`   // Human-readable error message
	Code       string             `json:"code,omitempty"`    // Business error code, e.g. "ORDER_NOT_FOUND"
	Details    any                `json:"details,omitempty"` // Field name, existing order number, current stock...
	Pagination *entity.Pagination `json:"pagination,omitempty"`
	RequestID  string             `json:"requestId"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success:   true,
		Data:      data,
		Message:   message,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Paginated returns one page of a listing
func Paginated(c echo.Context, data any, pagination entity.Pagination) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	// Details are not exposed for server or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, Response{
		Success:   false,
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}
