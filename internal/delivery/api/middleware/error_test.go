package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apivalidator "storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/orders", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrDuplicateTransaction.WithDetails("ORD-20250205-0001"), "create order")

	status, body := handleError(t, err)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "DUPLICATE_TRANSACTION", body["code"])
	assert.Equal(t, "ORD-20250205-0001", body["details"])
	assert.Equal(t, domainerrors.ErrDuplicateTransaction.Message(), body["error"])
}

func TestHandleHTTPError_ValidationErrors(t *testing.T) {
	type request struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := apivalidator.New().Validate(&request{Email: "nope"})

	status, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, []any{"email"}, body["details"])
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	status, body := handleError(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "HTTP_ERROR", body["code"])
}

func TestHandleHTTPError_Unknown(t *testing.T) {
	status, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, body["error"], "pq")
}

func TestHandleHTTPError_GatewayDetailsHidden(t *testing.T) {
	err := domainerrors.ErrPaymentVerificationFailed.WithStatus(http.StatusBadGateway).WithDetails("payment gateway unavailable")

	status, body := handleError(t, err)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.NotContains(t, body, "details")
}
