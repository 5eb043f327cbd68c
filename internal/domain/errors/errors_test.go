package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrDuplicateTransaction.WithDetails("ORD-20250205-0001")

	assert.True(t, errors.Is(err, ErrDuplicateTransaction))
	assert.False(t, errors.Is(err, ErrOrderNotFound))
	assert.Equal(t, "ORD-20250205-0001", err.Details())
	assert.Empty(t, ErrDuplicateTransaction.Details())
}

func TestBaseError_WrappedKeepsAppError(t *testing.T) {
	wrapped := errors.WithStack(ErrInsufficientStock.WithStatus(http.StatusConflict))

	var appErr AppError
	if assert.True(t, errors.As(wrapped, &appErr)) {
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
		assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	}
	assert.Equal(t, http.StatusBadRequest, ErrInsufficientStock.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert order", err.Details())
	assert.True(t, errors.Is(err, cause))
}
