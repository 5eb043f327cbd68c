package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runAuth(t *testing.T, authUC *mockUsecase.MockAuthUsecase, header string, handler echo.HandlerFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

	return m.Authenticate(handler)(c)
}

func TestAuthenticate(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	actor := &usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	authUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(actor, nil)

	var seen *usecase.Actor
	err := runAuth(t, authUC, "Bearer good-token", func(c echo.Context) error {
		seen = GetActor(c)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, actor, seen)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		target *domainerrors.BaseError
	}{
		{name: "missing header", header: "", target: domainerrors.ErrUnauthenticated},
		{name: "not bearer", header: "Basic abc", target: domainerrors.ErrInvalidToken},
		{name: "empty bearer", header: "Bearer ", target: domainerrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)

			err := runAuth(t, authUC, tt.header, func(echo.Context) error {
				t.Fatal("handler must not run")

				return nil
			})

			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	authUC.EXPECT().
		Authenticate(mock.Anything, "expired").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is expired"))

	err := runAuth(t, authUC, "Bearer expired", func(echo.Context) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{})
	guarded := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		actor  *usecase.Actor
		target *domainerrors.BaseError
	}{
		{name: "anonymous", target: domainerrors.ErrUnauthenticated},
		{name: "customer", actor: &usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}, target: domainerrors.ErrForbidden},
		{name: "admin", actor: &usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/products/1", nil), rec)
			if tt.actor != nil {
				SetActor(c, tt.actor)
			}

			err := guarded(c)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
