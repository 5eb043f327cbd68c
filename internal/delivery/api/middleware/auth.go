package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyActor     = "actor"
	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate resolves the bearer token to an actor and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must be a bearer token")
		}

		ctx := c.Request().Context()
		actor, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return err
		}

		SetActor(c, actor)

		// Later logs of this request carry the caller
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", actor.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole rejects actors without the given role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := GetActor(c)
			if !actor.IsAuthenticated() {
				return domainerrors.ErrUnauthenticated
			}
			if actor.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// SetActor stores the authenticated caller on the echo context.
func SetActor(c echo.Context, actor *usecase.Actor) {
	c.Set(keyActor, actor)
}

// GetActor returns the authenticated caller, or nil on public routes.
func GetActor(c echo.Context) *usecase.Actor {
	actor, _ := c.Get(keyActor).(*usecase.Actor)

	return actor
}
