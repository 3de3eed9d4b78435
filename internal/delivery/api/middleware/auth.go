package middleware

import (
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the principal from a bearer token and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the principal for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, entity.NewPrincipal(claims.UserID, claims.Roles))

		return next(c)
	}
}

// RequireRole checks that the principal has role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !principal.HasRole(role) {
				return domainerrors.ErrForbidden.WithDetailsf("role %s required", role)
			}

			return next(c)
		}
	}
}
