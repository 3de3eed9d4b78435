package context

import (
	"log/slog"

	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal stores the authenticated caller in echo.Context and tags the
// request logger with the caller's id.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)

	req := c.Request()
	if logger := GetLogger(req.Context()); logger != nil {
		ctx := WithLogger(req.Context(), logger.With(slog.String("user_id", principal.UserID.String())))
		c.SetRequest(req.WithContext(ctx))
	}
}

// GetPrincipal returns the caller resolved by the auth middleware.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)
	if !ok || !principal.IsAuthenticated() {
		return entity.Principal{}, false
	}

	return principal, true
}
