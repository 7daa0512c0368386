package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/core/domain"
)

// RequireAdmin rejects any already-authenticated request whose claims do
// not carry isAdmin. A structurally valid token without the claim is
// still forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsContextKey).(*domain.SessionClaims)
			if claims == nil || !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
