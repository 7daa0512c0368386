package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/core/domain"
)

// ctxClaims extracts the session claims injected by the Auth middleware.
// Presence proves the middleware ran; a handler reached without them is a
// routing mistake and is rejected with 401 rather than trusted.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	claims, _ := c.Get(middleware.ClaimsContextKey).(*domain.SessionClaims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
