package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/metrics"
	"portfolio-api/internal/core/ports"
)

// SessionCookieName is the httpOnly cookie carrying the admin session
// token for browser clients. API clients may present the same token as a
// bearer token instead.
const SessionCookieName = "portfolio_token"

// ClaimsContextKey is the echo context key the verified session claims
// are stored under.
const ClaimsContextKey = "session_claims"

// ExtractToken returns the session token from the Authorization header
// or, failing that, the session cookie.
func ExtractToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1], true
		}
		return "", false
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// Auth validates the session token and injects the verified claims into
// the context. Missing, malformed, expired, tampered, and revoked tokens
// are all rejected with the same 401 so callers learn nothing about the
// failure mode.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := ExtractToken(c)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}
