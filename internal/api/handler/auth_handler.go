package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/metrics"
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/core/ports"
)

// AuthHandler handles the admin login/logout/status endpoints. The
// session token travels both ways: as an httpOnly cookie for the admin
// panel and in the response body for bearer-token clients.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type statusResponse struct {
	IsAdmin   bool   `json:"isAdmin"`
	IssuedAt  string `json:"issuedAt"`
	ExpiresAt string `json:"expiresAt"`
}

// Login verifies the shared admin password and issues a session.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.authService.Login(c.Request().Context(), req.Password)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return err
	}

	c.SetCookie(h.sessionCookie(session.Token, session.ExpiresAt))

	return c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout clears the cookie and revokes the presented token server-side.
// It succeeds whether or not a valid token was presented.
//
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := middleware.ExtractToken(c); ok {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}

	c.SetCookie(h.expiredCookie())

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Status returns the decoded claims of the authenticated session.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  map[string]string
// @Router       /admin/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	resp := statusResponse{IsAdmin: claims.IsAdmin}
	if claims.IssuedAt != nil {
		resp.IssuedAt = claims.IssuedAt.UTC().Format(time.RFC3339)
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
