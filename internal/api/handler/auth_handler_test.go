package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

// stubAuthService issues a fixed session for one password and records
// which tokens were logged out.
type stubAuthService struct {
	password  string
	session   ports.Session
	loggedOut []string
}

func (s *stubAuthService) Login(_ context.Context, password string) (*ports.Session, error) {
	if password != s.password {
		return nil, domain.ErrInvalidCredentials
	}
	return &s.session, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func sessionCookieFrom(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestLogin_SetsCookieAndBody(t *testing.T) {
	expires := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	stub := &stubAuthService{
		password: "hunter2",
		session:  ports.Session{Token: "tok-abc", ExpiresAt: expires},
	}
	h := NewAuthHandler(stub, false)
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/login", `{"password":"hunter2"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Token != "tok-abc" {
		t.Fatalf("token missing from body: %+v", body)
	}
	if body.ExpiresAt != expires.Format(time.RFC3339) {
		t.Fatalf("expiresAt = %q, want %q", body.ExpiresAt, expires.Format(time.RFC3339))
	}

	ck := sessionCookieFrom(rec)
	if ck == nil {
		t.Fatalf("session cookie not set")
	}
	if ck.Value != "tok-abc" || !ck.HttpOnly || ck.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", ck)
	}
	if ck.Secure {
		t.Fatalf("cookie must not be Secure outside production")
	}
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	stub := &stubAuthService{password: "p", session: ports.Session{Token: "t", ExpiresAt: time.Now().Add(time.Hour)}}
	h := NewAuthHandler(stub, true)
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/login", `{"password":"p"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if ck := sessionCookieFrom(rec); ck == nil || !ck.Secure {
		t.Fatalf("expected Secure cookie, got %+v", ck)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{password: "right"}, false)
	c, _ := newJSONContext(t, http.MethodPost, "/api/admin/login", `{"password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)
	c, _ := newJSONContext(t, http.MethodPost, "/api/admin/login", `{}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	stub := &stubAuthService{}
	h := NewAuthHandler(stub, false)
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/logout", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer tok-xyz")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(stub.loggedOut) != 1 || stub.loggedOut[0] != "tok-xyz" {
		t.Fatalf("token not revoked: %v", stub.loggedOut)
	}

	ck := sessionCookieFrom(rec)
	if ck == nil || ck.MaxAge != -1 || ck.Value != "" {
		t.Fatalf("expected cleared cookie, got %+v", ck)
	}
}

func TestLogout_WithoutToken(t *testing.T) {
	stub := &stubAuthService{}
	h := NewAuthHandler(stub, false)
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout without token must succeed: %v", err)
	}
	if len(stub.loggedOut) != 0 {
		t.Fatalf("nothing to revoke, got %v", stub.loggedOut)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestStatus_ReportsClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)
	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/status", "")

	now := time.Now().Truncate(time.Second)
	claims := &domain.SessionClaims{IsAdmin: true}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(2 * time.Hour))
	c.Set(middleware.ClaimsContextKey, claims)

	if err := h.Status(c); err != nil {
		t.Fatalf("status: %v", err)
	}

	var body statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !body.IsAdmin {
		t.Fatalf("expected isAdmin true: %+v", body)
	}
	if body.IssuedAt == "" || body.ExpiresAt == "" {
		t.Fatalf("timestamps missing: %+v", body)
	}
}

func TestStatus_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)
	c, _ := newJSONContext(t, http.MethodGet, "/api/admin/status", "")

	err := h.Status(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
