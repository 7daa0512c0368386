package ports

import (
	"context"
	"time"

	"portfolio-api/internal/core/domain"
)

// Session is the issued admin session returned by Login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService implements the shared-secret admin login.
type AuthService interface {
	// Login compares the supplied password against the configured bcrypt
	// hash and, on success, issues a signed time-limited session token.
	// Failures surface as domain.ErrInvalidCredentials regardless of
	// whether the password was wrong or no password is configured.
	Login(ctx context.Context, password string) (*Session, error)
	// Logout revokes the token's jti server-side until its natural
	// expiry. An unparsable token is a no-op, not an error.
	Logout(ctx context.Context, token string) error
}

// TokenVerifier validates a presented session token.
type TokenVerifier interface {
	// Verify checks signature, expiry, and the revocation list. Any
	// failure surfaces as domain.ErrTokenInvalid; callers must not
	// distinguish the causes externally.
	Verify(ctx context.Context, token string) (*domain.SessionClaims, error)
}

// TokenRevoker is the server-side revocation list keyed by token ID.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
