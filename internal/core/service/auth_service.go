package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/core/domain"
	"portfolio-api/internal/core/ports"
)

const defaultTokenTTL = 2 * time.Hour

// AuthService implements the single-admin shared-secret login: one bcrypt
// password hash from configuration, HS256 session tokens, and a
// server-side revocation list so logout actually invalidates the token.
type AuthService struct {
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
	revoker      ports.TokenRevoker
	logger       zerolog.Logger
}

func NewAuthService(passwordHash, jwtSecret string, tokenTTL time.Duration, revoker ports.TokenRevoker, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		revoker:      revoker,
		logger:       logger,
	}
}

// Login verifies the shared admin password and issues a session token.
// "No password configured" and "wrong password" both surface as
// domain.ErrInvalidCredentials; only the log distinguishes them.
func (s *AuthService) Login(ctx context.Context, password string) (*ports.Session, error) {
	if s.passwordHash == "" {
		s.logger.Error().Msg("login attempted with no admin password hash configured")
		return nil, domain.ErrInvalidCredentials
	}
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
		s.logger.Warn().Msg("admin login failed")
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	claims := domain.SessionClaims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Time("expires_at", expiresAt).Msg("admin session issued")
	return &ports.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, expiry, and the revocation list. Every failure
// mode collapses to domain.ErrTokenInvalid.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.SessionClaims, error) {
	claims := &domain.SessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	if claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Error().Err(err).Msg("revocation check failed")
			return nil, domain.ErrTokenInvalid
		}
		if revoked {
			return nil, domain.ErrTokenInvalid
		}
	}

	return claims, nil
}

// Logout revokes the token's jti until its natural expiry. Tokens that do
// not parse carry nothing to revoke, so they are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.Verify(ctx, token)
	if err != nil {
		return nil
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.logger.Error().Err(err).Msg("failed to revoke session token")
		return err
	}
	s.logger.Info().Msg("admin session revoked")
	return nil
}
