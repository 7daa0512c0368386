package domain

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by an admin session token.
// The registered claims supply expiry, issue time, and the token ID used
// for server-side revocation.
type SessionClaims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}
