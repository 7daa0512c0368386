// Package memory holds in-process fallbacks for optional external
// dependencies.
package memory

import (
	"context"
	"sync"
	"time"
)

// RevocationStore is the in-process token denylist used when no Redis
// address is configured. Revocations do not survive a restart, which is
// acceptable for a single-admin deployment: a restart invalidates
// nothing, it only forgets logouts of still-unexpired tokens.
type RevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewRevocationStore() *RevocationStore {
	return &RevocationStore{revoked: make(map[string]time.Time)}
}

func (s *RevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	if time.Until(until) <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = until
	s.sweepLocked()
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries. Called with the lock held.
func (s *RevocationStore) sweepLocked() {
	now := time.Now()
	for jti, until := range s.revoked {
		if now.After(until) {
			delete(s.revoked, jti)
		}
	}
}
