package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// revokedKeyPrefix namespaces revocation entries.
// Key format: revoked:<jti>
const revokedKeyPrefix = "revoked:"

// RevocationStore is the Redis-backed token denylist. Logout writes the
// token's jti with a TTL matching its remaining lifetime, so entries
// expire exactly when the token would have anyway.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke denylists jti until the given time. Tokens already past expiry
// need no entry at all.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether jti is on the denylist.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
