package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRevocationStore(client), mr
}

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("fresh jti must not be revoked")
	}

	if err := store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	revoked, err = store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !revoked {
		t.Fatalf("revoked jti must be reported")
	}

	// Revocation of one jti does not affect another.
	revoked, err = store.IsRevoked(ctx, "jti-2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("unrelated jti must not be revoked")
	}
}

func TestRevocationStore_EntryExpiresWithToken(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-ttl", time.Now().Add(30*time.Minute)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ttl := mr.TTL(revokedKeyPrefix + "jti-ttl")
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	mr.FastForward(31 * time.Minute)
	revoked, err := store.IsRevoked(ctx, "jti-ttl")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if revoked {
		t.Fatalf("entry must expire with the token")
	}
}

func TestRevocationStore_ExpiredTokenNeedsNoEntry(t *testing.T) {
	store, mr := newTestStore(t)

	if err := store.Revoke(context.Background(), "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if mr.Exists(revokedKeyPrefix + "jti-old") {
		t.Fatalf("no entry expected for an already-expired token")
	}
}
