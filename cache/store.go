package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get for a key that is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is the shared key-value cache with per-key TTL. Implementations must
// be safe for concurrent use; last write wins on racing Sets for the same key
// (values are idempotent for the same inputs, so the race is benign).
type Store interface {
	// Get returns the payload stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a single key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
