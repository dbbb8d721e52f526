package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks invitehub/internal/cache Cache

// Cache is the key-value store behind the invite-session and refresh-token
// stores. Values are JSON-encoded.
type Cache interface {
	// Set stores a value under the key for the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the value into dest; false means the key is absent.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*Redis)(nil)
