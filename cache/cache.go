// Package cache stores provider responses as JSON so repeated enrichment
// runs do not pay for the same third-party lookup twice.
package cache

import (
	"context"
	"time"
)

// Cache is a JSON value cache with per-key expiry.
type Cache interface {
	// GetJSON decodes the value stored at key into dst. A missing or
	// undecodable value is reported as a miss.
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	// SetJSON stores val at key. A zero ttl means no expiry.
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	// Del removes the given keys.
	Del(ctx context.Context, keys ...string) error
}

// Key joins parts into a namespaced cache key.
func Key(parts ...string) string {
	key := "prospector"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
