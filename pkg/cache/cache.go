// Package cache stores pipeline artifacts keyed by content hashes.
//
// Every key is derived from the SHA-256 of the inputs that produced the
// artifact (facts document, configuration, resource, format), so entries
// never go stale; TTLs only bound disk usage. [FileCache] persists entries
// under a directory for CLI use and [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	TTLDecomposition = 7 * 24 * time.Hour
	TTLArtifact      = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired or
	// corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
