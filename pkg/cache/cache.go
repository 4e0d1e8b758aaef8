// Package cache provides the caching layer for the phylograph pipeline.
//
// Three backends implement the Cache interface: a file cache for CLI usage,
// a Redis cache for server deployments, and a null cache that disables
// caching entirely. Keys are produced by a Keyer from content hashes plus
// the option structs that influenced the cached value, so a change in any
// input invalidates naturally.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Cache TTLs per pipeline stage. Parsed trees and layouts are cheap to
// recompute but frequently reused; artifacts are the most expensive stage.
const (
	TTLTree     = 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
