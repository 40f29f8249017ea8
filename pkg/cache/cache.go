// Package cache stores small derived values (such as decoded image
// dimensions) keyed by content hashes.
//
// Three implementations are provided:
//   - [NullCache] never stores anything (the library default)
//   - [MemoryCache] keeps entries in process memory
//   - [FileCache] persists entries under a directory for CLI use
//
// Keys are produced by [ImageKey] so that identical payloads share an entry
// regardless of which part or file they came from.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
