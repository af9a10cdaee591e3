// Package cache stores rendered artifacts keyed by their input.
//
// Graphviz rendering runs a WebAssembly build of the layout engine and is by
// far the slowest step of producing an SVG. Rendering the same DOT source
// twice always yields the same bytes, so the SVG renderer keys a cache by
// the hash of its input and skips the engine on a hit.
//
// Implementations:
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [NullCache]: never stores anything (--no-cache, tests)
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// Expired or unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKey builds the key for a rendered artifact from the output format
// and the input that determines it: "artifact:<format>:<sha256(input)>".
func ArtifactKey(format string, input []byte) string {
	return "artifact:" + format + ":" + Hash(input)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything; every Get is a miss.
type NullCache struct{}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
