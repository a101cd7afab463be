// Package cache stores rendered graph artifacts between invocations.
//
// Graphviz layout is the expensive step of a rendering pass, so the
// render command and the preview server cache finished SVG/PNG bytes
// keyed by a hash of the snapshot contents and the rendering options.
// The aggregated graph itself is never persisted; only derived
// artifacts land here and they can be deleted at any time.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL; a zero TTL never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact: the hash of
// the snapshot bytes combined with the format and an options
// fingerprint, so any change to input or flags misses cleanly.
func ArtifactKey(snapshotHash, format, optsFingerprint string) string {
	return "artifact:" + snapshotHash + ":" + format + ":" + optsFingerprint
}
