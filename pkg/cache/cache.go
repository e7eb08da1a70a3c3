// Package cache memoizes computed layouts and rendered artifacts.
//
// # Backends
//
// [Cache] is a small byte-oriented key/value interface with three
// implementations:
//
//   - [FileCache]: one JSON file per entry under a directory, the CLI default
//   - [NullCache]: stores nothing, for --no-cache and tests
//   - [RedisCache]: a shared Redis server for several processes
//
// Backends are best-effort. The pipeline treats a failing read as a miss and
// only logs a failing write, so a broken cache never fails a run.
//
// # Keys
//
// A [Keyer] derives keys from content hashes. Layout keys hash the canonical
// JSON of the shelf configuration; artifact keys hash the layout together with
// the render options. [NewScopedKeyer] prefixes every key to give separate
// namespaces.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Default lifetimes.
const (
	LayoutTTL   = 30 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Hardware   bool    `json:"hardware,omitempty"`
	Dimensions bool    `json:"dimensions,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a layout by the hash of its configuration.
	LayoutKey(configHash string) string
	// ArtifactKey keys a rendered artifact by its layout hash and options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<hash>" and "artifact:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the unscoped keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(configHash string) string {
	return fmt.Sprintf("layout:%s", configHash)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
