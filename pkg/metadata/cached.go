package metadata

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"refmap/pkg/cache"
	"refmap/pkg/component"
)

// DefaultCacheTTL is how long extracted metadata stays valid.
// Entries are keyed by file content hash, so the TTL only bounds cache
// growth; a changed binary always misses.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Cached wraps a Provider with a content-addressed cache so repeated
// analyses of unchanged files skip extraction.
type Cached struct {
	next  Provider
	store cache.Cache
	ttl   time.Duration
}

// NewCached creates a caching wrapper around next.
// A ttl of zero uses DefaultCacheTTL.
func NewCached(next Provider, store cache.Cache, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{next: next, store: store, ttl: ttl}
}

// Name returns the wrapped provider's identifier.
func (c *Cached) Name() string { return c.next.Name() }

// Supports defers to the wrapped provider.
func (c *Cached) Supports(path string) bool { return c.next.Supports(path) }

// Extract serves records from the cache when the file content is
// unchanged, otherwise extracts via the wrapped provider and stores the
// result. Cache failures degrade to plain extraction.
func (c *Cached) Extract(ctx context.Context, path string) ([]component.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c.next.Extract(ctx, path)
	}
	key := c.next.Name() + ":" + cache.Hash(data)

	if raw, hit, err := c.store.Get(ctx, key); err == nil && hit {
		var records []component.Record
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}

	records, err := c.next.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(records); err == nil {
		_ = c.store.Set(ctx, key, raw, c.ttl)
	}
	return records, nil
}
