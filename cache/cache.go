// Package cache provides a time-bounded memoizer with single-flight
// semantics: concurrent computations for the same key are collapsed into one,
// and results are reused until their TTL expires. Entries are immutable once
// written; expiry simply allows the next access to trigger a fresh (still
// deduplicated) computation.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Cache is a TTL cache with at-most-one concurrent fresh computation per key.
type Cache struct {
	store *gocache.Cache
	group singleflight.Group
}

// New creates a new cache. cleanupInterval controls how often expired entries
// are evicted from memory.
//
// Parameters:
// - cleanupInterval: the interval between eviction sweeps.
//
// Returns:
// - *Cache: a new Cache instance.
func New(cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// GetOrCompute returns the cached value for key if present, otherwise runs
// getFreshValue and stores its result for ttl. Concurrent callers for the
// same key share a single in-flight computation. A ttl <= 0 disables storage
// (every call recomputes) but keeps the single-flight guarantee.
//
// Parameters:
// - ctx: the context for managing the computation.
// - key: the cache key.
// - ttl: the time-to-live of a freshly computed value.
// - getFreshValue: the computation to run on a cache miss.
//
// Returns:
// - interface{}: the cached or freshly computed value.
// - error: an error if the computation fails. Errors are never cached.
func (c *Cache) GetOrCompute(
	ctx context.Context,
	key string,
	ttl time.Duration,
	getFreshValue func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	if value, ok := c.store.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: another caller may have populated the
		// entry between the miss and the flight starting.
		if value, ok := c.store.Get(key); ok {
			return value, nil
		}

		value, err := getFreshValue(ctx)
		if err != nil {
			return nil, err
		}

		if ttl > 0 {
			c.store.Set(key, value, ttl)
		}

		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// GetOrComputeTyped is a typed wrapper around Cache.GetOrCompute.
func GetOrComputeTyped[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	getFreshValue func(ctx context.Context) (T, error),
) (T, error) {
	value, err := c.GetOrCompute(ctx, key, ttl, func(ctx context.Context) (interface{}, error) {
		return getFreshValue(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return value.(T), nil
}
