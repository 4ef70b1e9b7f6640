package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is a process local key/value store with per entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

const (
	_defaultMaxEntries = 1 << 10
	_countersPerEntry  = 10
	_bufferItems       = 64
)

type options struct {
	maxEntries int64
}

// Option tunes a cache built by New.
type Option func(*options)

// WithMaxEntries bounds how many entries the cache admits. Every entry costs
// one, so this is also the maximum cost.
func WithMaxEntries(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache is a Cache backed by ristretto, with concurrent misses on the
// same key collapsed by singleflight.
type RistrettoCache struct {
	store *ristretto.Cache
	loads singleflight.Group
}

func New(opts ...Option) (*RistrettoCache, error) {
	o := options{maxEntries: _defaultMaxEntries}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: o.maxEntries * _countersPerEntry,
		MaxCost:     o.maxEntries,
		BufferItems: _bufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ristretto cache: %w", err)
	}

	return &RistrettoCache{store: store}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.store.Get(key)
}

// Set stores value with a cost of one. Ristretto applies writes
// asynchronously, so Set waits for the buffers to drain before returning.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	accepted := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return accepted
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	if ctx.Err() != nil {
		return
	}
	c.store.Del(key)
}

// GetOrSet returns the cached value or loads it once, even when several
// callers miss at the same time.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.loads.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}
