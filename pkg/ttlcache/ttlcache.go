// Package ttlcache provides a single-slot cache with bounded freshness and
// single-flight refresh.
package ttlcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// Cache holds one value with a freshness deadline. Readers that find the
// value stale share a single refresh: the first one runs it, the rest attach
// to the in-flight call and resolve with the same result.
type Cache[T any] struct {
	ttl     time.Duration
	refresh func(ctx context.Context) (T, error)

	group singleflight.Group
	now   func() time.Time

	mu        sync.RWMutex
	value     T
	updatedAt time.Time
	populated bool
}

// New constructs a Cache around refresh. A value is served without I/O while
// its age does not exceed ttl; a non-positive ttl makes every read refresh.
func New[T any](ttl time.Duration, refresh func(ctx context.Context) (T, error)) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		refresh: refresh,
		now:     time.Now,
	}
}

// Get returns the cached value, refreshing it first when empty or stale.
// The refresh runs on the initiating caller's context. A failed refresh is
// returned as an error and leaves any previously stored value untouched.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	if v, ok := c.freshValue(); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(refreshKey, func() (any, error) {
		// A caller that lost the race to an already-completed flight must
		// not trigger a second upstream fetch.
		if v, ok := c.freshValue(); ok {
			return v, nil
		}

		v, err := c.refresh(ctx)
		if err != nil {
			return nil, err
		}
		c.store(v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// Peek returns the stored value and its age without triggering a refresh.
// ok is false until the first successful refresh.
func (c *Cache[T]) Peek() (value T, age time.Duration, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated {
		return value, 0, false
	}
	return c.value, c.now().Sub(c.updatedAt), true
}

func (c *Cache[T]) freshValue() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated || c.now().Sub(c.updatedAt) > c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

func (c *Cache[T]) store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.updatedAt = c.now()
	c.populated = true
}
