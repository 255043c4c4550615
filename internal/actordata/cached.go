package actordata

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FishingOverhaul_Go/internal/concurrency"
	"github.com/osse101/FishingOverhaul_Go/internal/metrics"
)

type cachedValue struct {
	value string
	found bool
}

// Cached keeps recently read values in an expiring LRU in front of a slower store.
// Misses are cached too. A fill and a write of the same key are serialized
// so a slow read cannot cache a value older than a completed write.
type Cached struct {
	inner Backend
	lru   *expirable.LRU[string, cachedValue]
	locks *concurrency.LockManager
}

// NewCached wraps inner with a cache of at most size entries, each kept for ttl
func NewCached(inner Backend, size int, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		lru:   expirable.NewLRU[string, cachedValue](size, nil, ttl),
		locks: concurrency.NewLockManager(concurrency.DefaultStripes),
	}
}

func cacheKey(actorID, key string) string {
	return actorID + keySeparator + key
}

func (c *Cached) Get(ctx context.Context, actorID, key string) (string, bool, error) {
	k := cacheKey(actorID, key)
	if v, ok := c.lru.Get(k); ok {
		metrics.ActorStoreCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return v.value, v.found, nil
	}
	metrics.ActorStoreCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	mu := c.locks.GetLock(k)
	mu.Lock()
	defer mu.Unlock()

	value, found, err := c.inner.Get(ctx, actorID, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Add(k, cachedValue{value: value, found: found})
	return value, found, nil
}

// Set writes through; the cache only changes once the inner store accepted the value
func (c *Cached) Set(ctx context.Context, actorID, key, value string) error {
	k := cacheKey(actorID, key)
	mu := c.locks.GetLock(k)
	mu.Lock()
	defer mu.Unlock()

	if err := c.inner.Set(ctx, actorID, key, value); err != nil {
		c.lru.Remove(k)
		return err
	}
	c.lru.Add(k, cachedValue{value: value, found: true})
	return nil
}

func (c *Cached) All(ctx context.Context, actorID string) (map[string]string, error) {
	return c.inner.All(ctx, actorID)
}

// Clear holds every key lock so no fill started before the clear can be cached after it
func (c *Cached) Clear(ctx context.Context, actorID string) (int, error) {
	var (
		n   int
		err error
	)
	c.locks.DoAll(func() {
		n, err = c.inner.Clear(ctx, actorID)
		prefix := actorID + keySeparator
		for _, k := range c.lru.Keys() {
			if strings.HasPrefix(k, prefix) {
				c.lru.Remove(k)
			}
		}
	})
	return n, err
}

func (c *Cached) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *Cached) Close() error {
	c.lru.Purge()
	return c.inner.Close()
}

// Purge drops every cached value
func (c *Cached) Purge() {
	c.locks.DoAll(c.lru.Purge)
}

// Len is the number of cached values
func (c *Cached) Len() int {
	return c.lru.Len()
}
