// File: cache.go
// Title: Bounded In-Memory Cache
// Description: Thread-safe cache with a fixed capacity. The least recently
//              used entry is evicted when the cache is full. Used to keep
//              compiled patterns across calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cache

import (
	"container/list"
	"sync"
)

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 256}
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*list.Element
	order    *list.List
	maxItems int

	// Metrics
	hits   int64
	misses int64
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}

	return &Cache[K, V]{
		items:    make(map[K]*list.Element),
		order:    list.New(),
		maxItems: cfg.MaxItems,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Set stores a value, evicting the least recently used entry at capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.maxItems {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

// Clear removes all items and resets the metrics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
	c.hits, c.misses = 0, 0
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns cache statistics. hitRate is a percentage.
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hits = c.hits
	misses = c.misses
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evictOldest removes the least recently used entry (lock must be held)
func (c *Cache[K, V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.items, oldest.Value.(*entry[K, V]).key)
}

// GetOrSet returns the cached value or stores the result of fn. Errors are
// returned without caching. fn runs outside the lock, so concurrent callers
// may compute the same value twice.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, val)
	return val, nil
}
