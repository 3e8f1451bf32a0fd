// Package cache provides a byte-bounded LRU cache.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultMaxBytes is the default memory bound (64 MB).
const DefaultMaxBytes = 64 << 20

// LRU caches values by key and evicts the least recently used entries once
// the summed entry sizes exceed the bound. Safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu          sync.Mutex
	entries     map[K]*entry[K, V]
	head        *entry[K, V] // Most recently used.
	tail        *entry[K, V] // Least recently used.
	maxBytes    int64
	currentSize int64

	hits   atomic.Int64
	misses atomic.Int64
}

type entry[K comparable, V any] struct {
	key   K
	value V
	size  int64
	prev  *entry[K, V]
	next  *entry[K, V]
}

// New creates a cache bounded to maxBytes. Non-positive means DefaultMaxBytes.
func New[K comparable, V any](maxBytes int64) *LRU[K, V] {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &LRU[K, V]{
		entries:  make(map[K]*entry[K, V]),
		maxBytes: maxBytes,
	}
}

// Get returns the cached value and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)

		var zero V

		return zero, false
	}

	c.hits.Add(1)
	c.moveToFront(e)

	return e.value, true
}

// Put stores value under key, accounted as size bytes. Values larger than
// the whole cache are not stored.
func (c *LRU[K, V]) Put(key K, value V, size int64) {
	if size > c.maxBytes {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.currentSize += size - e.size
		e.value = value
		e.size = size
		c.moveToFront(e)
		c.evict()

		return
	}

	e := &entry[K, V]{key: key, value: value, size: size}

	c.entries[key] = e
	c.currentSize += size
	c.addToFront(e)
	c.evict()
}

// Stats holds cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Entries     int
	CurrentSize int64
	MaxSize     int64
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}

	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Entries:     len(c.entries),
		CurrentSize: c.currentSize,
		MaxSize:     c.maxBytes,
	}
}

// evict drops tail entries until the size bound holds. The head entry is
// never evicted.
func (c *LRU[K, V]) evict() {
	for c.currentSize > c.maxBytes && c.tail != nil && c.tail != c.head {
		victim := c.tail

		c.removeFromList(victim)
		delete(c.entries, victim.key)
		c.currentSize -= victim.size
	}
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}

	c.removeFromList(e)
	c.addToFront(e)
}

func (c *LRU[K, V]) addToFront(e *entry[K, V]) {
	e.prev = nil
	e.next = c.head

	if c.head != nil {
		c.head.prev = e
	}

	c.head = e

	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[K, V]) removeFromList(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}
