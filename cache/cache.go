// Package cache provides a small sharded LRU cache used for derived
// GPU artifacts: compiled shader binaries and colormap lookup
// textures. Sharding keeps lock contention low when several plots
// build graphics concurrently.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount is a power of 2 so shard selection is a bitwise AND.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the per-shard entry limit when none is given.
	DefaultCapacity = 64
)

// Hasher computes the shard hash for a key.
type Hasher[K any] func(K) uint64

// StringHasher hashes a string key with FNV-1a.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a sharded LRU map. The zero value is not usable; construct
// with New.
type Cache[K comparable, V any] struct {
	shards   [shardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	head    *entry[K, V]
	tail    *entry[K, V]
}

// entry is a cache slot threaded through the shard's recency list,
// most recent at head.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// New creates a cache with the given per-shard capacity. A capacity
// of zero or less selects DefaultCapacity.
func New[K comparable, V any](capacity int, hasher Hasher[K]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key, marking it most recently
// used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.moveToFront(e)
	v := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return v, true
}

// GetOrCreate returns the cached value for key, calling create to
// build it on a miss. create runs with the shard locked, so only one
// caller builds a given key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.moveToFront(e)
		c.hits.Add(1)
		return e.value, nil
	}
	c.misses.Add(1)

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(s, key, v)
	return v, nil
}

// Set stores a value, evicting the least recently used entries if the
// shard is full.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.moveToFront(e)
		return
	}
	c.insert(s, key, value)
}

func (c *Cache[K, V]) insert(s *shard[K, V], key K, value V) {
	for len(s.entries) >= c.capacity {
		old := s.tail
		if old == nil {
			break
		}
		s.unlink(old)
		delete(s.entries, old.key)
		c.evictions.Add(1)
	}
	e := &entry[K, V]{key: key, value: value}
	s.pushFront(e)
	s.entries[key] = e
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.unlink(e)
	delete(s.entries, key)
	return true
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.head, s.tail = nil, nil
		s.mu.Unlock()
	}
}

// Len returns the total entry count across shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns a counter snapshot.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (s *shard[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *shard[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (s *shard[K, V]) moveToFront(e *entry[K, V]) {
	if s.head == e {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}
