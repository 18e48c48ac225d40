package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by ShardedMap for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats holds lookup statistics.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// ShardedMap is a thread-safe map split into DefaultShardCount shards.
type ShardedMap[K comparable, V any] struct {
	shards [DefaultShardCount]*shard[K, V]
	hasher Hasher[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard is a single partition of the map with its own lock.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates an empty sharded map.
// Use StringHasher for string keys.
func NewSharded[K comparable, V any](hasher Hasher[K]) *ShardedMap[K, V] {
	m := &ShardedMap[K, V]{hasher: hasher}
	for i := range m.shards {
		m.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return m
}

// getShard returns the shard for a given key.
func (m *ShardedMap[K, V]) getShard(key K) *shard[K, V] {
	return m.shards[m.hasher(key)&shardMask]
}

// Get retrieves a value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *ShardedMap[K, V]) Get(key K) (V, bool) {
	s := m.getShard(key)

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return v, ok
}

// Set stores a value, replacing any previous value for the key.
func (m *ShardedMap[K, V]) Set(key K, value V) {
	s := m.getShard(key)

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// SetIfAbsent stores value only if the key is not present.
// Returns true if the value was stored.
func (m *ShardedMap[K, V]) SetIfAbsent(key K, value V) bool {
	s := m.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		return false
	}
	s.entries[key] = value
	return true
}

// Delete removes an entry.
// Returns true if the entry was found and removed.
func (m *ShardedMap[K, V]) Delete(key K) bool {
	s := m.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Range calls fn for every entry until fn returns false.
// Each shard is read-locked while it is visited; fn must not modify the map.
func (m *ShardedMap[K, V]) Range(fn func(K, V) bool) {
	for _, s := range m.shards {
		s.mu.RLock()
		for k, v := range s.entries {
			if !fn(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}

// Len returns the total number of entries across all shards.
func (m *ShardedMap[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns current lookup statistics.
func (m *ShardedMap[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:     m.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}
