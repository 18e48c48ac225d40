// Package cache provides a sharded, concurrency-safe map.
//
// # ShardedMap[K, V]
//
// Entries are spread over 16 shards by key hash, each guarded by its own
// RWMutex, so writers on one key never block readers of another. Unlike an
// LRU cache, ShardedMap never evicts: it backs registries where dropping an
// entry would lose data.
//
//	m := cache.NewSharded[string, int](cache.StringHasher)
//	m.Set("key", 42)
//	value, ok := m.Get("key")
//
// # Thread Safety
//
// ShardedMap is safe for concurrent use and must not be copied after
// creation (it contains mutexes).
package cache
