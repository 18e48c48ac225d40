package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNewSharded(t *testing.T) {
	m := NewSharded[string, int](StringHasher)
	if m == nil {
		t.Fatal("NewSharded returned nil")
	}
	if m.Len() != 0 {
		t.Errorf("expected empty map, got %d entries", m.Len())
	}
}

func TestShardedMapGetSet(t *testing.T) {
	m := NewSharded[string, int](StringHasher)

	m.Set("key1", 42)
	val, ok := m.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}

	m.Set("key1", 43)
	if val, _ := m.Get("key1"); val != 43 {
		t.Errorf("expected last write to win, got %d", val)
	}

	if _, ok := m.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}
}

func TestShardedMapSetIfAbsent(t *testing.T) {
	m := NewSharded[string, int](StringHasher)

	if !m.SetIfAbsent("key1", 1) {
		t.Error("SetIfAbsent on empty map should store")
	}
	if m.SetIfAbsent("key1", 2) {
		t.Error("SetIfAbsent on present key should not store")
	}
	if val, _ := m.Get("key1"); val != 1 {
		t.Errorf("expected original value 1, got %d", val)
	}
}

func TestShardedMapDelete(t *testing.T) {
	m := NewSharded[string, int](StringHasher)
	for i := range 10 {
		m.Set(strconv.Itoa(i), i)
	}

	if !m.Delete("3") {
		t.Error("expected Delete to return true for existing key")
	}
	if m.Delete("3") {
		t.Error("expected Delete to return false for removed key")
	}
	if m.Len() != 9 {
		t.Errorf("expected 9 entries, got %d", m.Len())
	}
}

func TestShardedMapRange(t *testing.T) {
	m := NewSharded[string, int](StringHasher)
	for i := range 20 {
		m.Set(strconv.Itoa(i), i)
	}

	sum := 0
	m.Range(func(_ string, v int) bool {
		sum += v
		return true
	})
	if sum != 190 {
		t.Errorf("Range sum = %d, want 190", sum)
	}

	visited := 0
	m.Range(func(string, int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("Range should stop after fn returns false, visited %d", visited)
	}
}

func TestShardedMapStats(t *testing.T) {
	m := NewSharded[string, int](StringHasher)
	m.Set("a", 1)

	m.Get("a")
	m.Get("a")
	m.Get("b")

	s := m.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 2 and 1", s.Hits, s.Misses)
	}
	if s.Len != 1 {
		t.Errorf("Stats().Len = %d, want 1", s.Len)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("Stats().HitRate = %f, want 2/3", s.HitRate)
	}
}

func TestShardedMapConcurrent(t *testing.T) {
	m := NewSharded[string, int](StringHasher)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa(i % 50)
				m.Set(key, g)
				m.Get(key)
				m.SetIfAbsent(key, g)
				m.Delete(strconv.Itoa(i%50 + 100))
			}
		}(g)
	}
	wg.Wait()

	if m.Len() != 50 {
		t.Errorf("expected 50 keys, got %d", m.Len())
	}
}
