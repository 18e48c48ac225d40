package picture

import (
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/gogpu/ggpaint"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()

	if _, ok := s.Get("mapA"); ok {
		t.Fatal("empty store should not contain mapA")
	}

	pixels := []ggpaint.Color{0x00FF0000, 0x0000FF00}
	s.Put("mapA", 1, pixels)

	p, ok := s.Get("mapA")
	if !ok {
		t.Fatal("Get(mapA) not found after Put")
	}
	if p.Version != 1 || !slices.Equal(p.Pixels, pixels) {
		t.Errorf("Get(mapA) = %+v", p)
	}

	// The store keeps its own copy.
	pixels[0] = 0
	if p, _ := s.Get("mapA"); p.Pixels[0] != 0x00FF0000 {
		t.Error("Put should copy the pixel slice")
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	s := NewStore()
	s.Put("mapA", 5, []ggpaint.Color{1})
	s.Put("mapA", 3, []ggpaint.Color{2})

	p, _ := s.Get("mapA")
	if p.Version != 3 || p.Pixels[0] != 2 {
		t.Errorf("expected the later write (version 3), got %+v", p)
	}
}

func TestStorePutIfAbsent(t *testing.T) {
	s := NewStore()
	if !s.PutIfAbsent("mapA", 1, []ggpaint.Color{1}) {
		t.Error("PutIfAbsent on unknown name should store")
	}
	if s.PutIfAbsent("mapA", 2, []ggpaint.Color{2}) {
		t.Error("PutIfAbsent on known name should not store")
	}
	if p, _ := s.Get("mapA"); p.Version != 1 {
		t.Errorf("version = %d, want 1", p.Version)
	}
}

func TestStoreNormalizesNames(t *testing.T) {
	s := NewStore()
	// "é" precomposed vs "e" + combining acute accent.
	s.Put("caf\u00e9", 1, nil)

	if _, ok := s.Get("cafe\u0301"); !ok {
		t.Error("decomposed name should find the precomposed entry")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreDeleteNames(t *testing.T) {
	s := NewStore()
	s.Put("b", 1, nil)
	s.Put("a", 1, nil)
	s.Put("c", 1, nil)

	if got := s.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v", got)
	}
	if !s.Delete("b") {
		t.Error("Delete(b) = false")
	}
	if got := s.Names(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Names() after delete = %v", got)
	}
}

func TestStoreStats(t *testing.T) {
	s := NewStore()
	s.Put("mapA", 1, nil)
	s.Get("mapA")
	s.Get("mapB")

	st := s.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestStoreConcurrentWriters(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for v := range 100 {
				s.Put("canvas"+strconv.Itoa(v%10), v, []ggpaint.Color{ggpaint.Color(w)})
			}
		}(w)
		go func() {
			defer wg.Done()
			for v := range 100 {
				if p, ok := s.Get("canvas" + strconv.Itoa(v%10)); ok && len(p.Pixels) != 1 {
					t.Errorf("torn picture: %+v", p)
				}
			}
		}()
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}
