// Package picture holds the latest known pixels of every canvas.
//
// The Store is written from the network goroutine as canvas updates arrive
// and read from the render thread by the texture cache. Each key is updated
// atomically; last write wins and no ordering between versions is enforced.
package picture

import (
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/internal/cache"
)

// Picture is one version of a canvas's pixels.
// Pixels are 0xAARRGGBB colors, row-major.
type Picture struct {
	Version int
	Pixels  []ggpaint.Color
}

// Store maps canvas names to their latest Picture.
// Store is safe for concurrent use.
type Store struct {
	pictures *cache.ShardedMap[string, Picture]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		pictures: cache.NewSharded[string, Picture](cache.StringHasher),
	}
}

// NormalizeName returns the canonical form of a canvas name.
// Names are compared in Unicode NFC so that the same name typed on
// different clients maps to one canvas.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// Put stores or replaces the picture for name. The pixel slice is copied.
func (s *Store) Put(name string, version int, pixels []ggpaint.Color) {
	s.pictures.Set(NormalizeName(name), Picture{
		Version: version,
		Pixels:  slices.Clone(pixels),
	})
	ggpaint.Logger().Debug("picture: stored", "canvas", name, "version", version, "pixels", len(pixels))
}

// PutIfAbsent stores the picture only if name has no picture yet.
// Returns true if it was stored.
func (s *Store) PutIfAbsent(name string, version int, pixels []ggpaint.Color) bool {
	return s.pictures.SetIfAbsent(NormalizeName(name), Picture{
		Version: version,
		Pixels:  slices.Clone(pixels),
	})
}

// Get returns the picture for name.
// The returned Pixels must not be modified.
func (s *Store) Get(name string) (Picture, bool) {
	return s.pictures.Get(NormalizeName(name))
}

// Delete removes the picture for name.
func (s *Store) Delete(name string) bool {
	return s.pictures.Delete(NormalizeName(name))
}

// Len returns the number of stored pictures.
func (s *Store) Len() int {
	return s.pictures.Len()
}

// Names returns the stored canvas names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, s.pictures.Len())
	s.pictures.Range(func(name string, _ Picture) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Stats returns lookup statistics for the store.
func (s *Store) Stats() cache.Stats {
	return s.pictures.Stats()
}
