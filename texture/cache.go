// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/picture"
)

// Source provides the latest picture of a canvas.
// *picture.Store implements Source.
type Source interface {
	Get(name string) (picture.Picture, bool)
}

var _ Source = (*picture.Store)(nil)

// Cache maps canvas names to cached textures.
//
// Cache is NOT safe for concurrent use. Own one Cache per renderer and call
// it from the render thread only.
type Cache struct {
	src     Source
	device  Device
	entries map[string]*CachedTexture
	seq     int
	closed  bool
}

// NewCache creates an empty cache reading pictures from src and allocating
// textures from device.
func NewCache(src Source, device Device) (*Cache, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if device == nil {
		return nil, ErrNilDevice
	}
	return &Cache{
		src:     src,
		device:  device,
		entries: make(map[string]*CachedTexture),
	}, nil
}

// GetOrCreate returns the entry for name, creating and filling it on first
// use.
//
// An existing entry is refreshed when version is newer than the entry's
// version or no real picture has been loaded into it yet. Width and height
// only apply to new entries.
//
// If allocating or filling a new texture fails, nothing is cached and the
// error is returned.
func (c *Cache) GetOrCreate(name string, version, width, height int) (*CachedTexture, error) {
	if c.closed {
		return nil, ErrCacheClosed
	}
	key := picture.NormalizeName(name)

	if entry, ok := c.entries[key]; ok {
		if entry.version < version || !entry.Loaded() {
			if err := entry.refresh(c.src); err != nil {
				return nil, err
			}
		}
		return entry, nil
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %q: width=%d, height=%d", ErrInvalidDimensions, name, width, height)
	}

	tex, err := c.device.Allocate(width, height)
	if err != nil {
		return nil, fmt.Errorf("texture: canvas %q: %w", name, err)
	}

	c.seq++
	entry := &CachedTexture{
		name:     key,
		location: fmt.Sprintf("dynamic/canvas/%s_%d", key, c.seq),
		width:    width,
		height:   height,
		tex:      tex,
	}
	if err := entry.refresh(c.src); err != nil {
		if relErr := entry.release(); relErr != nil {
			ggpaint.Logger().Warn("texture: release after failed refresh", "canvas", key, "err", relErr)
		}
		return nil, err
	}

	c.entries[key] = entry
	return entry, nil
}

// Lookup returns the entry for name without creating or refreshing it.
func (c *Cache) Lookup(name string) (*CachedTexture, bool) {
	entry, ok := c.entries[picture.NormalizeName(name)]
	return entry, ok
}

// Invalidate refreshes the entry for name from the current picture, if the
// entry exists. Use it when an update notification arrives independently of
// a draw.
func (c *Cache) Invalidate(name string) error {
	if c.closed {
		return ErrCacheClosed
	}
	entry, ok := c.entries[picture.NormalizeName(name)]
	if !ok {
		return nil
	}
	return entry.refresh(c.src)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear releases every texture and empties the cache.
// Release failures are joined and returned after all entries are gone.
func (c *Cache) Clear() error {
	if len(c.entries) == 0 {
		return nil
	}

	var errs []error
	for key, entry := range c.entries {
		if err := entry.release(); err != nil {
			errs = append(errs, fmt.Errorf("texture: release %q: %w", key, err))
		}
	}
	n := len(c.entries)
	c.entries = make(map[string]*CachedTexture)

	err := errors.Join(errs...)
	if err != nil {
		ggpaint.Logger().Warn("texture: cache cleared with release errors", "entries", n, "err", err)
	} else {
		ggpaint.Logger().Info("texture: cache cleared", "entries", n)
	}
	return err
}

// Close releases every texture. The cache cannot be used afterwards.
// Close is idempotent.
func (c *Cache) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.Clear()
}
