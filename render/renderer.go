// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/picture"
	"github.com/gogpu/ggpaint/texture"
)

// Errors returned by Renderer.
var (
	// ErrNilStore is returned when a nil picture store is passed.
	ErrNilStore = errors.New("render: nil picture store")

	// ErrNilSink is returned when a nil sink is passed.
	ErrNilSink = errors.New("render: nil sink")

	// ErrRendererClosed is returned by draws after Close.
	ErrRendererClosed = errors.New("render: renderer is closed")
)

// Canvas identifies the picture to draw.
type Canvas struct {
	Name    string
	Version int
	Width   int
	Height  int
}

// Item is a canvas carried as an item. Its tag holds a copy of the
// picture, used when the store has not seen the canvas yet.
type Item struct {
	Canvas
	Pixels []ggpaint.Color
}

// Renderer draws canvases through a texture cache.
//
// Renderer is NOT safe for concurrent use, except Notify, which may be
// called from any goroutine.
type Renderer struct {
	store *picture.Store
	cache *texture.Cache
	sink  Sink
	opts  options

	mu      sync.Mutex
	pending map[string]int

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// NewRenderer creates a renderer with its own texture cache.
func NewRenderer(store *picture.Store, device texture.Device, sink Sink, opts ...Option) (*Renderer, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	cache, err := texture.NewCache(store, device)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		store:   store,
		cache:   cache,
		sink:    sink,
		opts:    o,
		pending: make(map[string]int),
	}, nil
}

// Cache returns the renderer's texture cache.
func (r *Renderer) Cache() *texture.Cache {
	return r.cache
}

// DrawCanvas draws a mounted canvas.
func (r *Renderer) DrawCanvas(c Canvas, p Placement) error {
	p.Mode = Mounted
	return r.draw(c, p)
}

// DrawItem draws a held canvas. The item's pixels seed the picture store
// if the canvas is unknown there.
func (r *Renderer) DrawItem(it Item, p Placement) error {
	if r.closed {
		return ErrRendererClosed
	}
	if it.Pixels != nil && r.store.PutIfAbsent(it.Name, it.Version, it.Pixels) {
		ggpaint.Logger().Debug("render: picture seeded from item", "canvas", it.Name, "version", it.Version)
	}
	p.Mode = Held
	p.Rotation = 0
	return r.draw(it.Canvas, p)
}

func (r *Renderer) draw(c Canvas, p Placement) error {
	if r.closed {
		return ErrRendererClosed
	}
	entry, err := r.cache.GetOrCreate(c.Name, c.Version, c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("render: canvas %q: %w", c.Name, err)
	}

	p.Width, p.Height = entry.Width(), entry.Height()
	if p.Light == 0 {
		p.Light = r.opts.light
	}

	batches := Quads(p, entry.Location())
	batches[0].Handle = entry.Texture()
	batches[1].Texture = r.opts.backTexture

	for _, b := range batches {
		if err := r.sink.DrawBatch(b); err != nil {
			return fmt.Errorf("render: canvas %q: %w", c.Name, err)
		}
	}
	return nil
}

// Notify records that a newer picture of the named canvas is available.
// Notifications for the same canvas coalesce until the next Drain.
func (r *Renderer) Notify(name string, version int) {
	key := picture.NormalizeName(name)
	r.mu.Lock()
	if v, ok := r.pending[key]; !ok || version > v {
		r.pending[key] = version
	}
	r.mu.Unlock()
}

// Pending returns the number of canvases waiting for Drain.
func (r *Renderer) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Drain refreshes the cached textures of every notified canvas and
// returns how many were refreshed. Notifications for canvases that were
// never drawn are discarded and not counted. Refresh failures are joined.
func (r *Renderer) Drain() (int, error) {
	r.mu.Lock()
	pending := r.pending
	r.pending = make(map[string]int)
	r.mu.Unlock()

	if r.closed {
		return 0, ErrRendererClosed
	}

	var errs []error
	n := 0
	for name := range pending {
		if _, ok := r.cache.Lookup(name); !ok {
			continue
		}
		n++
		if err := r.cache.Invalidate(name); err != nil {
			errs = append(errs, err)
		}
	}
	return n, errors.Join(errs...)
}

// Close releases every cached texture. Close is idempotent.
func (r *Renderer) Close() error {
	r.closeOnce.Do(func() {
		r.closed = true
		r.closeErr = r.cache.Close()
	})
	return r.closeErr
}
