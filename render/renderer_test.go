// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/picture"
	"github.com/gogpu/ggpaint/texture"
)

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *picture.Store, *Recorder, *texture.SoftwareCreator) {
	t.Helper()
	store := picture.NewStore()
	creator := texture.NewSoftwareCreator()
	rec := &Recorder{}
	r, err := NewRenderer(store, texture.NewDevice(creator), rec, opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, store, rec, creator
}

func fill(n int, c ggpaint.Color) []ggpaint.Color {
	p := make([]ggpaint.Color, n)
	for i := range p {
		p[i] = c
	}
	return p
}

func TestNewRendererErrors(t *testing.T) {
	store := picture.NewStore()
	dev := texture.NewDevice(texture.NewSoftwareCreator())
	tests := []struct {
		name    string
		store   *picture.Store
		device  texture.Device
		sink    Sink
		wantErr error
	}{
		{"nil store", nil, dev, &Recorder{}, ErrNilStore},
		{"nil sink", store, dev, nil, ErrNilSink},
		{"nil device", store, nil, &Recorder{}, texture.ErrNilDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRenderer(tt.store, tt.device, tt.sink); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRenderer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDrawCanvas(t *testing.T) {
	r, store, rec, _ := newTestRenderer(t)
	store.Put("mapA", 1, fill(512, 0x00FF0000))

	err := r.DrawCanvas(Canvas{Name: "mapA", Version: 1, Width: 32, Height: 16}, Placement{Facing: North, Mode: Held})
	if err != nil {
		t.Fatalf("DrawCanvas() error = %v", err)
	}
	if len(rec.Batches) != 2 || rec.Quads() != 6 {
		t.Fatalf("recorded %d batches, %d quads; want 2 and 6", len(rec.Batches), rec.Quads())
	}

	entry, ok := r.Cache().Lookup("mapA")
	if !ok || !entry.Loaded() {
		t.Fatal("canvas texture not loaded")
	}
	front := rec.Batches[0]
	if front.Texture != entry.Location() || front.Handle != entry.Texture() {
		t.Errorf("front batch = %q/%v, want %q", front.Texture, front.Handle, entry.Location())
	}
	if rec.Batches[1].Texture != BackTexture {
		t.Errorf("back texture = %q", rec.Batches[1].Texture)
	}

	// DrawCanvas always mounts: a 32 pixel wide canvas spans two blocks.
	q := front.Quads[0]
	if w := q[1].Position.Sub(q[0].Position).Len(); w < 1.99 || w > 2.01 {
		t.Errorf("front width = %v, want 2", w)
	}
	if q[0].Light != FullBright {
		t.Errorf("default light = %#x, want %#x", q[0].Light, FullBright)
	}
}

func TestDrawCanvasOptions(t *testing.T) {
	r, _, rec, _ := newTestRenderer(t, WithBackTexture("test:oak"), WithDefaultLight(0x10))

	if err := r.DrawCanvas(Canvas{Name: "a", Width: 16, Height: 16}, Placement{}); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawCanvas(Canvas{Name: "a", Width: 16, Height: 16}, Placement{Light: 0x20}); err != nil {
		t.Fatal(err)
	}
	if rec.Batches[1].Texture != "test:oak" {
		t.Errorf("back texture = %q, want test:oak", rec.Batches[1].Texture)
	}
	if got := rec.Batches[0].Quads[0][0].Light; got != 0x10 {
		t.Errorf("default light = %#x, want 0x10", got)
	}
	if got := rec.Batches[2].Quads[0][0].Light; got != 0x20 {
		t.Errorf("explicit light = %#x, want 0x20", got)
	}
}

func TestDrawItemSeedsStore(t *testing.T) {
	r, store, _, creator := newTestRenderer(t)
	item := Item{
		Canvas: Canvas{Name: "held", Version: 2, Width: 16, Height: 16},
		Pixels: fill(256, 0x000000FF),
	}

	if err := r.DrawItem(item, Placement{}); err != nil {
		t.Fatalf("DrawItem() error = %v", err)
	}
	pic, ok := store.Get("held")
	if !ok || pic.Version != 2 {
		t.Fatalf("store.Get() = %+v, %v", pic, ok)
	}

	entry, _ := r.Cache().Lookup("held")
	if !entry.Loaded() {
		t.Error("held canvas not loaded")
	}
	sw := entry.Texture().(*texture.GPUTexture).Native().(*texture.SoftwareTexture)
	if got := sw.Pixmap().PixelRGBA(0, 0); got != 0x00FF0000 {
		t.Errorf("texel = %v, want #00FF0000", got)
	}

	// The store already knows the canvas; the item tag does not override it.
	item.Pixels = fill(256, ggpaint.Black)
	if err := r.DrawItem(item, Placement{}); err != nil {
		t.Fatal(err)
	}
	if pic, _ := store.Get("held"); pic.Pixels[0] != 0x000000FF {
		t.Error("item tag replaced a stored picture")
	}
	if creator.Created() != 1 {
		t.Errorf("textures created = %d, want 1", creator.Created())
	}
}

func TestNotifyDrain(t *testing.T) {
	r, store, _, _ := newTestRenderer(t)
	store.Put("mapA", 1, fill(256, 1))
	if err := r.DrawCanvas(Canvas{Name: "mapA", Version: 1, Width: 16, Height: 16}, Placement{}); err != nil {
		t.Fatal(err)
	}
	store.Put("mapA", 2, fill(256, 2))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			r.Notify("mapA", v)
		}(i)
	}
	wg.Wait()
	r.Notify("never-drawn", 1)

	if r.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", r.Pending())
	}
	n, err := r.Drain()
	if err != nil || n != 1 {
		t.Fatalf("Drain() = %d, %v; want 1, nil", n, err)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() after Drain = %d", r.Pending())
	}

	entry, _ := r.Cache().Lookup("mapA")
	if entry.Version() != 2 {
		t.Errorf("Version() = %d, want 2", entry.Version())
	}
	if _, ok := r.Cache().Lookup("never-drawn"); ok {
		t.Error("Drain created an entry for a canvas never drawn")
	}
}

func TestDrainPicksUpVersionReset(t *testing.T) {
	r, store, _, _ := newTestRenderer(t)
	store.Put("mapA", 7, fill(256, 1))
	if err := r.DrawCanvas(Canvas{Name: "mapA", Version: 7, Width: 16, Height: 16}, Placement{}); err != nil {
		t.Fatal(err)
	}

	// The server restarted and numbers versions from zero again.
	store.Put("mapA", 0, fill(256, 2))
	r.Notify("mapA", 0)
	if n, err := r.Drain(); err != nil || n != 1 {
		t.Fatalf("Drain() = %d, %v; want 1, nil", n, err)
	}

	entry, _ := r.Cache().Lookup("mapA")
	if entry.Version() != 0 || entry.LastOutcome() != texture.OutcomeUploaded {
		t.Errorf("version=%d outcome=%v, want 0 and uploaded", entry.Version(), entry.LastOutcome())
	}
}

func TestSinkError(t *testing.T) {
	store := picture.NewStore()
	boom := errors.New("boom")
	r, err := NewRenderer(store, texture.NewDevice(texture.NewSoftwareCreator()), SinkFunc(func(Batch) error { return boom }))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := r.DrawCanvas(Canvas{Name: "a", Width: 16, Height: 16}, Placement{}); !errors.Is(err, boom) {
		t.Errorf("DrawCanvas() error = %v, want %v", err, boom)
	}
}

func TestRendererClose(t *testing.T) {
	r, _, _, creator := newTestRenderer(t)
	if err := r.DrawCanvas(Canvas{Name: "a", Width: 16, Height: 16}, Placement{}); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if creator.Live() != 0 {
		t.Errorf("Live() = %d, want 0", creator.Live())
	}
	if err := r.DrawCanvas(Canvas{Name: "a", Width: 16, Height: 16}, Placement{}); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("DrawCanvas after Close error = %v", err)
	}
	if err := r.DrawItem(Item{Canvas: Canvas{Name: "b", Width: 16, Height: 16}}, Placement{}); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("DrawItem after Close error = %v", err)
	}
	if _, err := r.Drain(); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("Drain after Close error = %v", err)
	}
}
