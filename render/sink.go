// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Sink consumes batches produced by the Renderer.
type Sink interface {
	DrawBatch(b Batch) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(b Batch) error

// DrawBatch calls f(b).
func (f SinkFunc) DrawBatch(b Batch) error { return f(b) }

// Recorder is a Sink that keeps every batch it receives.
type Recorder struct {
	Batches []Batch
}

// DrawBatch appends b.
func (r *Recorder) DrawBatch(b Batch) error {
	r.Batches = append(r.Batches, b)
	return nil
}

// Quads returns the number of recorded quads.
func (r *Recorder) Quads() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Quads)
	}
	return n
}

// Reset drops recorded batches.
func (r *Recorder) Reset() {
	r.Batches = r.Batches[:0]
}

// nativeTexture is implemented by textures wrapping a gpucontext texture.
type nativeTexture interface {
	Native() gpucontext.Texture
}

// OverlaySink draws canvas textures flat onto a 2D surface, side by side,
// through a gpucontext.TextureDrawer. Static batches are skipped.
// It is meant for debug overlays; call Reset at the start of each frame.
type OverlaySink struct {
	drawer gpucontext.TextureDrawer
	x, y   float32
	gap    float32
	cursor float32
}

// NewOverlaySink creates an overlay starting at (x, y) with gap pixels
// between canvases.
func NewOverlaySink(drawer gpucontext.TextureDrawer, x, y, gap float32) *OverlaySink {
	return &OverlaySink{drawer: drawer, x: x, y: y, gap: gap, cursor: x}
}

// DrawBatch draws the canvas texture of a front batch.
func (s *OverlaySink) DrawBatch(b Batch) error {
	if b.Handle == nil {
		return nil
	}
	var tex gpucontext.Texture = b.Handle
	if n, ok := b.Handle.(nativeTexture); ok {
		tex = n.Native()
	}
	if tex == nil {
		return nil
	}
	if err := s.drawer.DrawTexture(tex, s.cursor, s.y); err != nil {
		return fmt.Errorf("render: overlay %s: %w", b.Texture, err)
	}
	s.cursor += float32(tex.Width()) + s.gap
	return nil
}

// Reset moves the cursor back to the start position.
func (s *OverlaySink) Reset() {
	s.cursor = s.x
}
