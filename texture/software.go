// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggpaint"
)

// SoftwareCreator is an in-memory gpucontext.TextureCreator.
// Textures keep their pixels in a ggpaint.Pixmap. It is used by
// command-line tools and tests that have no GPU.
type SoftwareCreator struct {
	mu      sync.Mutex
	created int
	live    int
}

// NewSoftwareCreator creates an in-memory texture creator.
func NewSoftwareCreator() *SoftwareCreator {
	return &SoftwareCreator{}
}

// NewTextureFromRGBA creates a texture holding a copy of data.
func (c *SoftwareCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("texture: data size %d, want %d", len(data), width*height*4)
	}

	pix := ggpaint.NewPixmap(width, height)
	copy(pix.Data(), data)

	c.mu.Lock()
	c.created++
	c.live++
	c.mu.Unlock()

	return &SoftwareTexture{creator: c, pix: pix}, nil
}

// Created returns the number of textures created so far.
func (c *SoftwareCreator) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

// Live returns the number of textures not yet destroyed.
func (c *SoftwareCreator) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// SoftwareTexture is a texture created by SoftwareCreator.
type SoftwareTexture struct {
	creator   *SoftwareCreator
	pix       *ggpaint.Pixmap
	uploads   int
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *SoftwareTexture) Width() int { return t.pix.Width() }

// Height returns the texture height in pixels.
func (t *SoftwareTexture) Height() int { return t.pix.Height() }

// UpdateData replaces the texture content.
func (t *SoftwareTexture) UpdateData(data []byte) error {
	if t.destroyed {
		return ErrTextureReleased
	}
	if len(data) != len(t.pix.Data()) {
		return fmt.Errorf("texture: data size %d, want %d", len(data), len(t.pix.Data()))
	}
	copy(t.pix.Data(), data)
	t.uploads++
	return nil
}

// Destroy frees the texture. Calls after the first are no-ops.
func (t *SoftwareTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.creator.mu.Lock()
	t.creator.live--
	t.creator.mu.Unlock()
}

// Pixmap returns the uploaded content.
func (t *SoftwareTexture) Pixmap() *ggpaint.Pixmap { return t.pix }

// Uploads returns how many times UpdateData succeeded.
func (t *SoftwareTexture) Uploads() int { return t.uploads }

// Destroyed reports whether Destroy has been called.
func (t *SoftwareTexture) Destroyed() bool { return t.destroyed }
