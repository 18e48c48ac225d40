// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"fmt"

	"github.com/gogpu/ggpaint"
)

// PlaceholderSize is the number of pixels in the placeholder buffer.
// It covers canvases up to 32x32; larger canvases have no placeholder and
// stay uninitialized until their picture arrives.
const PlaceholderSize = 1024

// placeholderPixels is uploaded to a new texture whose picture is missing.
var placeholderPixels = func() []ggpaint.Color {
	p := make([]ggpaint.Color, PlaceholderSize)
	for i := range p {
		p[i] = ggpaint.White
	}
	return p
}()

// CachedTexture is the cache entry for one canvas.
//
// The entry exclusively owns its texture. References returned by the cache
// are valid until the next Clear or Close.
type CachedTexture struct {
	name     string
	location string
	width    int
	height   int
	version  int
	state    State
	outcome  Outcome
	tex      Texture
	released bool
}

// Name returns the canvas name.
func (t *CachedTexture) Name() string { return t.name }

// Location returns the texture location key, unique per allocation.
func (t *CachedTexture) Location() string { return t.location }

// Width returns the canvas width in pixels.
func (t *CachedTexture) Width() int { return t.width }

// Height returns the canvas height in pixels.
func (t *CachedTexture) Height() int { return t.height }

// Version returns the version of the picture held by the texture,
// or 0 if no picture has been loaded.
func (t *CachedTexture) Version() int { return t.version }

// State returns the content state.
func (t *CachedTexture) State() State { return t.state }

// Loaded reports whether real picture data has been uploaded.
func (t *CachedTexture) Loaded() bool { return t.state == StateLoaded }

// Started reports whether any upload, placeholder or real, has happened.
func (t *CachedTexture) Started() bool { return t.state != StateUninitialized }

// LastOutcome returns what the most recent refresh did.
func (t *CachedTexture) LastOutcome() Outcome { return t.outcome }

// Texture returns the texture to draw with, or nil once released.
func (t *CachedTexture) Texture() Texture {
	if t.released {
		return nil
	}
	return t.tex
}

// refresh syncs the texture with the picture source.
// Only device failures are returned; missing and malformed data are logged.
func (t *CachedTexture) refresh(src Source) error {
	log := ggpaint.Logger()

	pic, found := src.Get(t.name)
	pixels := placeholderPixels
	if found {
		pixels = pic.Pixels
	}

	if !found && t.state != StateUninitialized {
		// Never cover existing content with the placeholder.
		t.outcome = OutcomeKept
		return nil
	}

	if area := t.width * t.height; len(pixels) < area {
		t.outcome = OutcomeSizeMismatch
		log.Warn("texture: refresh skipped",
			"canvas", t.name, "pixels", len(pixels), "area", area, "err", ErrDataSizeMismatch)
		return nil
	}

	if err := t.upload(pixels); err != nil {
		t.outcome = OutcomeFailed
		return fmt.Errorf("texture: refresh %q: %w", t.name, err)
	}

	if found {
		t.state = StateLoaded
		t.version = pic.Version
		t.outcome = OutcomeUploaded
		log.Debug("texture: uploaded", "canvas", t.name, "version", pic.Version)
		return nil
	}

	t.state = StatePlaceholder
	t.outcome = OutcomePlaceholder
	log.Debug("texture: placeholder uploaded", "canvas", t.name, "err", ErrDataUnavailable)
	return nil
}

// upload writes pixels row by row, swapping red and blue, then commits once.
func (t *CachedTexture) upload(pixels []ggpaint.Color) error {
	if t.released {
		return ErrTextureReleased
	}
	for y := 0; y < t.height; y++ {
		row := pixels[y*t.width : (y+1)*t.width]
		for x, c := range row {
			t.tex.SetPixelRGBA(x, y, c.SwapRedBlue())
		}
	}
	return t.tex.Commit()
}

// release frees the texture exactly once.
func (t *CachedTexture) release() error {
	if t.released {
		return nil
	}
	t.released = true
	tex := t.tex
	t.tex = nil
	return tex.Release()
}
