// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggpaint"
)

// Device allocates textures for the cache.
type Device interface {
	// Allocate creates a width x height texture. Its content is undefined
	// until the first Commit.
	Allocate(width, height int) (Texture, error)
}

// Texture is a GPU texture with a CPU-side backing buffer.
//
// Pixels are written to the backing buffer with SetPixelRGBA and reach the
// GPU in one batch on Commit. A Texture is owned by exactly one
// CachedTexture, which calls Release once.
type Texture interface {
	gpucontext.Texture

	// SetPixelRGBA writes a texture-layout color (0xAABBGGRR) into the
	// backing buffer.
	SetPixelRGBA(x, y int, c ggpaint.Color)

	// Commit uploads the backing buffer to the GPU.
	Commit() error

	// Release frees the GPU texture. Calls after the first are no-ops.
	Release() error
}

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// GPUDevice adapts a gpucontext.TextureCreator to Device.
//
// Each allocated texture keeps a ggpaint.Pixmap staging buffer; Commit
// pushes it with gpucontext.TextureUpdater.UpdateData.
type GPUDevice struct {
	creator gpucontext.TextureCreator
}

// NewDevice wraps a texture creator, for example the one returned by
// gpucontext.TextureDrawer.TextureCreator().
func NewDevice(creator gpucontext.TextureCreator) *GPUDevice {
	return &GPUDevice{creator: creator}
}

// Format returns the texel format of allocated textures.
func (d *GPUDevice) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Allocate creates a texture backed by a zeroed staging pixmap.
func (d *GPUDevice) Allocate(width, height int) (Texture, error) {
	if d == nil || d.creator == nil {
		return nil, ErrNilDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	staging := ggpaint.NewPixmap(width, height)
	native, err := d.creator.NewTextureFromRGBA(width, height, staging.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %w", ErrAllocationFailed, width, height, err)
	}
	if native == nil {
		return nil, fmt.Errorf("%w: %dx%d: creator returned nil texture", ErrAllocationFailed, width, height)
	}

	return &GPUTexture{native: native, staging: staging}, nil
}

// GPUTexture is a Texture allocated by GPUDevice.
type GPUTexture struct {
	native   gpucontext.Texture
	staging  *ggpaint.Pixmap
	released bool
}

// Width returns the texture width in pixels.
func (t *GPUTexture) Width() int {
	return t.staging.Width()
}

// Height returns the texture height in pixels.
func (t *GPUTexture) Height() int {
	return t.staging.Height()
}

// SetPixelRGBA writes into the staging buffer.
func (t *GPUTexture) SetPixelRGBA(x, y int, c ggpaint.Color) {
	t.staging.SetPixelRGBA(x, y, c)
}

// Commit uploads the staging buffer.
func (t *GPUTexture) Commit() error {
	if t.released {
		return ErrTextureReleased
	}
	updater, ok := t.native.(gpucontext.TextureUpdater)
	if !ok {
		return fmt.Errorf("%w: %T does not implement gpucontext.TextureUpdater", ErrCommitFailed, t.native)
	}
	if err := updater.UpdateData(t.staging.Data()); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	return nil
}

// Release destroys the native texture.
func (t *GPUTexture) Release() error {
	if t.released {
		return nil
	}
	t.released = true
	if destroyer, ok := t.native.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	t.native = nil
	return nil
}

// Native returns the underlying gpucontext texture for drawing,
// or nil after Release.
func (t *GPUTexture) Native() gpucontext.Texture {
	return t.native
}

// Staging returns the CPU-side copy of the texture content.
func (t *GPUTexture) Staging() *ggpaint.Pixmap {
	return t.staging
}
