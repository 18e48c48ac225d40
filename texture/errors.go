// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import "errors"

// Errors returned by the texture cache and devices.
var (
	// ErrCacheClosed is returned when operations are attempted on a closed cache.
	ErrCacheClosed = errors.New("texture: cache is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrNilDevice is returned when a nil Device or texture creator is passed.
	ErrNilDevice = errors.New("texture: nil device")

	// ErrNilSource is returned when a nil picture source is passed.
	ErrNilSource = errors.New("texture: nil picture source")

	// ErrAllocationFailed is returned when the device cannot create a texture.
	ErrAllocationFailed = errors.New("texture: allocation failed")

	// ErrCommitFailed is returned when pixel data cannot be uploaded.
	ErrCommitFailed = errors.New("texture: commit failed")

	// ErrTextureReleased is returned when a released texture is used.
	ErrTextureReleased = errors.New("texture: texture released")

	// ErrDataSizeMismatch reports a pixel buffer shorter than the canvas
	// area. It is logged, never returned: the refresh is skipped and the
	// entry keeps its previous state.
	ErrDataSizeMismatch = errors.New("texture: pixel buffer smaller than canvas area")

	// ErrDataUnavailable reports that no picture exists for a canvas yet.
	// It is logged, never returned: the placeholder path handles it.
	ErrDataUnavailable = errors.New("texture: picture not available")
)
