// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/config"
)

// Errors returned by the codec.
var (
	// ErrUnknownMessage is returned for frames with an unknown type.
	// The frame has been consumed; the stream can be read further.
	ErrUnknownMessage = errors.New("protocol: unknown message type")

	// ErrFrameTooLarge is returned when a frame exceeds MaxFrameSize.
	ErrFrameTooLarge = errors.New("protocol: frame too large")

	// ErrMalformed is returned for truncated or inconsistent payloads.
	ErrMalformed = errors.New("protocol: malformed message")
)

// Limits.
const (
	// MaxFrameSize bounds the payload of a single frame.
	MaxFrameSize = 1 << 20

	// MaxPixels bounds the pixel count of a canvas update.
	MaxPixels = 1 << 20

	// MaxNameLength bounds canvas names in bytes.
	MaxNameLength = 256
)

// MessageType identifies a frame's payload.
type MessageType uint8

// Message types.
const (
	TypeCanvasUpdate MessageType = 1
	TypeConfigSync   MessageType = 2
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case TypeCanvasUpdate:
		return "canvas-update"
	case TypeConfigSync:
		return "config-sync"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
}

// Message is a decoded frame.
type Message interface {
	Type() MessageType
}

// CanvasUpdate carries a new version of a canvas picture.
type CanvasUpdate struct {
	Name    string
	Version int
	Width   int
	Height  int
	Pixels  []ggpaint.Color
}

// Type implements Message.
func (CanvasUpdate) Type() MessageType { return TypeCanvasUpdate }

// ConfigSync carries the server's feature flags.
type ConfigSync struct {
	Flags config.SyncMessage
}

// Type implements Message.
func (ConfigSync) Type() MessageType { return TypeConfigSync }
