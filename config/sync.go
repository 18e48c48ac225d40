// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggpaint"
)

// ErrInvalidSyncMessage is returned for malformed sync messages.
var ErrInvalidSyncMessage = errors.New("config: invalid sync message")

// SyncMessage carries every flag positionally, in Features order.
// On the wire it is NumFeatures bytes, each 0 or 1.
type SyncMessage [NumFeatures]bool

// MarshalBinary encodes the message.
func (m SyncMessage) MarshalBinary() ([]byte, error) {
	b := make([]byte, NumFeatures)
	for i, on := range m {
		if on {
			b[i] = 1
		}
	}
	return b, nil
}

// UnmarshalBinary decodes the message. It fails without modifying m if the
// length is wrong or a byte is neither 0 nor 1.
func (m *SyncMessage) UnmarshalBinary(b []byte) error {
	if len(b) != NumFeatures {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSyncMessage, len(b), NumFeatures)
	}
	var out SyncMessage
	for i, v := range b {
		switch v {
		case 0:
		case 1:
			out[i] = true
		default:
			return fmt.Errorf("%w: %s = %d", ErrInvalidSyncMessage, Features[i].Name, v)
		}
	}
	*m = out
	return nil
}

// SyncMessage returns the current flags as a message for clients.
func (f *Flags) SyncMessage() SyncMessage {
	return SyncMessage(f.Values())
}

// ApplySync decodes a wire message and, if it is valid, replaces every
// flag with its values. Invalid messages leave the flags untouched.
func (f *Flags) ApplySync(b []byte) error {
	var msg SyncMessage
	if err := msg.UnmarshalBinary(b); err != nil {
		ggpaint.Logger().Warn("config: sync message rejected", "err", err)
		return err
	}
	f.replace(msg)
	ggpaint.Logger().Debug("config: flags synced from server")
	return nil
}
