// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/config"
	"github.com/gogpu/ggpaint/picture"
)

// Notifier is told about new canvas versions. *render.Renderer
// implements it.
type Notifier interface {
	Notify(name string, version int)
}

// Dispatcher applies decoded messages to the picture store and the
// feature flags.
type Dispatcher struct {
	store    *picture.Store
	flags    *config.Flags
	notifier Notifier
	codec    *Codec
}

// NewDispatcher creates a dispatcher. flags and notifier may be nil, in
// which case config syncs are ignored and updates are stored silently.
func NewDispatcher(codec *Codec, store *picture.Store, flags *config.Flags, notifier Notifier) *Dispatcher {
	return &Dispatcher{store: store, flags: flags, notifier: notifier, codec: codec}
}

// Handle applies one message.
func (d *Dispatcher) Handle(m Message) error {
	switch m := m.(type) {
	case CanvasUpdate:
		return d.handleCanvas(m)
	case *CanvasUpdate:
		return d.handleCanvas(*m)
	case ConfigSync:
		return d.handleConfig(m)
	case *ConfigSync:
		return d.handleConfig(*m)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownMessage, m)
	}
}

func (d *Dispatcher) handleCanvas(m CanvasUpdate) error {
	d.store.Put(m.Name, m.Version, m.Pixels)
	if d.notifier != nil {
		d.notifier.Notify(m.Name, m.Version)
	}
	return nil
}

func (d *Dispatcher) handleConfig(m ConfigSync) error {
	if d.flags == nil {
		ggpaint.Logger().Debug("protocol: config sync ignored, no flags attached")
		return nil
	}
	b, err := m.Flags.MarshalBinary()
	if err != nil {
		return err
	}
	return d.flags.ApplySync(b)
}

// Serve reads frames from r and handles them until r is exhausted or ctx
// is done. Unknown and malformed messages are logged and skipped as long
// as the frame boundary is intact; a truncated or oversized frame ends
// the stream with an error.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	log := ggpaint.Logger()
	handled := 0

	for {
		if err := ctx.Err(); err != nil {
			return handled, err
		}
		m, err := d.codec.ReadFrame(br)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return handled, nil
		case errors.Is(err, ErrUnknownMessage):
			log.Debug("protocol: skipping frame", "err", err)
			continue
		case errors.Is(err, ErrFrameTooLarge), errors.Is(err, errFraming):
			return handled, err
		case errors.Is(err, ErrMalformed):
			log.Warn("protocol: dropping message", "err", err)
			continue
		default:
			return handled, err
		}

		if err := d.Handle(m); err != nil {
			log.Warn("protocol: message not applied", "type", m.Type(), "err", err)
			continue
		}
		handled++
	}
}
