// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package protocol

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/ggpaint"
)

// Codec encodes and decodes frames. It is safe for concurrent use.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewCodec creates a codec with its own zstd encoder and decoder.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("protocol: failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxPixels*4),
		zstd.WithDecoderConcurrency(0))
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("protocol: failed to create zstd decoder: %w", err)
	}
	return &Codec{encoder: enc, decoder: dec}, nil
}

// Close releases the zstd resources.
func (c *Codec) Close() error {
	c.decoder.Close()
	return c.encoder.Close()
}

// AppendFrame appends the framed encoding of m to dst.
func (c *Codec) AppendFrame(dst []byte, m Message) ([]byte, error) {
	payload, err := c.encodePayload(m)
	if err != nil {
		return dst, err
	}
	if len(payload) > MaxFrameSize {
		return dst, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}
	dst = append(dst, byte(m.Type()))
	dst = binary.AppendUvarint(dst, uint64(len(payload)))
	return append(dst, payload...), nil
}

// WriteFrame writes m to w as one frame.
func (c *Codec) WriteFrame(w io.Writer, m Message) error {
	frame, err := c.AppendFrame(nil, m)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// ReadFrame reads and decodes one frame. It returns io.EOF when r ends
// cleanly between frames.
func (c *Codec) ReadFrame(r *bufio.Reader) (Message, error) {
	typ, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: frame length: %w", ErrMalformed, errFraming, unexpected(err))
	}
	if n > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: %w: payload: %w", ErrMalformed, errFraming, unexpected(err))
	}
	return c.decodePayload(MessageType(typ), payload)
}

// Decode decodes a single complete frame.
func (c *Codec) Decode(frame []byte) (Message, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrMalformed)
	}
	n, k := binary.Uvarint(frame[1:])
	if k <= 0 {
		return nil, fmt.Errorf("%w: frame length", ErrMalformed)
	}
	if n > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}
	payload := frame[1+k:]
	if uint64(len(payload)) != n {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrMalformed, len(payload), n)
	}
	return c.decodePayload(MessageType(frame[0]), payload)
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (c *Codec) encodePayload(m Message) ([]byte, error) {
	switch m := m.(type) {
	case CanvasUpdate:
		return c.encodeCanvas(m)
	case *CanvasUpdate:
		return c.encodeCanvas(*m)
	case ConfigSync:
		return m.Flags.MarshalBinary()
	case *ConfigSync:
		return m.Flags.MarshalBinary()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, m)
	}
}

func (c *Codec) decodePayload(typ MessageType, payload []byte) (Message, error) {
	switch typ {
	case TypeCanvasUpdate:
		return c.decodeCanvas(payload)
	case TypeConfigSync:
		var m ConfigSync
		if err := m.Flags.UnmarshalBinary(payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, typ)
	}
}

func (c *Codec) encodeCanvas(m CanvasUpdate) ([]byte, error) {
	if err := validateCanvas(m.Name, m.Width, m.Height, len(m.Pixels)); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, len(m.Pixels)*4)
	for _, p := range m.Pixels {
		raw = binary.LittleEndian.AppendUint32(raw, uint32(p))
	}

	buf := binary.AppendUvarint(nil, uint64(len(m.Name)))
	buf = append(buf, m.Name...)
	buf = binary.AppendVarint(buf, int64(m.Version))
	buf = binary.AppendUvarint(buf, uint64(m.Width))
	buf = binary.AppendUvarint(buf, uint64(m.Height))
	return c.encoder.EncodeAll(raw, buf), nil
}

func (c *Codec) decodeCanvas(payload []byte) (Message, error) {
	d := decoder{buf: payload}
	nameLen := d.uvarint()
	if d.err == nil && nameLen > MaxNameLength {
		return nil, fmt.Errorf("%w: name is %d bytes", ErrMalformed, nameLen)
	}
	name := string(d.bytes(int(nameLen)))
	version := d.varint()
	width := d.uvarint()
	height := d.uvarint()
	if d.err != nil {
		return nil, fmt.Errorf("%w: canvas header: %w", ErrMalformed, d.err)
	}
	if width > MaxPixels || height > MaxPixels {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrMalformed, width, height)
	}

	raw, err := c.decoder.DecodeAll(d.buf, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: pixels: %w", ErrMalformed, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: pixel data is %d bytes", ErrMalformed, len(raw))
	}
	pixels := make([]ggpaint.Color, len(raw)/4)
	for i := range pixels {
		pixels[i] = ggpaint.Color(binary.LittleEndian.Uint32(raw[i*4:]))
	}

	m := CanvasUpdate{
		Name:    name,
		Version: int(version),
		Width:   int(width),
		Height:  int(height),
		Pixels:  pixels,
	}
	if err := validateCanvas(m.Name, m.Width, m.Height, len(m.Pixels)); err != nil {
		return nil, err
	}
	return m, nil
}

// validateCanvas checks the fields the codec can verify. Pixel buffers
// shorter than the canvas are allowed; the texture cache rejects them.
func validateCanvas(name string, width, height, pixels int) error {
	switch {
	case name == "" || len(name) > MaxNameLength || !utf8.ValidString(name):
		return fmt.Errorf("%w: invalid canvas name %q", ErrMalformed, name)
	case width <= 0 || height <= 0 || width*height > MaxPixels:
		return fmt.Errorf("%w: canvas %q is %dx%d", ErrMalformed, name, width, height)
	case pixels > MaxPixels:
		return fmt.Errorf("%w: canvas %q has %d pixels", ErrMalformed, name, pixels)
	}
	return nil
}

// errFraming marks read errors after which the stream position is unknown.
var errFraming = errors.New("frame boundary lost")

// errShortPayload reports a payload that ends inside a field.
var errShortPayload = errors.New("payload ends early")

// decoder reads varints from a payload, keeping the first error.
type decoder struct {
	buf []byte
	err error
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.buf)
	if n <= 0 {
		d.err = errShortPayload
		return 0
	}
	d.buf = d.buf[n:]
	return v
}

func (d *decoder) varint() int64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Varint(d.buf)
	if n <= 0 {
		d.err = errShortPayload
		return 0
	}
	d.buf = d.buf[n:]
	return v
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n > len(d.buf) {
		d.err = errShortPayload
		return nil
	}
	b := d.buf[:n]
	d.buf = d.buf[n:]
	return b
}
