// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package protocol encodes the messages a server sends to update canvases
// and feature flags.
//
// # Framing
//
// Every message is one frame:
//
//	type    1 byte
//	length  uvarint, payload size in bytes
//	payload length bytes
//
// Unknown types are skipped by length, so older clients keep reading the
// stream.
//
// # Canvas update payload
//
//	name     uvarint length + UTF-8 bytes
//	version  varint
//	width    uvarint
//	height   uvarint
//	pixels   zstd frame of little-endian uint32 ARGB values
//
// # Config sync payload
//
// The twelve bytes of a config.SyncMessage.
package protocol
