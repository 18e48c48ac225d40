// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"math"
)

// VertexStride is the size in bytes of one packed vertex:
// position (3 x f32), uv (2 x f32), normal (3 x f32), light (u32).
// It matches VertexInput in shaders/canvas.wgsl.
const VertexStride = 9 * 4

// QuadIndices is the index pattern splitting a quad into two triangles.
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// PackVertices appends the quads to dst as an interleaved little-endian
// vertex buffer and returns the extended slice.
func PackVertices(dst []byte, quads []Quad) []byte {
	for _, q := range quads {
		for _, v := range q {
			for _, f := range [...]float32{
				v.Position[0], v.Position[1], v.Position[2],
				v.UV[0], v.UV[1],
				v.Normal[0], v.Normal[1], v.Normal[2],
			} {
				dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
			}
			dst = binary.LittleEndian.AppendUint32(dst, v.Light)
		}
	}
	return dst
}

// Indices returns a triangle index buffer for n quads.
func Indices(n int) []uint16 {
	idx := make([]uint16, 0, n*len(QuadIndices))
	for i := 0; i < n; i++ {
		base := uint16(i * 4)
		for _, j := range QuadIndices {
			idx = append(idx, base+j)
		}
	}
	return idx
}
