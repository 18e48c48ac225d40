// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/naga"
)

//go:embed shaders/canvas.wgsl
var canvasShaderWGSL string

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// UniformSize is the size in bytes of Uniforms as laid out in the shader.
const UniformSize = 16*4 + 4*4

var (
	shaderOnce  sync.Once
	shaderSPIRV []uint32
	shaderErr   error
)

// CanvasShaderSource returns the WGSL source of the canvas shader.
func CanvasShaderSource() string {
	return canvasShaderWGSL
}

// CompileShader compiles the canvas shader to SPIR-V words.
// The result is computed once and shared; callers must not modify it.
func CompileShader() ([]uint32, error) {
	shaderOnce.Do(func() {
		shaderSPIRV, shaderErr = compileWGSL(canvasShaderWGSL)
	})
	return shaderSPIRV, shaderErr
}

func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("render: failed to compile canvas shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("render: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// Uniforms mirrors the shader's uniform block.
type Uniforms struct {
	ViewProj mgl32.Mat4
	LightDir mgl32.Vec3
}

// Bytes returns the uniform block in std140 layout.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, 0, UniformSize)
	for _, f := range u.ViewProj {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range [...]float32{u.LightDir[0], u.LightDir[1], u.LightDir[2], 0} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
