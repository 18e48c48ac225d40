// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/texture"
)

// BackTexture is the static texture of the board's back and sides.
const BackTexture = "minecraft:textures/block/birch_planks.png"

// SideWidth is the UV extent of the board edge on the back texture.
const SideWidth = 1.0 / 16.0

// unitsPerBlock is the model size of 16 canvas pixels before scaling.
const unitsPerBlock = 32.0

// ErrUnknownFacing is returned by ParseFacing for unrecognized names.
var ErrUnknownFacing = errors.New("render: unknown facing")

// Facing is the direction a mounted canvas faces.
type Facing uint8

// Facings, in block-face order.
const (
	Down Facing = iota
	Up
	North
	South
	West
	East
)

var facingNames = [...]string{"down", "up", "north", "south", "west", "east"}

var facingOffsets = [...]mgl32.Vec3{
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
	{-1, 0, 0},
	{1, 0, 0},
}

// String returns the lower-case facing name.
func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return fmt.Sprintf("Facing(%d)", f)
}

// Offset returns the unit vector the facing points along.
func (f Facing) Offset() mgl32.Vec3 {
	if int(f) < len(facingOffsets) {
		return facingOffsets[f]
	}
	return mgl32.Vec3{}
}

// Horizontal reports whether the facing lies in the horizontal plane.
func (f Facing) Horizontal() bool {
	return f >= North && f <= East
}

// ParseFacing converts a facing name such as "north" to a Facing.
func ParseFacing(s string) (Facing, error) {
	for i, name := range facingNames {
		if strings.EqualFold(s, name) {
			return Facing(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFacing, s)
}

// Mode selects how a canvas is placed.
type Mode uint8

const (
	// Mounted is a canvas hung in the world.
	Mounted Mode = iota
	// Held is a canvas item in a player's hand.
	Held
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Mounted:
		return "mounted"
	case Held:
		return "held"
	default:
		return "unknown"
	}
}

// Placement describes where and how a canvas is drawn.
type Placement struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	Facing Facing

	// Yaw and Pitch are in degrees.
	Yaw, Pitch float32

	// Rotation is the number of quarter turns around the facing axis.
	// Only mounted canvases rotate.
	Rotation int

	Mode Mode

	// Light is the packed lightmap value copied to every vertex.
	Light uint32

	// Model is the incoming model-view matrix. The zero value means identity.
	Model mgl32.Mat4
}

// Vertex is one corner of a quad, already transformed by the placement.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Normal   mgl32.Vec3
	Color    ggpaint.Color
	Light    uint32
}

// Quad is four vertices in winding order.
type Quad [4]Vertex

// Batch is a group of quads sharing one texture.
type Batch struct {
	// Texture is the texture location key.
	Texture string

	// Handle is the canvas texture for the front batch, nil for static
	// textures resolved by location.
	Handle texture.Texture

	Quads []Quad
}

// corner is an untransformed vertex in board space.
type corner struct {
	x, y, z float32
	u, v    float32
}

// Quads returns the front batch, textured with canvasTexture, followed by
// the back batch holding the back and the four sides.
//
// Board space spans 32 units per 16 canvas pixels on x and y and -1..1 on z.
// The front sits at z = -1 with horizontally and vertically mirrored UVs.
func Quads(p Placement, canvasTexture string) []Batch {
	m, normal := transform(p)

	w := unitsPerBlock * float32(p.Width) / 16
	h := unitsPerBlock * float32(p.Height) / 16
	n := normal.Mul3x1(p.Facing.Offset())
	if n.Len() > 0 {
		n = n.Normalize()
	}

	emit := func(c [4]corner) Quad {
		var q Quad
		for i, v := range c {
			pos := m.Mul4x1(mgl32.Vec4{v.x, v.y, v.z, 1})
			q[i] = Vertex{
				Position: pos.Vec3(),
				UV:       mgl32.Vec2{v.u, v.v},
				Normal:   n,
				Color:    ggpaint.White,
				Light:    p.Light,
			}
		}
		return q
	}

	front := Batch{
		Texture: canvasTexture,
		Quads: []Quad{emit([4]corner{
			{0, h, -1, 1, 0},
			{w, h, -1, 0, 0},
			{w, 0, -1, 0, 1},
			{0, 0, -1, 1, 1},
		})},
	}

	const s = SideWidth
	back := Batch{
		Texture: BackTexture,
		Quads: []Quad{
			emit([4]corner{{0, 0, 1, 0, 0}, {w, 0, 1, 1, 0}, {w, h, 1, 1, 1}, {0, h, 1, 0, 1}}),
			emit([4]corner{{0, 0, 1, s, 0}, {0, h, 1, s, 1}, {0, h, -1, 0, 1}, {0, 0, -1, 0, 0}}),
			emit([4]corner{{0, h, 1, 0, 0}, {w, h, 1, 1, 0}, {w, h, -1, 1, s}, {0, h, -1, 0, s}}),
			emit([4]corner{{w, 0, -1, 0, 0}, {w, h, -1, 0, 1}, {w, h, 1, s, 1}, {w, 0, 1, s, 0}}),
			emit([4]corner{{0, 0, -1, 0, 1}, {w, 0, -1, 1, 1}, {w, 0, 1, 1, 1 - s}, {0, 0, 1, 0, 1 - s}}),
		},
	}

	return []Batch{front, back}
}

// transform builds the position matrix and the normal matrix for p.
func transform(p Placement) (mgl32.Mat4, mgl32.Mat3) {
	base := p.Model
	if base == (mgl32.Mat4{}) {
		base = mgl32.Ident4()
	}
	m := base
	wScale := float32(p.Width) / 16
	hScale := float32(p.Height) / 16

	// Rotating around the facing axis leaves normals alone.
	if p.Mode == Mounted && p.Rotation > 0 {
		m = m.Mul4(rotX(p.Pitch)).
			Mul4(rotY(180 - p.Yaw)).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90 * float32(p.Rotation)))).
			Mul4(rotY(-180 + p.Yaw)).
			Mul4(rotX(-p.Pitch))
	}

	f := float32(1.0 / 32.0)
	switch p.Mode {
	case Held:
		m = m.Mul4(mgl32.Translate3D(0.75, 0.5, 0.5))
		if wScale > 1 || hScale > 1 {
			f /= 3.3
		} else {
			f /= 2
		}
	default:
		off := p.Facing.Offset()
		if p.Facing.Horizontal() {
			m = m.Mul4(mgl32.Translate3D(off.Z()*0.5*wScale, -0.5*hScale, -off.X()*0.5*wScale))
		} else {
			z := float32(-0.5)
			if off.Y() > 0 {
				z = 0.5
			}
			m = m.Mul4(mgl32.Translate3D(0.5*wScale, 0, z*wScale))
		}
	}

	m = m.Mul4(rotX(p.Pitch)).Mul4(rotY(180 - p.Yaw))
	normal := base.Mat3().
		Mul3(mgl32.Rotate3DX(mgl32.DegToRad(p.Pitch))).
		Mul3(mgl32.Rotate3DY(mgl32.DegToRad(180 - p.Yaw)))

	return m.Mul4(mgl32.Scale3D(f, f, f)), normal
}

func rotX(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DX(mgl32.DegToRad(deg)) }
func rotY(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DY(mgl32.DegToRad(deg)) }
