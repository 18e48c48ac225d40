package ggpaint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 32-bit color.
//
// Pictures carry colors as 0xAARRGGBB. Textures hold them as 0xAABBGGRR,
// which is an RGBA8 texel read as a little-endian uint32. SwapRedBlue
// converts between the two.
type Color uint32

// White is opaque white, the placeholder color for canvases with no data.
const White Color = 0xFFFFFFFF

// Black is opaque black.
const Black Color = 0xFF000000

// ARGB packs components into the picture layout 0xAARRGGBB.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha component of a picture-layout color.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component of a picture-layout color.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component of a picture-layout color.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component of a picture-layout color.
func (c Color) B() uint8 { return uint8(c) }

// SwapRedBlue exchanges the red and blue channels, leaving green and alpha
// untouched. It maps 0xAARRGGBB to 0xAABBGGRR and back.
func (c Color) SwapRedBlue() Color {
	return c&0xFF00FF00 | (c>>16)&0xFF | (c&0xFF)<<16
}

// NRGBA converts a picture-layout color to color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromColor converts a standard color.Color to the picture layout.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseHex parses "RGB", "RRGGBB" or "AARRGGBB", with an optional leading '#'.
// Colors without an alpha component are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("ggpaint: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("ggpaint: invalid hex color %q: %w", s, err)
	}
	return Color(v), nil
}
