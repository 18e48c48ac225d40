package ggpaint

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is the CPU-side backing buffer of a texture.
// Pixels are stored as RGBA8, 4 bytes per pixel, row-major, which is the
// layout GPU texture uploads expect.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA8).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixelRGBA stores a texture-layout color (0xAABBGGRR) at (x, y).
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixelRGBA(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(c)
	p.data[i+1] = uint8(c >> 8)
	p.data[i+2] = uint8(c >> 16)
	p.data[i+3] = uint8(c >> 24)
}

// PixelRGBA returns the texture-layout color at (x, y), or 0 when out of bounds.
func (p *Pixmap) PixelRGBA(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	i := (y*p.width + x) * 4
	return Color(uint32(p.data[i+0]) |
		uint32(p.data[i+1])<<8 |
		uint32(p.data[i+2])<<16 |
		uint32(p.data[i+3])<<24)
}

// Fill sets every pixel to a texture-layout color.
func (p *Pixmap) Fill(c Color) {
	r, g, b, a := uint8(c), uint8(c>>8), uint8(c>>16), uint8(c>>24)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Scaled returns the pixmap enlarged by an integer factor with
// nearest-neighbour sampling, so individual canvas pixels stay crisp.
// A factor below 1 is treated as 1.
func (p *Pixmap) Scaled(factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.width*factor, p.height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes the pixmap, enlarged by factor, to a PNG file.
func (p *Pixmap) SavePNG(path string, factor int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.Scaled(factor)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Flatten returns a copy of the pixmap composited over an opaque
// background given in picture layout. Translucent canvas pixels are
// blended with the background; the result is fully opaque.
func (p *Pixmap) Flatten(bg Color) *Pixmap {
	out := NewPixmap(p.width, p.height)
	out.Fill((bg | 0xFF000000).SwapRedBlue())
	img := out.ToImage()
	xdraw.Draw(img, img.Bounds(), p, image.Point{}, xdraw.Over)
	copy(out.data, img.Pix)
	return out
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelRGBA(x, y).SwapRedBlue().NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// PicturePixels converts img to picture-layout colors in row-major order.
func PicturePixels(img image.Image) []Color {
	b := img.Bounds()
	out := make([]Color, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, FromColor(img.At(x, y)))
		}
	}
	return out
}
