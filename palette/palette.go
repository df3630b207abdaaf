/*
Package palette implements the Sega Genesis 9-bit color format and the
16 color palettes built from quantized images.

A Genesis color packs three 3-bit channels into nine bits laid out as
BBB GGG RRR. A palette holds exactly 16 colors with unused slots left as
zero, and every pixel of a converted image is a 4-bit index into it.
*/
package palette

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Size is the number of colors in a palette.
const Size = 16

// Color is a Genesis 9-bit color, three 3-bit channels packed as
// (B<<6)|(G<<3)|R.
type Color uint16

// FromColor converts c to the nearest Genesis color. Each 8-bit channel is
// scaled to three bits with round to nearest.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color(scale(b)<<6 | scale(g)<<3 | scale(r))
}

func scale(c uint32) uint32 {
	return ((c>>8)*7 + 127) / 255
}

func expand(c uint32) uint32 {
	// Replicate the three bits across the 8-bit range so that 0 maps to 0,
	// 7 maps to 255 and re-encoding any expanded channel recovers the
	// original 3-bit value.
	c = c<<5 | c<<2 | c>>1
	return c<<8 | c
}

// RGBA implements color.Color. The expansion is lossy in the usual sense but
// stable at 3-bit granularity: converting the result back with FromColor
// yields c again.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = expand(uint32(c) & 0x007)
	g = expand(uint32(c) & 0x038 >> 3)
	b = expand(uint32(c) & 0x1c0 >> 6)
	return r, g, b, 0xffff
}

// Palette is an ordered set of exactly 16 Genesis colors.
type Palette [Size]Color

// A Quantizer reduces an image to a palette of at most cap(p) colors. It is
// satisfied by quantize.MedianCutQuantizer.
type Quantizer interface {
	Quantize(p color.Palette, m image.Image) color.Palette
}

// FromImage quantizes m to at most 16 colors using q and returns the Genesis
// palette together with the indexed image. A nil q selects median cut.
func FromImage(q Quantizer, m image.Image) (Palette, *image.Paletted) {
	if q == nil {
		q = quantize.MedianCutQuantizer{}
	}

	b := m.Bounds()

	cp := q.Quantize(make(color.Palette, 0, Size), m)
	pm := image.NewPaletted(b, cp)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		pm.Rect = pm.Rect.Sub(pm.Rect.Min)
	}

	var p Palette
	for i, c := range cp {
		p[i] = FromColor(c)
	}

	return p, pm
}
