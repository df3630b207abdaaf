/*
Package tile implements the Genesis 8 by 8 tile format.

An indexed image is split into 8 by 8 pixel tiles in row major order. Each
tile holds 64 4-bit palette indices packed two to a byte with the high
nibble first, giving 32 bytes per tile.
*/
package tile

const (
	// Width and Height are the fixed tile dimensions in pixels.
	Width  = 8
	Height = Width

	// Pixels is the number of palette indices held by one tile.
	Pixels = Width * Height

	// PackedSize is the encoded size of one tile in bytes.
	PackedSize = Pixels >> 1
)

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// Tile holds the 64 palette indices of one tile in row major order; the
// pixel at (x, y) within the tile is at offset y*8+x.
type Tile [Pixels]byte

// Pack encodes the tile as 32 bytes, two indices per byte with the earlier
// pixel in the high nibble. Indices are masked to their low four bits.
func (t Tile) Pack() [PackedSize]byte {
	var b [PackedSize]byte
	for i := 0; i < Pixels; i += 2 {
		b[i>>1] = t[i]&0x0f<<4 | t[i+1]&0x0f
	}
	return b
}

// Unpack decodes 32 packed bytes back into a tile. It is the exact inverse
// of Pack for indices in the 0 to 15 range.
func Unpack(b [PackedSize]byte) Tile {
	var t Tile
	for i, v := range b {
		t[i<<1] = upperNibble(v) >> 4
		t[i<<1|1] = lowerNibble(v)
	}
	return t
}
