package tile

import "image"

// FromPaletted splits m into row major 8 by 8 tiles, padding on the right
// and bottom with index 0 so both dimensions cover a whole number of tiles.
// The returned counts are the grid size in tiles. Padding pixels are not
// part of the source image; callers wanting an exact crop back must track
// the original dimensions themselves.
func FromPaletted(m *image.Paletted) (tiles []Tile, tilesX, tilesY int) {
	b := m.Bounds()

	tilesX = (b.Dx() + Width - 1) / Width
	tilesY = (b.Dy() + Height - 1) / Height

	tiles = make([]Tile, 0, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			var t Tile
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					dx := b.Min.X + tx*Width + x
					dy := b.Min.Y + ty*Height + y
					if dx < b.Max.X && dy < b.Max.Y {
						t[y*Width+x] = m.ColorIndexAt(dx, dy)
					}
				}
			}
			tiles = append(tiles, t)
		}
	}

	return tiles, tilesX, tilesY
}

// Pack flattens tiles into their packed byte stream, 32 bytes per tile.
func Pack(tiles []Tile) []byte {
	b := make([]byte, 0, len(tiles)*PackedSize)
	for _, t := range tiles {
		p := t.Pack()
		b = append(b, p[:]...)
	}
	return b
}
