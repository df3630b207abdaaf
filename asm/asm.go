/*
Package asm reads and writes Genesis tile data as assembly source.

A document holds a palette section and a tile section, each introduced by a
label on its own line and followed by dc.w or dc.b data lines of $-prefixed
uppercase hex literals. The reader accepts hand-edited files so long as the
literal shapes are preserved: three or four hex digits for palette words,
exactly two for tile bytes.
*/
package asm

import "github.com/bacalhaubyte/gentile/palette"

const (
	// PaletteLabel and TileLabel introduce the two data sections.
	PaletteLabel = "palette_data"
	TileLabel    = "tile_data"

	wordsPerLine = 8
	bytesPerLine = 16
)

// Document is the parsed or to-be-written content of an assembly file. A
// section missing from the input is represented by an empty slice. TilesX
// and TilesY only inform the tile count comment when writing; the text
// format itself does not carry them.
type Document struct {
	Palette []palette.Color
	Tiles   []byte
	TilesX  int
	TilesY  int
}
