package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacalhaubyte/gentile/palette"
	"github.com/bacalhaubyte/gentile/tile"
)

func solidRedDocument() *Document {
	var pal palette.Palette
	pal[0] = 0x007

	return &Document{
		Palette: pal[:],
		Tiles:   make([]byte, tile.PackedSize),
		TilesX:  1,
		TilesY:  1,
	}
}

const solidRedSource = `; Genesis Palette Data (16 colors)
palette_data:
    dc.w $0007, $0000, $0000, $0000, $0000, $0000, $0000, $0000
    dc.w $0000, $0000, $0000, $0000, $0000, $0000, $0000, $0000

; Genesis Tile Data
; 1 tiles (1x1)
tile_data:
    dc.b $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00
    dc.b $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00, $00
`

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, solidRedDocument()))

	assert.Equal(t, solidRedSource, buf.String())
}

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(solidRedSource))
	require.NoError(t, err)

	want := solidRedDocument()
	assert.Equal(t, want.Palette, doc.Palette)
	assert.Equal(t, want.Tiles, doc.Tiles)
}

func TestEncodeDecode(t *testing.T) {
	want := &Document{
		Palette: make([]palette.Color, palette.Size),
		Tiles:   make([]byte, 4*tile.PackedSize),
		TilesX:  2,
		TilesY:  2,
	}
	for i := range want.Palette {
		want.Palette[i] = palette.Color(i * 37 % 512)
	}
	for i := range want.Tiles {
		want.Tiles[i] = byte(i)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))

	doc, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, want.Palette, doc.Palette)
	assert.Equal(t, want.Tiles, doc.Tiles)
}

func TestDecodeMissingPalette(t *testing.T) {
	doc, err := Decode(strings.NewReader("tile_data:\n    dc.b $12, $34\n"))
	require.NoError(t, err)

	assert.Empty(t, doc.Palette)
	assert.Equal(t, []byte{0x12, 0x34}, doc.Tiles)
}

func TestDecodeMissingTiles(t *testing.T) {
	doc, err := Decode(strings.NewReader("palette_data:\n    dc.w $0123\n"))
	require.NoError(t, err)

	assert.Equal(t, []palette.Color{0x123}, doc.Palette)
	assert.Empty(t, doc.Tiles)
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, doc.Palette)
	assert.Empty(t, doc.Tiles)
}

func TestDecodeHandEdited(t *testing.T) {
	source := `; hand tweaked
palette_data:
    dc.w $0e0, $01ff ; three digit words are fine
; a stray comment between data lines
    dc.w $0000

tile_data: ; pixels
    dc.b $ab
    dc.b $Cd, $0F

ignored_label:
    dc.b $99
`

	doc, err := Decode(strings.NewReader(source))
	require.NoError(t, err)

	assert.Equal(t, []palette.Color{0x0e0, 0x1ff, 0x000}, doc.Palette)
	assert.Equal(t, []byte{0xab, 0xcd, 0x0f}, doc.Tiles)
}

func TestDecodeLiteralShapes(t *testing.T) {
	source := `palette_data:
    dc.w $12, $12345, $0123, $xyz
tile_data:
    dc.b $1, $123, $7a
`

	doc, err := Decode(strings.NewReader(source))
	require.NoError(t, err)

	// Only literals of the contractual width survive.
	assert.Equal(t, []palette.Color{0x123}, doc.Palette)
	assert.Equal(t, []byte{0x7a}, doc.Tiles)
}
