package bmp

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/bacalhaubyte/gentile/palette"
	"github.com/bacalhaubyte/gentile/tile"
)

var errDimensionMismatch = errors.New("bmp: tile data does not match dimensions")

type fileHeader struct {
	Signature uint16
	FileSize  uint32
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(p []palette.Color, tiles []byte, tilesX, tilesY int) error {
	width := tilesX * tile.Width
	height := tilesY * tile.Height

	rowBytes := (width*bitsPerPixel + 7) / 8
	paddedRowBytes := (rowBytes + 3) &^ 3

	if err := binary.Write(e.w, binary.LittleEndian, fileHeader{
		Signature: signature,
		FileSize:  uint32(pixelOffset + paddedRowBytes*height),
		Offset:    pixelOffset,
	}); err != nil {
		return err
	}

	if err := binary.Write(e.w, binary.LittleEndian, infoHeader{
		Size:            infoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitCount:        bitsPerPixel,
		XPelsPerMeter:   pixelsPerMeter,
		YPelsPerMeter:   pixelsPerMeter,
		ColorsUsed:      numColors,
		ColorsImportant: numColors,
	}); err != nil {
		return err
	}

	// Color table in blue-green-red-reserved order. Short palettes leave
	// the remaining entries black.
	var table [colorTableSize]byte
	for i, c := range p {
		if i == numColors {
			break
		}
		r, g, b, _ := c.RGBA()
		table[i*4+0] = byte(b >> 8)
		table[i*4+1] = byte(g >> 8)
		table[i*4+2] = byte(r >> 8)
	}
	if _, err := e.w.Write(table[:]); err != nil {
		return err
	}

	// Each tile row is already four packed bytes, so a pixel row is the
	// concatenation of one row slice from every tile in the tile row.
	stride := tile.PackedSize / tile.Height
	row := make([]byte, paddedRowBytes)
	for y := height - 1; y >= 0; y-- {
		ty, ry := y/tile.Height, y%tile.Height
		for tx := 0; tx < tilesX; tx++ {
			offset := (ty*tilesX+tx)*tile.PackedSize + ry*stride
			copy(row[tx*stride:], tiles[offset:offset+stride])
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes tiles to w as a 4-bit indexed bitmap of tilesX by tilesY
// tiles. The palette may hold fewer than 16 entries; missing entries render
// as black. The tile data length must match the requested grid exactly.
func Encode(w io.Writer, p []palette.Color, tiles []byte, tilesX, tilesY int) error {
	if tilesX < 1 || tilesY < 1 || len(tiles) != tilesX*tilesY*tile.PackedSize {
		return errDimensionMismatch
	}

	e := encoder{w: w}

	return e.encode(p, tiles, tilesX, tilesY)
}
