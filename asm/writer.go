package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/bacalhaubyte/gentile/palette"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(e.w, format, a...)
	return err
}

func (e *encoder) encodePalette(p []palette.Color) error {
	if err := e.printf("; Genesis Palette Data (%d colors)\n%s:\n", palette.Size, PaletteLabel); err != nil {
		return err
	}

	for i := 0; i < len(p); i += wordsPerLine {
		words := make([]string, 0, wordsPerLine)
		for _, c := range p[i:min(i+wordsPerLine, len(p))] {
			words = append(words, fmt.Sprintf("$%04X", uint16(c)))
		}
		if err := e.printf("    dc.w %s\n", strings.Join(words, ", ")); err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) encodeTiles(d *Document) error {
	if err := e.printf("\n; Genesis Tile Data\n; %d tiles (%dx%d)\n%s:\n", d.TilesX*d.TilesY, d.TilesX, d.TilesY, TileLabel); err != nil {
		return err
	}

	for i := 0; i < len(d.Tiles); i += bytesPerLine {
		data := make([]string, 0, bytesPerLine)
		for _, b := range d.Tiles[i:min(i+bytesPerLine, len(d.Tiles))] {
			data = append(data, fmt.Sprintf("$%02X", b))
		}
		if err := e.printf("    dc.b %s\n", strings.Join(data, ", ")); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes d to w as Genesis assembly source.
func Encode(w io.Writer, d *Document) error {
	e := encoder{w: w}

	if err := e.encodePalette(d.Palette); err != nil {
		return err
	}

	return e.encodeTiles(d)
}
