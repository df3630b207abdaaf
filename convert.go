package gentile

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"

	"github.com/bacalhaubyte/gentile/asm"
	"github.com/bacalhaubyte/gentile/bmp"
	"github.com/bacalhaubyte/gentile/palette"
	"github.com/bacalhaubyte/gentile/tile"
)

var errNoGrid = errors.New("gentile: tile dimensions not supplied and not recorded")

// Encode converts the image at imagePath into Genesis assembly source at
// asmPath. The output is staged in memory so a failed conversion leaves no
// partial file behind.
func (c *Converter) Encode(imagePath, asmPath string) error {
	f, err := os.Open(imagePath)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	b := m.Bounds()
	c.logger.Printf("Original image size: %dx%d\n", b.Dx(), b.Dy())

	pal, pm := palette.FromImage(nil, m)
	tiles, tilesX, tilesY := tile.FromPaletted(pm)

	c.logger.Printf("Image converted to %dx%d tiles (%d total tiles)\n", tilesX, tilesY, len(tiles))

	doc := &asm.Document{
		Palette: pal[:],
		Tiles:   tile.Pack(tiles),
		TilesX:  tilesX,
		TilesY:  tilesY,
	}

	var buf bytes.Buffer
	if err := asm.Encode(&buf, doc); err != nil {
		return err
	}

	if err := os.WriteFile(asmPath, buf.Bytes(), 0o644); err != nil {
		return err
	}

	if c.db != nil {
		return c.db.Record(crcBytes(doc.Tiles), filepath.Base(imagePath), tilesX, tilesY)
	}

	return nil
}

// Decode converts the Genesis assembly source at asmPath into a 4-bit
// indexed BMP at bmpPath. Non-positive tile dimensions are looked up by the
// checksum of the parsed tile data.
func (c *Converter) Decode(asmPath, bmpPath string, tilesX, tilesY int) error {
	f, err := os.Open(asmPath)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := asm.Decode(f)
	if err != nil {
		return err
	}

	if tilesX < 1 || tilesY < 1 {
		if c.db == nil {
			return errNoGrid
		}
		if tilesX, tilesY, err = c.db.FindGridByCRC(crcBytes(doc.Tiles)); err != nil {
			return err
		}
		if tilesX < 1 || tilesY < 1 {
			return errNoGrid
		}
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, doc.Palette, doc.Tiles, tilesX, tilesY); err != nil {
		return err
	}

	c.logger.Printf("Image dimensions: %dx%d pixels\n", tilesX*tile.Width, tilesY*tile.Height)

	return os.WriteFile(bmpPath, buf.Bytes(), 0o644)
}
