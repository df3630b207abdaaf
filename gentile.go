/*
Package gentile converts raster images to Sega Genesis tile graphics and
back.

The forward conversion quantizes an image to a 16 color Genesis palette,
splits it into 8 by 8 tiles and writes the palette and packed tile data as
assembly source. The reverse conversion parses that assembly source and
reconstructs a 4-bit indexed BMP image.
*/
package gentile

import "log"

type Converter struct {
	db     *AssetDB
	logger *log.Logger
}

// New returns a Converter. The db may be nil, in which case conversions are
// not recorded and decode dimensions must be supplied by the caller.
func New(db *AssetDB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}
