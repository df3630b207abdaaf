/*
Package bmp writes Genesis tile data as a 4-bit indexed Windows bitmap.

The file layout is fixed: a 14 byte file header, a 40 byte BITMAPINFOHEADER,
a 64 byte color table of 16 blue-green-red-reserved entries and the pixel
rows written bottom up, each padded to a multiple of four bytes.
*/
package bmp

const (
	signature = 0x4d42 // "BM"

	fileHeaderSize = 14
	infoHeaderSize = 40
	colorTableSize = 64

	pixelOffset = fileHeaderSize + infoHeaderSize + colorTableSize

	bitsPerPixel = 4
	numColors    = 16

	pixelsPerMeter = 2835 // 72 DPI
)
