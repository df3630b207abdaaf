package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bacalhaubyte/gentile/palette"
)

type decoder struct {
	doc Document
}

// label reports whether line introduces a new section. Only a non-indented
// identifier ending in a colon counts; indented data lines and comment
// lines never terminate the current section.
func label(line string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == ';' {
		return "", false
	}

	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	s := strings.TrimRight(line, " \t")
	if !strings.HasSuffix(s, ":") {
		return "", false
	}

	return strings.TrimSuffix(s, ":"), true
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// literals returns every $-prefixed hex digit run on the line with any ;
// comment stripped first.
func literals(line string) []string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	var runs []string
	for {
		i := strings.IndexByte(line, '$')
		if i < 0 {
			return runs
		}
		line = line[i+1:]

		j := 0
		for j < len(line) && isHex(line[j]) {
			j++
		}
		if j > 0 {
			runs = append(runs, line[:j])
		}
		line = line[j:]
	}
}

func (d *decoder) decode(r io.Reader) error {
	d.doc.Palette = []palette.Color{}
	d.doc.Tiles = []byte{}

	var section string

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()

		if name, ok := label(line); ok {
			section = name
			continue
		}

		switch section {
		case PaletteLabel:
			for _, l := range literals(line) {
				if len(l) < 3 || len(l) > 4 {
					continue
				}
				v, _ := strconv.ParseUint(l, 16, 16)
				d.doc.Palette = append(d.doc.Palette, palette.Color(v))
			}
		case TileLabel:
			for _, l := range literals(line) {
				if len(l) != 2 {
					continue
				}
				v, _ := strconv.ParseUint(l, 16, 8)
				d.doc.Tiles = append(d.doc.Tiles, byte(v))
			}
		}
	}

	return s.Err()
}

// Decode reads Genesis assembly source from r. A document missing either
// label yields the corresponding empty slice rather than an error, leaving
// it to the caller to decide how much data it needs.
func Decode(r io.Reader) (*Document, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return &d.doc, nil
}
