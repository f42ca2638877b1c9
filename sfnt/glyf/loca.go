// seehuhn.de/go/ttfsubset - subsetting of TrueType font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyf

import (
	"errors"
	"fmt"

	"seehuhn.de/go/ttfsubset/font"
)

// DecodeLoca decodes the "loca" table.  The result has numGlyphs+1 entries;
// the data for glyph i is found at glyf[offs[i]:offs[i+1]].
// Extra entries at the end of the table are ignored.
func DecodeLoca(data []byte, locaFormat int16, numGlyphs, glyfLen int) ([]int, error) {
	var entrySize int
	switch locaFormat {
	case 0:
		entrySize = 2
	case 1:
		entrySize = 4
	default:
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/loca",
			Feature:   fmt.Sprintf("loca table format %d", locaFormat),
		}
	}
	if len(data) < entrySize*(numGlyphs+1) {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/loca",
			Reason:    "table too short",
		}
	}

	offs := make([]int, numGlyphs+1)
	prev := 0
	for i := range offs {
		var pos int
		if entrySize == 2 {
			pos = 2 * (int(data[2*i])<<8 | int(data[2*i+1]))
		} else {
			pos = int(data[4*i])<<24 | int(data[4*i+1])<<16 |
				int(data[4*i+2])<<8 | int(data[4*i+3])
		}
		if pos < prev || pos > glyfLen {
			return nil, &font.InvalidFontError{
				SubSystem: "sfnt/loca",
				Reason:    fmt.Sprintf("invalid offset %d for glyph %d", pos, i),
			}
		}
		offs[i] = pos
		prev = pos
	}
	return offs, nil
}

// EncodeLoca encodes the glyph offsets as a "loca" table.
// The short format requires all offsets to be even and at most 0x1FFFE.
func EncodeLoca(offs []int, locaFormat int16) ([]byte, error) {
	switch locaFormat {
	case 0:
		if !FitsShort(offs) {
			return nil, errors.New("sfnt/loca: offsets not representable in short format")
		}
		buf := make([]byte, 2*len(offs))
		for i, off := range offs {
			x := off / 2
			buf[2*i] = byte(x >> 8)
			buf[2*i+1] = byte(x)
		}
		return buf, nil
	case 1:
		buf := make([]byte, 4*len(offs))
		for i, off := range offs {
			buf[4*i] = byte(off >> 24)
			buf[4*i+1] = byte(off >> 16)
			buf[4*i+2] = byte(off >> 8)
			buf[4*i+3] = byte(off)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("sfnt/loca: invalid format %d", locaFormat)
	}
}

// FitsShort reports whether the offsets can be stored in a short "loca"
// table.
func FitsShort(offs []int) bool {
	for _, off := range offs {
		if off%2 != 0 || off > 0x1FFFE {
			return false
		}
	}
	return true
}
