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

// Package glyf reads and subsets the "glyf" and "loca" tables.
//
// Glyph descriptions are copied as opaque byte strings.  The only part of
// a glyph which is interpreted is the component list of composite glyphs,
// since the component glyph IDs need to be translated when glyphs are
// renumbered.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

import (
	"fmt"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
)

// Glyphs gives access to the glyph descriptions of a font.
type Glyphs struct {
	data []byte
	offs []int
}

// Decode combines the "glyf" and "loca" tables of a font.
func Decode(glyfData, locaData []byte, locaFormat int16, numGlyphs int) (*Glyphs, error) {
	offs, err := DecodeLoca(locaData, locaFormat, numGlyphs, len(glyfData))
	if err != nil {
		return nil, err
	}
	return &Glyphs{data: glyfData, offs: offs}, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (g *Glyphs) NumGlyphs() int {
	return len(g.offs) - 1
}

// Glyph returns the binary glyph description for the given glyph.
// Empty glyphs are represented by a nil slice.
// The returned slice must not be modified.
func (g *Glyphs) Glyph(gid glyph.ID) []byte {
	start, end := g.offs[gid], g.offs[gid+1]
	if start == end {
		return nil
	}
	return g.data[start:end:end]
}

// Components returns the component glyphs of a composite glyph.
// For simple glyphs, nil is returned.
func (g *Glyphs) Components(gid glyph.ID) ([]glyph.ID, error) {
	if int(gid) >= g.NumGlyphs() {
		return nil, errGlyphRange(gid)
	}
	comps, err := components(g.Glyph(gid))
	if err != nil {
		return nil, err
	}
	var res []glyph.ID
	for _, c := range comps {
		res = append(res, c.gid)
	}
	return res, nil
}

// Subset concatenates the descriptions of the given glyphs, in the given
// order, and returns the new "glyf" data together with the glyph offsets.
// The glyph IDs inside composite glyphs are translated using newGID.
// If align is greater than 1, every glyph is padded with zeros to a
// multiple of align bytes.
func (g *Glyphs) Subset(oldGIDs []glyph.ID, newGID func(glyph.ID) (glyph.ID, bool), align int) ([]byte, []int, error) {
	size := 0
	for _, gid := range oldGIDs {
		if int(gid) >= g.NumGlyphs() {
			return nil, nil, errGlyphRange(gid)
		}
		size += g.offs[gid+1] - g.offs[gid] + align
	}

	buf := make([]byte, 0, size)
	offs := make([]int, len(oldGIDs)+1)
	for i, gid := range oldGIDs {
		data := g.Glyph(gid)
		comps, err := components(data)
		if err != nil {
			return nil, nil, err
		}

		start := len(buf)
		buf = append(buf, data...)
		for _, c := range comps {
			newComp, ok := newGID(c.gid)
			if !ok {
				return nil, nil, fmt.Errorf("sfnt/glyf: component %d of glyph %d not in subset", c.gid, gid)
			}
			buf[start+c.pos] = byte(newComp >> 8)
			buf[start+c.pos+1] = byte(newComp)
		}
		if align > 1 {
			for len(buf)%align != 0 {
				buf = append(buf, 0)
			}
		}
		offs[i+1] = len(buf)
	}
	return buf, offs, nil
}

type componentRef struct {
	gid glyph.ID
	pos int // position of the glyph index within the glyph data
}

const (
	flagArg1And2AreWords   = 0x0001
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
)

// components decodes the component list of a composite glyph.
func components(data []byte) ([]componentRef, error) {
	if len(data) == 0 {
		return nil, nil
	} else if len(data) < 10 {
		return nil, errIncompleteGlyph
	}
	numContours := int16(data[0])<<8 | int16(data[1])
	if numContours >= 0 {
		return nil, nil
	}

	var res []componentRef
	pos := 10
	for {
		if pos+4 > len(data) {
			return nil, errIncompleteGlyph
		}
		flags := uint16(data[pos])<<8 | uint16(data[pos+1])
		res = append(res, componentRef{
			gid: glyph.ID(data[pos+2])<<8 | glyph.ID(data[pos+3]),
			pos: pos + 2,
		})
		pos += 4

		if flags&flagArg1And2AreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		if flags&flagWeHaveAScale != 0 {
			pos += 2
		} else if flags&flagWeHaveAnXAndYScale != 0 {
			pos += 4
		} else if flags&flagWeHaveATwoByTwo != 0 {
			pos += 8
		}
		if pos > len(data) {
			return nil, errIncompleteGlyph
		}

		if flags&flagMoreComponents == 0 {
			break
		}
	}
	return res, nil
}

func errGlyphRange(gid glyph.ID) error {
	return &font.InvalidFontError{
		SubSystem: "sfnt/glyf",
		Reason:    fmt.Sprintf("glyph %d not in font", gid),
	}
}

var errIncompleteGlyph = &font.InvalidFontError{
	SubSystem: "sfnt/glyf",
	Reason:    "incomplete glyph",
}
