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

// Package testfont constructs fonts for use in unit tests.
package testfont

import (
	"bytes"
	"encoding/binary"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/sfnt/cmap"
	"seehuhn.de/go/ttfsubset/sfnt/glyf"
	"seehuhn.de/go/ttfsubset/sfnt/header"
	"seehuhn.de/go/ttfsubset/sfnt/kern"
)

// Builder describes a synthetic TrueType font.
type Builder struct {
	// Glyphs contains the glyph descriptions, indexed by glyph ID.
	// Use SimpleGlyph and CompositeGlyph to construct these.
	Glyphs [][]byte

	// Advance optionally gives the advance widths, indexed by glyph ID.
	// Missing glyphs have advance width 500 + glyph ID.
	Advance []uint16

	// CMap maps characters to glyphs.  It is written as a (3,1) format 4
	// subtable, with a (3,10) format 12 subtable if needed.
	CMap map[rune]glyph.ID

	// RawCMap, if non-nil, is used as the "cmap" table instead of CMap.
	RawCMap []byte

	// LocaFormat selects short (0) or long (1) "loca" offsets.
	LocaFormat int16

	// Kern, if non-nil, is written as the "kern" table.
	Kern kern.Info

	// Extra contains additional tables to include in the font.
	Extra map[string][]byte

	// Omit lists tables which are left out of the font.
	Omit []string
}

// Build returns the binary font file.
func (b *Builder) Build() []byte {
	numGlyphs := len(b.Glyphs)
	tables := make(map[string][]byte)

	var glyfData []byte
	offs := []int{0}
	for _, g := range b.Glyphs {
		glyfData = append(glyfData, g...)
		if b.LocaFormat == 0 && len(glyfData)%2 != 0 {
			glyfData = append(glyfData, 0)
		}
		offs = append(offs, len(glyfData))
	}
	locaData, err := glyf.EncodeLoca(offs, b.LocaFormat)
	if err != nil {
		panic(err)
	}
	tables["glyf"] = glyfData
	tables["loca"] = locaData

	headData := make([]byte, 54)
	binary.BigEndian.PutUint32(headData[0:], 0x00010000)
	binary.BigEndian.PutUint32(headData[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(headData[18:], 1000)
	binary.BigEndian.PutUint16(headData[50:], uint16(b.LocaFormat))
	tables["head"] = headData

	hheaData := make([]byte, 36)
	binary.BigEndian.PutUint32(hheaData[0:], 0x00010000)
	binary.BigEndian.PutUint16(hheaData[4:], 800)
	binary.BigEndian.PutUint16(hheaData[6:], 0xFF38) // -200
	binary.BigEndian.PutUint16(hheaData[34:], uint16(numGlyphs))
	tables["hhea"] = hheaData

	hmtxData := make([]byte, 4*numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		binary.BigEndian.PutUint16(hmtxData[4*i:], b.AdvanceWidth(glyph.ID(i)))
		binary.BigEndian.PutUint16(hmtxData[4*i+2:], uint16(i))
	}
	tables["hmtx"] = hmtxData

	maxpData := make([]byte, 32)
	binary.BigEndian.PutUint32(maxpData[0:], 0x00010000)
	binary.BigEndian.PutUint16(maxpData[4:], uint16(numGlyphs))
	tables["maxp"] = maxpData

	if b.RawCMap != nil {
		tables["cmap"] = b.RawCMap
	} else {
		tables["cmap"] = cmap.Build(b.CMap, false)
	}

	postData := make([]byte, 32)
	binary.BigEndian.PutUint32(postData[0:], 0x00030000)
	tables["post"] = postData

	if b.Kern != nil {
		tables["kern"] = b.Kern.Encode()
	}
	for name, data := range b.Extra {
		tables[name] = data
	}
	for _, name := range b.Omit {
		delete(tables, name)
	}

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, header.ScalerTypeTrueType, tables)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// AdvanceWidth returns the advance width of a glyph in the font.
func (b *Builder) AdvanceWidth(gid glyph.ID) uint16 {
	if int(gid) < len(b.Advance) {
		return b.Advance[gid]
	}
	return 500 + uint16(gid)
}

// SimpleGlyph returns the description of a simple glyph with one contour.
// The glyph data is padded with the given fill byte to a total length
// of 10+n bytes.
func SimpleGlyph(fill byte, n int) []byte {
	buf := make([]byte, 10+n)
	buf[1] = 1
	for i := 10; i < len(buf); i++ {
		buf[i] = fill
	}
	return buf
}

// CompositeGlyph returns the description of a composite glyph built from
// the given component glyphs.
func CompositeGlyph(components ...glyph.ID) []byte {
	buf := make([]byte, 10)
	buf[0], buf[1] = 0xFF, 0xFF
	for i, gid := range components {
		var flags uint16
		if i < len(components)-1 {
			flags |= 0x0020 // MORE_COMPONENTS
		}
		buf = append(buf, byte(flags>>8), byte(flags), byte(gid>>8), byte(gid), 0, 0)
	}
	return buf
}
