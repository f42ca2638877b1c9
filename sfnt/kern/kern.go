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

// Package kern reads and writes the "kern" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/kern
package kern

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// Info maps glyph pairs to kerning values.  Positive values move the
// glyphs apart, negative values move them closer together.
type Info map[glyph.Pair]funit.Int16

// Coverage bits of a subtable.
const (
	coverageHorizontal  = 0x01
	coverageMinimum     = 0x02
	coverageCrossStream = 0x04
	coverageOverride    = 0x08
	coverageReserved    = 0xF0
)

// Decode reads a version 0 "kern" table.  Only horizontal format 0
// subtables are used; other subtables are skipped.  Values from several
// subtables are combined as described by the coverage bits.
func Decode(data []byte) (Info, error) {
	p := parser.New("kern", data)

	version, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/kern",
			Feature:   fmt.Sprintf("\"kern\" table version %d", version),
		}
	}
	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	res := make(Info)
	next := p.Pos()
	for i := 0; i < int(numTables); i++ {
		err = p.Seek(next)
		if err != nil {
			return nil, err
		}
		next, err = readSubtable(p, res)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// readSubtable merges the pairs of the subtable at the current position
// into res, and returns the start of the following subtable.
func readSubtable(p *parser.Parser, res Info) (int, error) {
	start := p.Pos()
	buf, err := p.ReadBytes(6)
	if err != nil {
		return 0, err
	}
	subVersion := binary.BigEndian.Uint16(buf[0:])
	length := int(binary.BigEndian.Uint16(buf[2:]))
	format := buf[4]
	coverage := buf[5]
	if length < 14 {
		return 0, p.Error("invalid kern subtable length %d", length)
	}
	end := start + length

	usable := subVersion == 0 && format == 0 &&
		coverage&(coverageHorizontal|coverageCrossStream|coverageReserved) == coverageHorizontal
	if !usable {
		return end, nil
	}

	nPairs, err := p.ReadUint16()
	if err != nil {
		return 0, err
	}
	if pairsEnd := start + 14 + 6*int(nPairs); pairsEnd > end {
		// The 16-bit length overflows for large subtables.
		end = pairsEnd
	}
	err = p.Skip(6) // searchRange, entrySelector, rangeShift
	if err != nil {
		return 0, err
	}

	for j := 0; j < int(nPairs); j++ {
		buf, err := p.ReadBytes(6)
		if err != nil {
			return 0, err
		}
		key := glyph.Pair{
			Left:  glyph.ID(binary.BigEndian.Uint16(buf[0:])),
			Right: glyph.ID(binary.BigEndian.Uint16(buf[2:])),
		}
		value := funit.Int16(binary.BigEndian.Uint16(buf[4:]))
		switch {
		case coverage&coverageMinimum != 0:
			res[key] = max(res[key], value)
		case coverage&coverageOverride != 0:
			res[key] = value
		default:
			res[key] += value
		}
	}
	return end, nil
}

// Subset returns the kerning pairs where both glyphs are mapped by newGID,
// translated to the new glyph IDs.  Pairs with value zero are omitted.
func (info Info) Subset(newGID func(glyph.ID) (glyph.ID, bool)) Info {
	res := make(Info)
	for pair, val := range info {
		if val == 0 {
			continue
		}
		left, okLeft := newGID(pair.Left)
		right, okRight := newGID(pair.Right)
		if okLeft && okRight {
			res[glyph.Pair{Left: left, Right: right}] = val
		}
	}
	return res
}

// Encode returns a "kern" table with a single format 0 subtable.  The pairs
// are sorted by left and then right glyph ID, so that the table can be
// binary searched.
func (info Info) Encode() []byte {
	keys := make([]uint32, 0, len(info))
	for pair := range info {
		keys = append(keys, uint32(pair.Left)<<16|uint32(pair.Right))
	}
	slices.Sort(keys)

	n := len(keys)
	var searchRange, entrySelector, rangeShift int
	if n > 0 {
		entrySelector = bits.Len(uint(n)) - 1
		searchRange = 6 << entrySelector
		rangeShift = 6*n - searchRange
	}

	subLen := 14 + 6*n
	buf := make([]byte, 4+subLen)
	binary.BigEndian.PutUint16(buf[2:], 1) // numTables
	sub := buf[4:]
	binary.BigEndian.PutUint16(sub[2:], uint16(subLen))
	sub[5] = coverageHorizontal
	binary.BigEndian.PutUint16(sub[6:], uint16(n))
	binary.BigEndian.PutUint16(sub[8:], uint16(searchRange))
	binary.BigEndian.PutUint16(sub[10:], uint16(entrySelector))
	binary.BigEndian.PutUint16(sub[12:], uint16(rangeShift))

	pos := 14
	for _, key := range keys {
		val := info[glyph.Pair{Left: glyph.ID(key >> 16), Right: glyph.ID(key)}]
		binary.BigEndian.PutUint32(sub[pos:], key)
		binary.BigEndian.PutUint16(sub[pos+4:], uint16(val))
		pos += 6
	}
	return buf
}
