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

package cmap

import (
	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// format4 represents a format 4 cmap subtable.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
type format4 struct {
	endCode       []uint16
	startCode     []uint16
	idDelta       []uint16
	idRangeOffset []uint16
	glyphIDArray  []uint16
}

func decodeFormat4(data []byte) (Subtable, error) {
	p := parser.New("cmap", data)
	// format, length, language, segCountX2, searchRange, entrySelector, rangeShift
	header, err := p.ReadUint16Slice(7)
	if err != nil {
		return nil, err
	}

	length := int(header[1])
	if length > len(data) {
		// Some fonts have subtables larger than 64kB, where the length
		// field cannot represent the actual length.
		length = len(data)
	}
	segCountX2 := int(header[3])
	if segCountX2 == 0 || segCountX2%2 != 0 {
		return nil, p.Error("invalid segCountX2 %d", segCountX2)
	}
	segCount := segCountX2 / 2
	if 16+8*segCount > length {
		return nil, p.Error("format 4 subtable too short for %d segments", segCount)
	}

	words, err := p.ReadUint16Slice((length - 14) / 2)
	if err != nil {
		return nil, err
	}
	cmap := &format4{
		endCode: words[:segCount],
		// words[segCount] is reservedPad
		startCode:     words[segCount+1 : 2*segCount+1],
		idDelta:       words[2*segCount+1 : 3*segCount+1],
		idRangeOffset: words[3*segCount+1 : 4*segCount+1],
		glyphIDArray:  words[4*segCount+1:],
	}

	for k := 0; k < segCount; k++ {
		if cmap.startCode[k] > cmap.endCode[k] ||
			k > 0 && cmap.startCode[k] <= cmap.endCode[k-1] {
			return nil, p.Error("invalid segment %d: 0x%04X-0x%04X",
				k, cmap.startCode[k], cmap.endCode[k])
		}
	}

	return cmap, nil
}

// Lookup implements the Subtable interface.
func (cmap *format4) Lookup(r rune) glyph.ID {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	c := uint16(r)
	k, _ := slices.BinarySearch(cmap.endCode, c)
	if k >= len(cmap.endCode) || cmap.startCode[k] > c {
		return 0
	}
	return cmap.lookupSegment(k, c)
}

// ForEach implements the Subtable interface.
func (cmap *format4) ForEach(fn func(r rune, gid glyph.ID)) {
	for k := range cmap.endCode {
		for c := uint32(cmap.startCode[k]); c <= uint32(cmap.endCode[k]); c++ {
			gid := cmap.lookupSegment(k, uint16(c))
			if gid != 0 {
				fn(rune(c), gid)
			}
		}
	}
}

func (cmap *format4) lookupSegment(k int, c uint16) glyph.ID {
	ro := cmap.idRangeOffset[k]
	if ro == 0 {
		return glyph.ID(c + cmap.idDelta[k])
	}

	idx := int(ro)/2 - (len(cmap.endCode) - k) + int(c-cmap.startCode[k])
	if idx < 0 || idx >= len(cmap.glyphIDArray) {
		return 0
	}
	gid := cmap.glyphIDArray[idx]
	if gid == 0 {
		return 0
	}
	return glyph.ID(gid + cmap.idDelta[k])
}
