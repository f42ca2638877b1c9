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

// Package post has code for subsetting the "post" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// HeaderLength is the length of the fixed "post" table header.
const HeaderLength = 32

// numMacGlyphs is the number of glyph names in the standard Macintosh
// ordering.  Name indices below this value refer to the standard names.
const numMacGlyphs = 258

const (
	version1 = 0x00010000
	version2 = 0x00020000
	version3 = 0x00030000
)

// Subset returns a "post" table for the glyphs oldGIDs, in the given order.
// Glyph names from version 1 and 2 tables are kept, other versions are
// converted to version 3, which has no glyph names.
func Subset(data []byte, oldGIDs []glyph.ID) ([]byte, error) {
	p := parser.New("post", data)
	header, err := p.ReadBytes(HeaderLength)
	if err != nil {
		return nil, err
	}

	var nameIndex []uint16
	var names []string
	switch version := binary.BigEndian.Uint32(header); version {
	case version1:
		nameIndex = make([]uint16, numMacGlyphs)
		for i := range nameIndex {
			nameIndex[i] = uint16(i)
		}
	case version2:
		numGlyphs, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		nameIndex, err = p.ReadUint16Slice(int(numGlyphs))
		if err != nil {
			return nil, err
		}
		for p.Pos() < p.Size() {
			l, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			name, err := p.ReadBytes(int(l))
			if err != nil {
				return nil, err
			}
			names = append(names, string(name))
		}
	default:
		return MakeVersion3(data)
	}

	newIndex := make([]uint16, len(oldGIDs))
	var stringData []byte
	custom := make(map[string]uint16)
	for i, gid := range oldGIDs {
		var idx uint16
		if int(gid) < len(nameIndex) {
			idx = nameIndex[gid]
		}
		if idx >= numMacGlyphs {
			k := int(idx) - numMacGlyphs
			if k >= len(names) {
				return nil, &font.InvalidFontError{
					SubSystem: "sfnt/post",
					Reason:    fmt.Sprintf("missing name for glyph %d", gid),
				}
			}
			name := names[k]
			newIdx, ok := custom[name]
			if !ok {
				newIdx = uint16(numMacGlyphs + len(custom))
				custom[name] = newIdx
				stringData = append(stringData, byte(len(name)))
				stringData = append(stringData, name...)
			}
			idx = newIdx
		}
		newIndex[i] = idx
	}

	buf := make([]byte, HeaderLength+2+2*len(newIndex), HeaderLength+2+2*len(newIndex)+len(stringData))
	copy(buf, header)
	binary.BigEndian.PutUint32(buf, version2)
	binary.BigEndian.PutUint16(buf[HeaderLength:], uint16(len(newIndex)))
	for i, idx := range newIndex {
		binary.BigEndian.PutUint16(buf[HeaderLength+2+2*i:], idx)
	}
	buf = append(buf, stringData...)
	return buf, nil
}

// MakeVersion3 returns a version 3 "post" table with the same header
// fields as data.  Version 3 tables contain no glyph names.
func MakeVersion3(data []byte) ([]byte, error) {
	if len(data) < HeaderLength {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/post",
			Reason:    "table too short",
		}
	}
	buf := make([]byte, HeaderLength)
	copy(buf, data)
	binary.BigEndian.PutUint32(buf, version3)
	return buf, nil
}
