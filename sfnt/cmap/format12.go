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

// format12 represents a format 12 cmap subtable.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-12-segmented-coverage
type format12 []group

type group struct {
	start    uint32
	end      uint32
	startGID uint32
}

func decodeFormat12(data []byte) (Subtable, error) {
	p := parser.New("cmap", data)
	// format, reserved
	if err := p.Skip(4); err != nil {
		return nil, err
	}
	length, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if length < 16 || int64(length) > int64(len(data)) {
		return nil, p.Error("invalid subtable length %d", length)
	}
	// language
	if err := p.Skip(4); err != nil {
		return nil, err
	}
	numGroups, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int64(numGroups) > int64(length-16)/12 {
		return nil, p.Error("too many groups (%d)", numGroups)
	}

	cmap := make(format12, numGroups)
	prevEnd := int64(-1)
	for i := range cmap {
		buf, err := p.ReadBytes(12)
		if err != nil {
			return nil, err
		}
		g := group{
			start:    uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]),
			end:      uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7]),
			startGID: uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11]),
		}
		if int64(g.start) <= prevEnd || g.end < g.start || g.end > 0x10FFFF {
			return nil, p.Error("invalid group %d: 0x%X-0x%X", i, g.start, g.end)
		}
		prevEnd = int64(g.end)
		cmap[i] = g
	}
	return cmap, nil
}

// Lookup implements the Subtable interface.
func (cmap format12) Lookup(r rune) glyph.ID {
	if r < 0 {
		return 0
	}
	c := uint32(r)
	k, _ := slices.BinarySearchFunc(cmap, c, func(g group, c uint32) int {
		if g.end < c {
			return -1
		}
		return 1
	})
	if k >= len(cmap) || cmap[k].start > c {
		return 0
	}
	gid := cmap[k].startGID + (c - cmap[k].start)
	if gid > 0xFFFF {
		return 0
	}
	return glyph.ID(gid)
}

// ForEach implements the Subtable interface.
func (cmap format12) ForEach(fn func(r rune, gid glyph.ID)) {
	for _, g := range cmap {
		for c := g.start; c <= g.end; c++ {
			gid := g.startGID + (c - g.start)
			if gid > 0xFFFF {
				break
			}
			if gid != 0 {
				fn(rune(c), glyph.ID(gid))
			}
		}
	}
}

func (cmap format12) encode() []byte {
	length := 16 + 12*len(cmap)
	buf := make([]byte, length)
	buf[1] = 12
	putUint32(buf[4:], uint32(length))
	putUint32(buf[12:], uint32(len(cmap)))
	for i, g := range cmap {
		base := 16 + 12*i
		putUint32(buf[base:], g.start)
		putUint32(buf[base+4:], g.end)
		putUint32(buf[base+8:], g.startGID)
	}
	return buf
}

func putUint32(buf []byte, x uint32) {
	buf[0] = byte(x >> 24)
	buf[1] = byte(x >> 16)
	buf[2] = byte(x >> 8)
	buf[3] = byte(x)
}
