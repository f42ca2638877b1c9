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
	"math/bits"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/dag"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
)

// MaxOptimize is the largest number of BMP mappings for which Build
// searches for the smallest format 4 encoding.  The search takes time
// quadratic in the number of mappings.
const MaxOptimize = 2000

type mapping struct {
	code rune
	gid  glyph.ID
}

// Build returns a "cmap" table for the given mappings.  The table contains
// a format 4 subtable for platform 3, encoding 1, and a format 12 subtable
// for platform 3, encoding 10 if any code point is outside the BMP.
// If the BMP mappings are too fragmented to fit into a format 4 subtable,
// only the format 12 subtable is written.
//
// Mappings to glyph 0 and mappings for U+FFFF are ignored.
// If optimize is true, the format 4 subtable is made as small as possible.
func Build(m map[rune]glyph.ID, optimize bool) []byte {
	codes := make([]rune, 0, len(m))
	for r, gid := range m {
		if gid != 0 && r >= 0 && r <= 0x10FFFF && r != 0xFFFF {
			codes = append(codes, r)
		}
	}
	slices.Sort(codes)

	var all, bmp []mapping
	for _, r := range codes {
		mm := mapping{code: r, gid: m[r]}
		all = append(all, mm)
		if r < 0xFFFF {
			bmp = append(bmp, mm)
		}
	}
	needFormat12 := len(bmp) < len(all)

	var sub4 []byte
	var err error
	if optimize && len(bmp) <= MaxOptimize {
		sub4, err = encodeFormat4(optimalSegments(bmp))
	}
	if sub4 == nil {
		sub4, err = encodeFormat4(greedySegments(bmp))
	}
	if err != nil {
		needFormat12 = true
	}

	type subtable struct {
		encodingID uint16
		data       []byte
	}
	var subtables []subtable
	if sub4 != nil {
		subtables = append(subtables, subtable{1, sub4})
	}
	if needFormat12 {
		subtables = append(subtables, subtable{10, makeGroups(all).encode()})
	}

	offs := 4 + 8*len(subtables)
	total := offs
	for _, s := range subtables {
		total += len(s.data)
	}
	buf := make([]byte, 4+8*len(subtables), total)
	buf[3] = byte(len(subtables))
	for i, s := range subtables {
		rec := buf[4+8*i:]
		rec[1] = 3
		rec[3] = byte(s.encodingID)
		putUint32(rec[4:], uint32(offs))
		offs += len(s.data)
	}
	for _, s := range subtables {
		buf = append(buf, s.data...)
	}
	return buf
}

// makeGroups collects runs of consecutive code points which map to
// consecutive glyph IDs.
func makeGroups(mm []mapping) format12 {
	var res format12
	for i, m := range mm {
		if i > 0 {
			last := &res[len(res)-1]
			if uint32(m.code) == last.end+1 &&
				uint32(m.gid) == last.startGID+(last.end+1-last.start) {
				last.end++
				continue
			}
		}
		res = append(res, group{
			start:    uint32(m.code),
			end:      uint32(m.code),
			startGID: uint32(m.gid),
		})
	}
	return res
}

type segment struct {
	first  uint16
	last   uint16
	delta  uint16
	values []uint16 // nil for segments which only use delta
}

func delta(m mapping) uint16 {
	return uint16(m.gid) - uint16(m.code)
}

// runEnds returns, for every index i, the end of the longest run of
// consecutive code points starting at i which share the same delta.
func runEnds(mm []mapping) []int {
	n := len(mm)
	res := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		if i < n-1 && mm[i+1].code == mm[i].code+1 && delta(mm[i+1]) == delta(mm[i]) {
			res[i] = res[i+1]
		} else {
			res[i] = i + 1
		}
	}
	return res
}

// greedySegments uses one delta segment for each run.
func greedySegments(mm []mapping) []segment {
	ends := runEnds(mm)
	var segs []segment
	for i := 0; i < len(mm); i = ends[i] {
		segs = append(segs, segment{
			first: uint16(mm[i].code),
			last:  uint16(mm[ends[i]-1].code),
			delta: delta(mm[i]),
		})
	}
	return segs
}

// optimalSegments finds the segmentation with the smallest encoded size.
func optimalSegments(mm []mapping) []segment {
	if len(mm) == 0 {
		return nil
	}

	g := &segmenter{mm: mm, ends: runEnds(mm)}
	ee, err := dag.ShortestPath[segEdge, int](g, len(mm))
	if err != nil {
		panic(err)
	}

	var segs []segment
	v := 0
	for _, e := range ee {
		w := g.To(v, e)
		first := uint16(mm[v].code)
		last := uint16(mm[w-1].code)
		if e > 0 {
			segs = append(segs, segment{first: first, last: last, delta: delta(mm[v])})
		} else {
			values := make([]uint16, int(last-first)+1)
			for _, m := range mm[v:w] {
				values[uint16(m.code)-first] = uint16(m.gid)
			}
			segs = append(segs, segment{first: first, last: last, values: values})
		}
		v = w
	}
	return segs
}

// segmenter is the graph searched by optimalSegments.  The vertices are
// the indices of the mappings, and each edge describes one segment.
type segmenter struct {
	mm   []mapping
	ends []int
}

// A segEdge describes how the next mappings are encoded:
//
//	e>0: the next e mappings form a segment which only uses idDelta
//	e<0: the next -e mappings form a segment with explicit glyph IDs
type segEdge int

func (g *segmenter) AppendEdges(ee []segEdge, v int) []segEdge {
	for k := 1; v+k <= g.ends[v]; k++ {
		ee = append(ee, segEdge(k))
	}
	for k := 2; v+k <= len(g.mm); k++ {
		ee = append(ee, segEdge(-k))
	}
	return ee
}

// Length gives the number of bytes needed to encode a segment.
// A delta segment costs 8 bytes, a segment with explicit glyph values
// needs an additional 2 bytes per code point in the range.
func (g *segmenter) Length(v int, e segEdge) int {
	if e > 0 {
		return 8
	}
	w := v - int(e)
	return 8 + 2*int(g.mm[w-1].code-g.mm[v].code+1)
}

func (g *segmenter) To(v int, e segEdge) int {
	if e > 0 {
		return v + int(e)
	}
	return v - int(e)
}

// encodeFormat4 encodes a format 4 subtable.  The final segment for
// U+FFFF is added automatically.
func encodeFormat4(segs []segment) ([]byte, error) {
	segs = append(segs[:len(segs):len(segs)], segment{first: 0xFFFF, last: 0xFFFF, delta: 1})
	segCount := len(segs)

	var glyphIDArray []uint16
	idRangeOffset := make([]uint16, segCount)
	for i, s := range segs {
		if s.values == nil {
			continue
		}
		offs := 2 * (segCount - i + len(glyphIDArray))
		if offs > 0xFFFF {
			return nil, errTooLarge
		}
		idRangeOffset[i] = uint16(offs)
		glyphIDArray = append(glyphIDArray, s.values...)
	}

	length := 16 + 8*segCount + 2*len(glyphIDArray)
	if length > 0xFFFF {
		return nil, errTooLarge
	}

	sel := bits.Len(uint(segCount))
	searchRange := 1 << sel
	words := make([]uint16, 0, length/2)
	words = append(words,
		4,                              // format
		uint16(length),                 // length
		0,                              // language
		uint16(2*segCount),             // segCountX2
		uint16(searchRange),            // searchRange
		uint16(sel-1),                  // entrySelector
		uint16(2*segCount-searchRange), // rangeShift
	)
	for _, s := range segs {
		words = append(words, s.last)
	}
	words = append(words, 0) // reservedPad
	for _, s := range segs {
		words = append(words, s.first)
	}
	for _, s := range segs {
		words = append(words, s.delta)
	}
	words = append(words, idRangeOffset...)
	words = append(words, glyphIDArray...)

	buf := make([]byte, 2*len(words))
	for i, w := range words {
		buf[2*i] = byte(w >> 8)
		buf[2*i+1] = byte(w)
	}
	return buf, nil
}

var errTooLarge = &font.NotSupportedError{
	SubSystem: "sfnt/cmap",
	Feature:   "format 4 subtables larger than 64kB",
}
