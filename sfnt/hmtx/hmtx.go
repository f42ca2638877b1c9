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

// Package hmtx reads and writes the "hmtx" and "vmtx" tables, together
// with the associated "hhea" and "vhea" header tables.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
// https://docs.microsoft.com/en-us/typography/opentype/spec/vmtx
package hmtx

import (
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// Metric gives the advance and side bearing of one glyph.  For "hmtx" these
// are the advance width and left side bearing, for "vmtx" the advance height
// and the top side bearing.
type Metric struct {
	Advance uint16
	Bearing funit.Int16
}

// Metrics lists the metrics of all glyphs, indexed by glyph ID.
type Metrics []Metric

// Decode decodes a "hmtx" or "vmtx" table.  The number of long metrics is
// taken from the corresponding header table and numGlyphs from "maxp".
//
// Glyphs past the last long metric use the advance of the last long
// metric, as required by the file format.
func Decode(tableName string, data []byte, numLong, numGlyphs int) (Metrics, error) {
	p := parser.New(tableName, data)
	if numGlyphs == 0 {
		return Metrics{}, nil
	}
	if numLong == 0 {
		return nil, p.Error("no long metrics")
	}
	if numLong > numGlyphs {
		numLong = numGlyphs
	}

	res := make(Metrics, numGlyphs)
	long, err := p.ReadUint16Slice(2 * numLong)
	if err != nil {
		return nil, err
	}
	for i := 0; i < numLong; i++ {
		res[i] = Metric{
			Advance: long[2*i],
			Bearing: funit.Int16(long[2*i+1]),
		}
	}

	bearings, err := p.ReadUint16Slice(numGlyphs - numLong)
	if err != nil {
		return nil, err
	}
	advance := res[numLong-1].Advance
	for i, b := range bearings {
		res[numLong+i] = Metric{
			Advance: advance,
			Bearing: funit.Int16(b),
		}
	}
	return res, nil
}

// Subset returns the metrics for the glyphs in oldGIDs, in the order given.
// The caller must make sure that all glyph IDs are in range.
func (mm Metrics) Subset(oldGIDs []glyph.ID) Metrics {
	res := make(Metrics, len(oldGIDs))
	for i, gid := range oldGIDs {
		res[i] = mm[gid]
	}
	return res
}

// Encode returns the binary representation of the metrics, together with
// the number of long metrics written.  If compress is true, trailing glyphs
// with the same advance are stored as side bearings only.
func (mm Metrics) Encode(compress bool) ([]byte, int) {
	numLong := len(mm)
	if compress {
		for numLong > 1 && mm[numLong-1].Advance == mm[numLong-2].Advance {
			numLong--
		}
	}

	buf := make([]byte, 4*numLong+2*(len(mm)-numLong))
	pos := 0
	for i, m := range mm {
		if i < numLong {
			buf[pos] = byte(m.Advance >> 8)
			buf[pos+1] = byte(m.Advance)
			pos += 2
		}
		buf[pos] = byte(m.Bearing >> 8)
		buf[pos+1] = byte(m.Bearing)
		pos += 2
	}
	return buf, numLong
}
