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

package ttfsubset

import (
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/ttfsubset/sfnt/head"
	"seehuhn.de/go/ttfsubset/sfnt/header"
	"seehuhn.de/go/ttfsubset/sfnt/hmtx"
	"seehuhn.de/go/ttfsubset/sfnt/maxp"
)

// Metrics contains the font-wide values needed for subsetting.
type Metrics struct {
	UnitsPerEm uint16
	Ascent     funit.Int16
	Descent    funit.Int16
	NumGlyphs  int

	// LocaFormat is 0 if the font uses short "loca" offsets, and 1 for
	// long offsets.
	LocaFormat int16
}

// ReadMetrics extracts the metrics from the "head", "hhea" and "maxp"
// tables.  All three tables are required.
func ReadMetrics(data []byte, toc *header.Info) (*Metrics, error) {
	headData, err := toc.ReadTableBytes(data, "head")
	if err != nil {
		return nil, err
	}
	headInfo, err := head.Read(headData)
	if err != nil {
		return nil, err
	}

	hheaData, err := toc.ReadTableBytes(data, "hhea")
	if err != nil {
		return nil, err
	}
	hhea, err := hmtx.DecodeHeader("hhea", hheaData)
	if err != nil {
		return nil, err
	}

	maxpData, err := toc.ReadTableBytes(data, "maxp")
	if err != nil {
		return nil, err
	}
	maxpInfo, err := maxp.Read(maxpData)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		UnitsPerEm: headInfo.UnitsPerEm,
		Ascent:     hhea.Ascent,
		Descent:    hhea.Descent,
		NumGlyphs:  maxpInfo.NumGlyphs,
		LocaFormat: headInfo.LocaFormat,
	}
	return m, nil
}
