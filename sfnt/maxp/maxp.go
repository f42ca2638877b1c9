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

// Package maxp reads and patches "maxp" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// Info contains information from the "maxp" table.
type Info struct {
	// NumGlyphs is number of glyphs in the font, in the range 1, ..., 65535.
	NumGlyphs int

	// TTF contains additional information for TrueType fonts.
	// This is nil for version 0.5 tables.
	TTF *TTFInfo
}

// TTFInfo contains TrueType-specific information from the "maxp" table.
type TTFInfo struct {
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// Read decodes the "maxp" table.
func Read(data []byte) (*Info, error) {
	p := parser.New("maxp", data)
	version, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if version != 0x00005000 && version != 0x00010000 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/maxp",
			Feature:   fmt.Sprintf("table version 0x%08x", version),
		}
	}

	numGlyphs, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if numGlyphs == 0 {
		return nil, p.Error("numGlyphs is zero")
	}
	info := &Info{
		NumGlyphs: int(numGlyphs),
	}
	if version == 0x00005000 {
		return info, nil
	}

	vals, err := p.ReadUint16Slice(13)
	if err != nil {
		return nil, err
	}
	info.TTF = &TTFInfo{
		MaxPoints:             vals[0],
		MaxContours:           vals[1],
		MaxCompositePoints:    vals[2],
		MaxCompositeContours:  vals[3],
		MaxZones:              vals[4],
		MaxTwilightPoints:     vals[5],
		MaxStorage:            vals[6],
		MaxFunctionDefs:       vals[7],
		MaxInstructionDefs:    vals[8],
		MaxStackElements:      vals[9],
		MaxSizeOfInstructions: vals[10],
		MaxComponentElements:  vals[11],
		MaxComponentDepth:     vals[12],
	}
	return info, nil
}

// SetNumGlyphs returns a copy of the "maxp" table with the numGlyphs field
// replaced.  All other fields are kept unchanged.
func SetNumGlyphs(data []byte, numGlyphs int) ([]byte, error) {
	if numGlyphs < 1 || numGlyphs > 0xFFFF {
		return nil, fmt.Errorf("sfnt/maxp: numGlyphs %d out of range", numGlyphs)
	}
	if len(data) < 6 {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/maxp",
			Reason:    "table too short",
		}
	}
	res := make([]byte, len(data))
	copy(res, data)
	binary.BigEndian.PutUint16(res[4:], uint16(numGlyphs))
	return res, nil
}
