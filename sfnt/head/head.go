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

// Package head reads and patches the "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// Length is the length of a version 1.0 "head" table.
const Length = 54

const (
	offsUnitsPerEm       = 18
	offsIndexToLocFormat = 50
)

// Info contains the fields of the "head" table which are needed for
// subsetting.
type Info struct {
	UnitsPerEm uint16 // font design units per em square
	LocaFormat int16  // 0 for short "loca" offsets, 1 for long offsets
}

// Read decodes the binary representation of the head table.
func Read(data []byte) (*Info, error) {
	p := parser.New("head", data)
	buf, err := p.ReadBytes(Length)
	if err != nil {
		return nil, err
	}

	version := binary.BigEndian.Uint32(buf[0:])
	if version>>16 != 1 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/head",
			Feature:   fmt.Sprintf("table version 0x%08x", version),
		}
	}
	magic := binary.BigEndian.Uint32(buf[12:])
	if magic != 0x5F0F3CF5 {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    fmt.Sprintf("invalid magic number 0x%08x", magic),
		}
	}

	info := &Info{
		UnitsPerEm: binary.BigEndian.Uint16(buf[offsUnitsPerEm:]),
		LocaFormat: int16(binary.BigEndian.Uint16(buf[offsIndexToLocFormat:])),
	}
	if info.LocaFormat != 0 && info.LocaFormat != 1 {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    fmt.Sprintf("invalid indexToLocFormat %d", info.LocaFormat),
		}
	}
	return info, nil
}

// WithLocaFormat returns a copy of the head table where indexToLocFormat is
// set to locaFormat and checkSumAdjustment is cleared.
func WithLocaFormat(data []byte, locaFormat int16) ([]byte, error) {
	if len(data) < Length {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    "table too short",
		}
	}
	res := make([]byte, len(data))
	copy(res, data)
	binary.BigEndian.PutUint32(res[8:], 0)
	binary.BigEndian.PutUint16(res[offsIndexToLocFormat:], uint16(locaFormat))
	return res, nil
}
