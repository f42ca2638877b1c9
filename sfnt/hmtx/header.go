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

package hmtx

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// HeaderLength is the length of the "hhea" and "vhea" tables.
const HeaderLength = 36

const (
	offsMetricDataFormat = 32
	offsNumLongMetrics   = 34
)

// Header contains the fields of a "hhea" or "vhea" table which are needed for
// subsetting.  Both tables share the same binary layout.
type Header struct {
	Ascent         funit.Int16
	Descent        funit.Int16
	LineGap        funit.Int16
	NumLongMetrics int
}

// DecodeHeader decodes a "hhea" or "vhea" table.
// The tableName is used in error messages.
func DecodeHeader(tableName string, data []byte) (*Header, error) {
	p := parser.New(tableName, data)
	buf, err := p.ReadBytes(HeaderLength)
	if err != nil {
		return nil, err
	}

	major := binary.BigEndian.Uint16(buf[0:])
	if major != 1 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/" + tableName,
			Feature:   fmt.Sprintf("table version %d", major),
		}
	}
	if format := int16(binary.BigEndian.Uint16(buf[offsMetricDataFormat:])); format != 0 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/" + tableName,
			Feature:   fmt.Sprintf("metric data format %d", format),
		}
	}

	h := &Header{
		Ascent:         funit.Int16(binary.BigEndian.Uint16(buf[4:])),
		Descent:        funit.Int16(binary.BigEndian.Uint16(buf[6:])),
		LineGap:        funit.Int16(binary.BigEndian.Uint16(buf[8:])),
		NumLongMetrics: int(binary.BigEndian.Uint16(buf[offsNumLongMetrics:])),
	}
	return h, nil
}

// SetNumLongMetrics returns a copy of a "hhea" or "vhea" table with the
// number of long metrics replaced.
func SetNumLongMetrics(data []byte, n int) ([]byte, error) {
	if n < 0 || n > 0xFFFF {
		return nil, fmt.Errorf("sfnt/hmtx: %d long metrics out of range", n)
	}
	if len(data) < HeaderLength {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    "header table too short",
		}
	}
	res := make([]byte, len(data))
	copy(res, data)
	binary.BigEndian.PutUint16(res[offsNumLongMetrics:], uint16(n))
	return res, nil
}
