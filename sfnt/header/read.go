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

// Package header reads and writes the table directory of sfnt font files.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#organization-of-an-opentype-font
package header

import (
	"errors"
	"fmt"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// Scaler types found at the start of sfnt files.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F // "OTTO"
	ScalerTypeApple    = 0x74727565 // "true"
)

// Info describes the table directory of an sfnt file.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Record is the directory entry for one table.
type Record struct {
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// Read parses the table directory at the start of data.
//
// The searchRange, entrySelector and rangeShift fields are ignored and
// table checksums are not verified.  Every table must lie inside data.
func Read(data []byte) (*Info, error) {
	p := parser.New("header", data)

	scalerType, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("scaler type 0x%08x", scalerType),
		}
	}
	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if numTables > 280 {
		// the largest value observed on my laptop is 28
		return nil, errors.New("sfnt/header: too many tables")
	}
	err = p.Skip(6) // searchRange, entrySelector, rangeShift
	if err != nil {
		return nil, err
	}

	h := &Info{
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
	}
	for i := 0; i < int(numTables); i++ {
		buf, err := p.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		name := string(buf[:4])
		rec := Record{
			CheckSum: uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7]),
			Offset:   uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11]),
			Length:   uint32(buf[12])<<24 | uint32(buf[13])<<16 | uint32(buf[14])<<8 | uint32(buf[15]),
		}
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(data)) {
			return nil, &font.InvalidFontError{
				SubSystem: "sfnt/header",
				Reason: fmt.Sprintf("table %q (offset %d, length %d) extends beyond end of file",
					name, rec.Offset, rec.Length),
			}
		}
		if _, seen := h.Toc[name]; seen {
			continue
		}
		h.Toc[name] = rec
	}
	if len(h.Toc) == 0 {
		return nil, errors.New("sfnt/header: no tables found")
	}

	return h, nil
}

// Has returns true if all the given tables are present.
func (h *Info) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := h.Toc[name]; !ok {
			return false
		}
	}
	return true
}

// Find returns the directory record for the given table.
func (h *Info) Find(tableName string) (Record, error) {
	rec, ok := h.Toc[tableName]
	if !ok {
		return rec, &ErrNoTable{Name: tableName}
	}
	return rec, nil
}

// ReadTableBytes returns the contents of the given table.  The data must be
// the same slice which was passed to Read.  The returned slice shares
// storage with data and must not be modified.
func (h *Info) ReadTableBytes(data []byte, tableName string) ([]byte, error) {
	rec, err := h.Find(tableName)
	if err != nil {
		return nil, err
	}
	end := uint64(rec.Offset) + uint64(rec.Length)
	if end > uint64(len(data)) {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    fmt.Sprintf("table %q extends beyond end of file", tableName),
		}
	}
	return data[rec.Offset:end:end], nil
}

// ErrNoTable indicates that a required table is missing from a TrueType or
// OpenType font file.
type ErrNoTable struct {
	Name string
}

func (err *ErrNoTable) Error() string {
	return "missing " + err.Name + " table in font"
}

// IsMissing returns true if err indicates a missing sfnt table.
func IsMissing(err error) bool {
	var e *ErrNoTable
	return errors.As(err, &e)
}
