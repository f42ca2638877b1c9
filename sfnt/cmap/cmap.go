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

// Package cmap reads and writes "cmap" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"errors"
	"fmt"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// ErrNoUnicode is returned if a "cmap" table has no subtable which maps
// Unicode code points.
var ErrNoUnicode = errors.New("sfnt/cmap: no Unicode subtable")

// UnsupportedFormatError is returned for subtables in a format other than
// 4 or 12.
type UnsupportedFormatError struct {
	Format uint16
}

func (err *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("sfnt/cmap: unsupported subtable format %d", err.Format)
}

// Subtable is a decoded cmap subtable.
type Subtable interface {
	// Lookup returns the glyph ID for the given code point.
	// The value 0 indicates that r is not mapped.
	Lookup(r rune) glyph.ID

	// ForEach calls fn for all mapped code points, in increasing order.
	// Code points which map to glyph 0 are skipped.
	ForEach(fn func(r rune, gid glyph.ID))
}

// Record is an encoding record of a "cmap" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	Offset     uint32
}

// IsUnicode reports whether the record describes a Unicode subtable.
// Platform 0 encoding 5 holds Unicode variation sequences, which cannot be
// used to map single code points.
func (rec Record) IsUnicode() bool {
	switch rec.PlatformID {
	case 0:
		return rec.EncodingID != 5
	case 3:
		return rec.EncodingID == 1 || rec.EncodingID == 10
	}
	return false
}

// Table is a decoded "cmap" table.
type Table struct {
	Records []Record
	data    []byte
}

// Decode reads the encoding records of a "cmap" table.
// Subtables are decoded on demand.
func Decode(data []byte) (*Table, error) {
	p := parser.New("cmap", data)
	version, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, p.Error("unknown version %d", version)
	}
	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	t := &Table{
		Records: make([]Record, numTables),
		data:    data,
	}
	for i := range t.Records {
		buf, err := p.ReadBytes(8)
		if err != nil {
			return nil, err
		}
		rec := Record{
			PlatformID: uint16(buf[0])<<8 | uint16(buf[1]),
			EncodingID: uint16(buf[2])<<8 | uint16(buf[3]),
			Offset:     uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7]),
		}
		if int64(rec.Offset) >= int64(len(data)) {
			return nil, p.Error("subtable offset %d out of range", rec.Offset)
		}
		t.Records[i] = rec
	}
	return t, nil
}

// Get decodes the subtable for the given encoding record.
func (t *Table) Get(rec Record) (Subtable, error) {
	if int64(rec.Offset) >= int64(len(t.data)) {
		return nil, &font.InvalidFontError{
			SubSystem: "sfnt/cmap",
			Reason:    fmt.Sprintf("subtable offset %d out of range", rec.Offset),
		}
	}
	return DecodeSubtable(t.data[rec.Offset:])
}

// Unicode decodes the first subtable which maps Unicode code points.
// If there is no such subtable, ErrNoUnicode is returned.  If the subtable
// uses a format other than 4 or 12, an *UnsupportedFormatError is returned.
func (t *Table) Unicode() (Subtable, error) {
	for _, rec := range t.Records {
		if rec.IsUnicode() {
			return t.Get(rec)
		}
	}
	return nil, ErrNoUnicode
}

// DecodeSubtable decodes a cmap subtable.  The data starts at the beginning
// of the subtable and may extend past its end.
func DecodeSubtable(data []byte) (Subtable, error) {
	p := parser.New("cmap", data)
	format, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	switch format {
	case 4:
		return decodeFormat4(data)
	case 12:
		return decodeFormat12(data)
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}

// Resolve maps the characters of text to glyph IDs, using the Unicode
// subtable of the given "cmap" table.  Characters which are not covered by
// the subtable are skipped.
func Resolve(text string, cmapData []byte) ([]glyph.ID, error) {
	t, err := Decode(cmapData)
	if err != nil {
		return nil, err
	}
	sub, err := t.Unicode()
	if err != nil {
		return nil, err
	}
	return Lookup(sub, text), nil
}

// Lookup maps the characters of text to glyph IDs.  Characters which are
// not mapped by sub are skipped.
func Lookup(sub Subtable, text string) []glyph.ID {
	var res []glyph.ID
	for _, r := range text {
		gid := sub.Lookup(r)
		if gid != 0 {
			res = append(res, gid)
		}
	}
	return res
}
