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

// Package name reads the strings stored in an sfnt "name" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/parser"
)

// ID identifies the meaning of a name record.
type ID uint16

// Some commonly used name IDs.
const (
	Copyright      ID = 0
	Family         ID = 1
	Subfamily      ID = 2
	FullName       ID = 4
	Version        ID = 5
	PostScriptName ID = 6
)

// Platform IDs used in name records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3
)

// Record is one decoded string from the "name" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      string
}

// Info contains the decoded records of a "name" table.
// Records with encodings which cannot be decoded are omitted.
type Info struct {
	Records []Record
}

// Decode reads a "name" table.
func Decode(data []byte) (*Info, error) {
	p := parser.New("name", data)
	buf, err := p.ReadBytes(6)
	if err != nil {
		return nil, err
	}
	version := uint16(buf[0])<<8 | uint16(buf[1])
	numRec := int(buf[2])<<8 | int(buf[3])
	storageOffset := int(buf[4])<<8 | int(buf[5])
	if version > 1 {
		return nil, &font.NotSupportedError{
			SubSystem: "sfnt/name",
			Feature:   "name table version > 1",
		}
	}
	if storageOffset > len(data) {
		return nil, errMalformedNames
	}

	info := &Info{}
	for i := 0; i < numRec; i++ {
		rec, err := p.ReadBytes(12)
		if err != nil {
			return nil, err
		}
		platformID := uint16(rec[0])<<8 | uint16(rec[1])
		encodingID := uint16(rec[2])<<8 | uint16(rec[3])
		languageID := uint16(rec[4])<<8 | uint16(rec[5])
		nameID := ID(rec[6])<<8 | ID(rec[7])
		nameLen := int(rec[8])<<8 | int(rec[9])
		nameOffset := int(rec[10])<<8 | int(rec[11])

		start := storageOffset + nameOffset
		if start+nameLen > len(data) {
			return nil, errMalformedNames
		}
		val, ok := decodeString(platformID, encodingID, data[start:start+nameLen])
		if !ok {
			continue
		}
		info.Records = append(info.Records, Record{
			PlatformID: platformID,
			EncodingID: encodingID,
			LanguageID: languageID,
			NameID:     nameID,
			Value:      val,
		})
	}
	return info, nil
}

// Get returns the string for the given name ID.  Windows records for
// US English are preferred, followed by other Windows records, Macintosh
// records and Unicode platform records.  If no record is found, the empty
// string is returned.
func (info *Info) Get(id ID) string {
	best := ""
	bestScore := 0
	for _, rec := range info.Records {
		if rec.NameID != id || rec.Value == "" {
			continue
		}
		var score int
		switch {
		case rec.PlatformID == PlatformWindows && rec.LanguageID == 0x0409:
			score = 4
		case rec.PlatformID == PlatformWindows:
			score = 3
		case rec.PlatformID == PlatformMacintosh:
			score = 2
		default:
			score = 1
		}
		if score > bestScore {
			best, bestScore = rec.Value, score
		}
	}
	return best
}

func decodeString(platformID, encodingID uint16, buf []byte) (string, bool) {
	switch {
	case platformID == PlatformUnicode,
		platformID == PlatformWindows && (encodingID == 0 || encodingID == 1 || encodingID == 10):
		return utf16Decode(buf), true
	case platformID == PlatformMacintosh && encodingID == 0: // Roman
		res, err := charmap.Macintosh.NewDecoder().Bytes(buf)
		if err != nil {
			return "", false
		}
		return string(res), true
	default:
		return "", false
	}
}

func utf16Decode(buf []byte) string {
	words := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		words = append(words, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(words))
}

var errMalformedNames = &font.InvalidFontError{
	SubSystem: "sfnt/name",
	Reason:    "malformed name table",
}
