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

package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/ttfsubset/font"
)

// SearchParams computes the searchRange, entrySelector and rangeShift
// fields of the table directory for a font with numTables tables.
// numTables must be positive.
func SearchParams(numTables int) (searchRange, entrySelector, rangeShift uint16) {
	sel := bits.Len(uint(numTables)) - 1
	searchRange = uint16(16 << sel)
	entrySelector = uint16(sel)
	rangeShift = uint16(16*numTables) - searchRange
	return
}

// Write writes an sfnt file containing the given tables.
//
// Tables where the data is nil are not written.  Table data is written in
// the order of the table tags and each table is padded to a multiple of
// four bytes.  The length recorded in the directory is the unpadded length.
//
// If a "head" table is present, its checkSumAdjustment field is updated in
// place.
func Write(w io.Writer, scalerType uint32, tables map[string][]byte) (int64, error) {
	tableNames := make([]string, 0, len(tables))
	for name, data := range tables {
		if data == nil {
			continue
		}
		if len(name) != 4 {
			return 0, fmt.Errorf("sfnt/header: invalid table tag %q", name)
		}
		tableNames = append(tableNames, name)
	}
	numTables := len(tableNames)
	if numTables == 0 {
		return 0, errors.New("sfnt/header: no tables to write")
	} else if numTables > 0xFFFF {
		return 0, errors.New("sfnt/header: too many tables")
	}
	slices.Sort(tableNames)

	// temporarily clear the checksum in the "head" table
	headData := tables["head"]
	if headData != nil {
		if len(headData) < 12 {
			return 0, &font.InvalidFontError{
				SubSystem: "sfnt/head",
				Reason:    "table too short",
			}
		}
		clearChecksum(headData)
	}

	searchRange, entrySelector, rangeShift := SearchParams(numTables)
	headerBytes := make([]byte, 12+16*numTables)
	binary.BigEndian.PutUint32(headerBytes[0:], scalerType)
	binary.BigEndian.PutUint16(headerBytes[4:], uint16(numTables))
	binary.BigEndian.PutUint16(headerBytes[6:], searchRange)
	binary.BigEndian.PutUint16(headerBytes[8:], entrySelector)
	binary.BigEndian.PutUint16(headerBytes[10:], rangeShift)

	var totalSum uint32
	offset := uint64(len(headerBytes))
	for i, name := range tableNames {
		body := tables[name]
		checksum := Checksum(body)

		rec := headerBytes[12+16*i : 12+16*(i+1)]
		copy(rec[:4], name)
		binary.BigEndian.PutUint32(rec[4:], checksum)
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(body)))

		totalSum += checksum
		offset += 4 * ((uint64(len(body)) + 3) / 4)
		if offset > 0xFFFFFFFF {
			return 0, errors.New("sfnt/header: font too large")
		}
	}
	totalSum += Checksum(headerBytes)

	// set the final checksum in the "head" table
	if headData != nil {
		patchChecksum(headData, totalSum)
	}

	var totalSize int64
	n, err := w.Write(headerBytes)
	totalSize += int64(n)
	if err != nil {
		return totalSize, err
	}
	var pad [3]byte
	for _, name := range tableNames {
		body := tables[name]
		n, err := w.Write(body)
		totalSize += int64(n)
		if err != nil {
			return totalSize, err
		}
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			totalSize += int64(l)
			if err != nil {
				return totalSize, err
			}
		}
	}
	return totalSize, nil
}

// clearChecksum zeros the checksum field of the head table.
func clearChecksum(head []byte) {
	binary.BigEndian.PutUint32(head[8:12], 0)
}

// patchChecksum updates the checksum of the head table.
// The argument is the checksum of the entire font before patching.
func patchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}
