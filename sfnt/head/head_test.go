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

package head

import (
	"encoding/binary"
	"testing"

	"seehuhn.de/go/ttfsubset/font"
)

func makeHead(unitsPerEm uint16, locaFormat int16) []byte {
	data := make([]byte, Length)
	binary.BigEndian.PutUint32(data[0:], 0x00010000)
	binary.BigEndian.PutUint32(data[8:], 0x12345678)
	binary.BigEndian.PutUint32(data[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(data[offsUnitsPerEm:], unitsPerEm)
	binary.BigEndian.PutUint16(data[offsIndexToLocFormat:], uint16(locaFormat))
	return data
}

func TestRead(t *testing.T) {
	info, err := Read(makeHead(2048, 1))
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 2048 || info.LocaFormat != 1 {
		t.Errorf("wrong info: %+v", info)
	}

	_, err = Read(makeHead(1000, 0)[:40])
	if !font.IsInvalid(err) {
		t.Errorf("short table: got %v", err)
	}

	bad := makeHead(1000, 0)
	bad[12] = 0
	_, err = Read(bad)
	if !font.IsInvalid(err) {
		t.Errorf("bad magic: got %v", err)
	}

	_, err = Read(makeHead(1000, 2))
	if !font.IsInvalid(err) {
		t.Errorf("bad loca format: got %v", err)
	}
}

func TestWithLocaFormat(t *testing.T) {
	orig := makeHead(1000, 1)
	patched, err := WithLocaFormat(orig, 0)
	if err != nil {
		t.Fatal(err)
	}
	info, err := Read(patched)
	if err != nil {
		t.Fatal(err)
	}
	if info.LocaFormat != 0 {
		t.Errorf("loca format not updated")
	}
	if binary.BigEndian.Uint32(patched[8:]) != 0 {
		t.Errorf("checksum adjustment not cleared")
	}
	if binary.BigEndian.Uint16(orig[offsIndexToLocFormat:]) != 1 {
		t.Errorf("original table was modified")
	}
}
