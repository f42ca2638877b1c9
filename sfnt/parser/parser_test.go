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

package parser

import (
	"testing"

	"seehuhn.de/go/ttfsubset/font"
)

func TestPos(t *testing.T) {
	p := New("test", []byte{'0', '1', '2', '3', '4', '5', '6', '7'})

	pos := p.Pos()
	if pos != 0 {
		t.Errorf("wrong position, expected 0 but got %d", pos)
	}

	_, err := p.ReadUint16()
	if err != nil {
		t.Fatal(err)
	}

	pos = p.Pos()
	if pos != 2 {
		t.Errorf("wrong position, expected 2 but got %d", pos)
	}

	err = p.Seek(5)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pos() != 5 {
		t.Errorf("wrong position, expected 5 but got %d", p.Pos())
	}
}

func TestValues(t *testing.T) {
	p := New("test", []byte{0x12, 0x34, 0x56, 0x78, 0xFF, 0xFE, 0x00, 0x01, 0x00, 0x02})

	u32, err := p.ReadUint32()
	if err != nil || u32 != 0x12345678 {
		t.Errorf("ReadUint32: got 0x%08x, %v", u32, err)
	}
	i16, err := p.ReadInt16()
	if err != nil || i16 != -2 {
		t.Errorf("ReadInt16: got %d, %v", i16, err)
	}
	ss, err := p.ReadUint16Slice(2)
	if err != nil || len(ss) != 2 || ss[0] != 1 || ss[1] != 2 {
		t.Errorf("ReadUint16Slice: got %v, %v", ss, err)
	}
}

func TestOutOfBounds(t *testing.T) {
	p := New("test", []byte{1, 2, 3})

	_, err := p.ReadUint32()
	if !font.IsInvalid(err) {
		t.Errorf("ReadUint32 past the end: got %v", err)
	}
	if p.Pos() != 0 {
		t.Errorf("failed read moved the position to %d", p.Pos())
	}

	_, err = p.ReadUint16Slice(2)
	if !font.IsInvalid(err) {
		t.Errorf("ReadUint16Slice past the end: got %v", err)
	}

	for _, pos := range []int{-1, 4} {
		if err := p.Seek(pos); err == nil {
			t.Errorf("Seek(%d) succeeded", pos)
		}
	}
	if err := p.Seek(3); err != nil {
		t.Errorf("Seek to the end: %v", err)
	}
	if _, err := p.ReadUint8(); err == nil {
		t.Error("read at the end succeeded")
	}
	if _, err := p.ReadBytes(-1); err == nil {
		t.Error("negative read succeeded")
	}
}

func FuzzParser(f *testing.F) {
	f.Add([]byte{0, 4, 0, 1, 0, 2, 0, 3, 0, 4})
	f.Fuzz(func(t *testing.T, data []byte) {
		p := New("fuzz", data)
		n, err := p.ReadUint16()
		if err != nil {
			return
		}
		_, _ = p.ReadUint16Slice(int(n))
		_ = p.Skip(int(n))
		_, _ = p.ReadUint32()
	})
}
