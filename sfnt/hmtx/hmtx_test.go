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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
)

func makeHeader(numLong int) []byte {
	data := make([]byte, HeaderLength)
	binary.BigEndian.PutUint32(data[0:], 0x00010000)
	binary.BigEndian.PutUint16(data[4:], 800)
	binary.BigEndian.PutUint16(data[6:], 0xFF38) // -200
	binary.BigEndian.PutUint16(data[offsNumLongMetrics:], uint16(numLong))
	return data
}

func TestDecodeHeader(t *testing.T) {
	h, err := DecodeHeader("hhea", makeHeader(5))
	if err != nil {
		t.Fatal(err)
	}
	want := &Header{Ascent: 800, Descent: -200, NumLongMetrics: 5}
	if d := cmp.Diff(h, want); d != "" {
		t.Errorf("wrong header (-got +want):\n%s", d)
	}

	_, err = DecodeHeader("hhea", makeHeader(5)[:30])
	if !font.IsInvalid(err) {
		t.Errorf("short table: got %v", err)
	}

	bad := makeHeader(5)
	bad[offsMetricDataFormat+1] = 1
	_, err = DecodeHeader("vhea", bad)
	if !font.IsUnsupported(err) {
		t.Errorf("metric data format: got %v", err)
	}
}

func TestSetNumLongMetrics(t *testing.T) {
	orig := makeHeader(5)
	patched, err := SetNumLongMetrics(orig, 2)
	if err != nil {
		t.Fatal(err)
	}
	h, err := DecodeHeader("hhea", patched)
	if err != nil {
		t.Fatal(err)
	}
	if h.NumLongMetrics != 2 {
		t.Errorf("expected 2 long metrics but got %d", h.NumLongMetrics)
	}
	if orig[offsNumLongMetrics+1] != 5 {
		t.Error("original table was modified")
	}
}

func TestDecode(t *testing.T) {
	data := []byte{
		0x01, 0xF4, 0x00, 0x0A, // 500, 10
		0x02, 0x58, 0xFF, 0xFE, // 600, -2
		0x00, 0x05, // lsb 5
	}
	mm, err := Decode("hmtx", data, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := Metrics{
		{Advance: 500, Bearing: 10},
		{Advance: 600, Bearing: -2},
		{Advance: 600, Bearing: 5},
	}
	if d := cmp.Diff(mm, want); d != "" {
		t.Errorf("wrong metrics (-got +want):\n%s", d)
	}

	_, err = Decode("hmtx", data[:9], 2, 3)
	if !font.IsInvalid(err) {
		t.Errorf("truncated table: got %v", err)
	}
	_, err = Decode("hmtx", data, 0, 3)
	if !font.IsInvalid(err) {
		t.Errorf("no long metrics: got %v", err)
	}
}

func TestSubsetEncode(t *testing.T) {
	mm := Metrics{
		{Advance: 500, Bearing: 1},
		{Advance: 700, Bearing: 2},
		{Advance: 600, Bearing: 3},
		{Advance: 600, Bearing: 4},
	}
	sub := mm.Subset([]glyph.ID{0, 2, 3})

	buf, numLong := sub.Encode(false)
	if numLong != 3 || len(buf) != 12 {
		t.Fatalf("uncompressed: %d long metrics, %d bytes", numLong, len(buf))
	}
	back, err := Decode("hmtx", buf, numLong, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(back, sub); d != "" {
		t.Errorf("uncompressed round trip (-got +want):\n%s", d)
	}

	buf, numLong = sub.Encode(true)
	if numLong != 2 || len(buf) != 10 {
		t.Fatalf("compressed: %d long metrics, %d bytes", numLong, len(buf))
	}
	back, err = Decode("hmtx", buf, numLong, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(back, sub); d != "" {
		t.Errorf("compressed round trip (-got +want):\n%s", d)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x01, 0xF4, 0x00, 0x0A, 0x00, 0x05}, 1, 2)
	f.Fuzz(func(t *testing.T, data []byte, numLong, numGlyphs int) {
		if numLong < 0 || numGlyphs < 0 || numGlyphs > 1000 || numLong > 1000 {
			return
		}
		mm, err := Decode("hmtx", data, numLong, numGlyphs)
		if err != nil {
			return
		}
		buf, n := mm.Encode(true)
		back, err := Decode("hmtx", buf, n, numGlyphs)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(back, mm); d != "" {
			t.Errorf("round trip (-got +want):\n%s", d)
		}
	})
}
