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

package glyf

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
)

// simple returns a fake simple glyph with the given number of bytes
// after the glyph header.
func simple(fill byte, n int) []byte {
	buf := make([]byte, 10+n)
	buf[1] = 1 // one contour
	for i := 10; i < len(buf); i++ {
		buf[i] = fill
	}
	return buf
}

// composite returns a composite glyph which references the given glyphs.
func composite(gids ...glyph.ID) []byte {
	buf := make([]byte, 10)
	buf[0], buf[1] = 0xFF, 0xFF // numberOfContours = -1
	for i, gid := range gids {
		flags := uint16(0)
		if i < len(gids)-1 {
			flags |= flagMoreComponents
		}
		if i%2 == 1 {
			flags |= flagArg1And2AreWords | flagWeHaveAScale
		}
		buf = append(buf, byte(flags>>8), byte(flags), byte(gid>>8), byte(gid))
		if i%2 == 1 {
			buf = append(buf, 0, 10, 0, 20, 0x40, 0x00) // args + scale
		} else {
			buf = append(buf, 5, 6)
		}
	}
	return buf
}

func makeFont(glyphs ...[]byte) (glyfData, locaData []byte) {
	var offs []int
	for _, g := range glyphs {
		offs = append(offs, len(glyfData))
		glyfData = append(glyfData, g...)
	}
	offs = append(offs, len(glyfData))
	locaData, err := EncodeLoca(offs, 1)
	if err != nil {
		panic(err)
	}
	return glyfData, locaData
}

func TestLoca(t *testing.T) {
	offs := []int{0, 0, 12, 40, 40, 100}
	for _, format := range []int16{0, 1} {
		data, err := EncodeLoca(offs, format)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != (2+2*int(format))*len(offs) {
			t.Errorf("format %d: wrong length %d", format, len(data))
		}
		got, err := DecodeLoca(data, format, len(offs)-1, 100)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(got, offs); d != "" {
			t.Errorf("format %d: wrong offsets (-got +want):\n%s", format, d)
		}
	}

	if FitsShort([]int{0, 3}) || FitsShort([]int{0, 0x20000}) {
		t.Error("FitsShort accepted invalid offsets")
	}
	_, err := EncodeLoca([]int{0, 3}, 0)
	if err == nil {
		t.Error("odd offset accepted for short format")
	}
}

func TestLocaErrors(t *testing.T) {
	data, _ := EncodeLoca([]int{0, 20, 10}, 1)
	_, err := DecodeLoca(data, 1, 2, 100)
	if !font.IsInvalid(err) {
		t.Errorf("decreasing offsets: got %v", err)
	}

	data, _ = EncodeLoca([]int{0, 20, 30}, 1)
	_, err = DecodeLoca(data, 1, 2, 25)
	if !font.IsInvalid(err) {
		t.Errorf("offset past end: got %v", err)
	}

	_, err = DecodeLoca(data[:8], 1, 2, 100)
	if !font.IsInvalid(err) {
		t.Errorf("short table: got %v", err)
	}

	_, err = DecodeLoca(data, 2, 2, 100)
	if !font.IsUnsupported(err) {
		t.Errorf("format 2: got %v", err)
	}
}

func TestComponents(t *testing.T) {
	glyfData, locaData := makeFont(nil, simple(1, 4), composite(1, 3), simple(2, 2))
	g, err := Decode(glyfData, locaData, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumGlyphs() != 4 {
		t.Fatalf("expected 4 glyphs but got %d", g.NumGlyphs())
	}

	for gid, want := range [][]glyph.ID{nil, nil, {1, 3}, nil} {
		got, err := g.Components(glyph.ID(gid))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(got, want); d != "" {
			t.Errorf("glyph %d: wrong components (-got +want):\n%s", gid, d)
		}
	}

	_, err = g.Components(4)
	if !font.IsInvalid(err) {
		t.Errorf("glyph out of range: got %v", err)
	}

	truncated := composite(1, 3)
	_, err = components(truncated[:len(truncated)-1])
	if !font.IsInvalid(err) {
		t.Errorf("truncated composite: got %v", err)
	}
}

func TestSubset(t *testing.T) {
	glyphs := [][]byte{simple(0, 2), simple(1, 4), composite(1, 3), simple(3, 6)}
	glyfData, locaData := makeFont(glyphs...)
	g, err := Decode(glyfData, locaData, 1, len(glyphs))
	if err != nil {
		t.Fatal(err)
	}

	var newGID map[glyph.ID]glyph.ID
	lookup := func(old glyph.ID) (glyph.ID, bool) {
		gid, ok := newGID[old]
		return gid, ok
	}

	// glyph 1 is used by the composite glyph 2
	newGID = map[glyph.ID]glyph.ID{0: 0, 2: 1, 3: 2}
	_, _, err = g.Subset([]glyph.ID{0, 2, 3}, lookup, 1)
	if err == nil {
		t.Error("missing component not detected")
	}

	newGID = map[glyph.ID]glyph.ID{1: 0, 2: 1, 3: 2}
	data, offs, err := g.Subset([]glyph.ID{1, 2, 3}, lookup, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(offs, []int{0, 14, 40, 56}); d != "" {
		t.Errorf("wrong offsets (-got +want):\n%s", d)
	}
	if !bytes.Equal(data[:14], glyphs[1]) || !bytes.Equal(data[40:], glyphs[3]) {
		t.Error("simple glyphs not copied verbatim")
	}
	if d := cmp.Diff(mustComponents(t, data[14:40]), []glyph.ID{0, 2}); d != "" {
		t.Errorf("composite not remapped (-got +want):\n%s", d)
	}
	if !bytes.Equal(glyfData[26:52], composite(1, 3)) {
		t.Error("original data was modified")
	}
}

func TestSubsetAlign(t *testing.T) {
	glyfData, locaData := makeFont(simple(0, 1), nil, simple(1, 3))
	g, err := Decode(glyfData, locaData, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	lookup := func(old glyph.ID) (glyph.ID, bool) { return old, true }
	data, offs, err := g.Subset([]glyph.ID{0, 1, 2}, lookup, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(offs, []int{0, 12, 12, 26}); d != "" {
		t.Errorf("wrong offsets (-got +want):\n%s", d)
	}
	if len(data) != 26 || !FitsShort(offs) {
		t.Errorf("glyph data not aligned")
	}
}

func mustComponents(t *testing.T, data []byte) []glyph.ID {
	t.Helper()
	comps, err := components(data)
	if err != nil {
		t.Fatal(err)
	}
	var res []glyph.ID
	for _, c := range comps {
		res = append(res, c.gid)
	}
	return res
}

func FuzzComponents(f *testing.F) {
	f.Add(composite(1, 2, 3))
	f.Add(simple(7, 5))
	f.Fuzz(func(t *testing.T, data []byte) {
		comps, err := components(data)
		if err != nil {
			return
		}
		for _, c := range comps {
			if c.pos+2 > len(data) {
				t.Fatalf("component position %d out of range", c.pos)
			}
		}
	})
}
