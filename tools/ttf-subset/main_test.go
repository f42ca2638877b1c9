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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset"
	"seehuhn.de/go/ttfsubset/internal/testfont"
)

func TestParseGlyphList(t *testing.T) {
	cases := []struct {
		in   string
		want []glyph.ID
	}{
		{"", nil},
		{"7", []glyph.ID{7}},
		{"0,3,5-9", []glyph.ID{0, 3, 5, 6, 7, 8, 9}},
		{" 1 , 2 - 3 ", []glyph.ID{1, 2, 3}},
		{"65535", []glyph.ID{65535}},
	}
	for _, c := range cases {
		got, err := parseGlyphList(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("%q: wrong result (-got +want):\n%s", c.in, d)
		}
	}

	for _, in := range []string{"x", "1,,2", "5-3", "65536", "-1", "1-"} {
		_, err := parseGlyphList(in)
		if err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}

func TestReport(t *testing.T) {
	s, err := ttfsubset.New(testfont.GoRegular(), nil)
	if err != nil {
		t.Fatal(err)
	}
	err = s.AddGlyphsForString("a\U0001F600")
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.CreateSubset()
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	report(buf, s)
	if !strings.Contains(buf.String(), "U+1F600 GRINNING FACE") {
		t.Errorf("unmapped character not reported:\n%s", buf.String())
	}
}
