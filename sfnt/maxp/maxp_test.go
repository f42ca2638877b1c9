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

package maxp

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ttfsubset/font"
)

func TestReadV05(t *testing.T) {
	data := []byte{0x00, 0x00, 0x50, 0x00, 0x01, 0x02}
	info, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, &Info{NumGlyphs: 258}); d != "" {
		t.Errorf("wrong info (-got +want):\n%s", d)
	}
}

func TestReadV1(t *testing.T) {
	data := make([]byte, 32)
	data[1] = 1
	data[5] = 7
	data[6], data[7] = 0x01, 0x00 // maxPoints
	data[31] = 2                  // maxComponentDepth
	info, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 7 || info.TTF == nil {
		t.Fatalf("wrong info: %+v", info)
	}
	if info.TTF.MaxPoints != 256 || info.TTF.MaxComponentDepth != 2 {
		t.Errorf("wrong TTF info: %+v", info.TTF)
	}

	_, err = Read(data[:20])
	if !font.IsInvalid(err) {
		t.Errorf("truncated table: got %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	_, err := Read([]byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x01})
	if !font.IsUnsupported(err) {
		t.Errorf("unknown version: got %v", err)
	}
	_, err = Read([]byte{0x00, 0x00, 0x50, 0x00, 0x00, 0x00})
	if !font.IsInvalid(err) {
		t.Errorf("zero glyphs: got %v", err)
	}
}

func TestSetNumGlyphs(t *testing.T) {
	orig := []byte{0x00, 0x00, 0x50, 0x00, 0x01, 0x02}
	patched, err := SetNumGlyphs(orig, 3)
	if err != nil {
		t.Fatal(err)
	}
	info, err := Read(patched)
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 3 {
		t.Errorf("expected 3 glyphs but got %d", info.NumGlyphs)
	}
	if orig[4] != 0x01 || orig[5] != 0x02 {
		t.Error("original table was modified")
	}

	_, err = SetNumGlyphs(orig, 0)
	if err == nil {
		t.Error("zero glyphs accepted")
	}
}
