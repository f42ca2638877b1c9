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

// Package ttfsubset reduces TrueType fonts to the glyphs which are actually
// used, for example by the text of a PDF document.
//
// A Subsetter is created from the bytes of a complete font file.  The glyphs
// to keep are then added, either by glyph ID or by resolving text through
// the font's character map.  Finally, CreateSubset returns a new, smaller
// font file containing only the selected glyphs:
//
//	s, err := ttfsubset.New(fontData, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = s.AddGlyphsForString("Hello, World!")
//	if err != nil {
//		log.Fatal(err)
//	}
//	subsetData, err := s.CreateSubset()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// In the subset, the glyphs are renumbered as 0, 1, ..., n-1, keeping the
// order of the original glyph IDs.  The character map, glyph outlines,
// glyph metrics and (optionally) the kerning information are rewritten to
// use the new glyph IDs.  Tables which cannot be rewritten, for example the
// OpenType layout tables, are omitted from the subset.
//
// Only fonts with TrueType outlines ("glyf" table) can be subsetted.
// A Subsetter must not be used concurrently from different goroutines,
// but separate Subsetters are independent of each other.
package ttfsubset
