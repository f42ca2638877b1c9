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

package ttfsubset

// Options controls which information is kept in a font subset.
type Options struct {
	// IncludeNotdef causes glyph 0 (".notdef") to always be included.
	// Most font consumers require this glyph to be present.
	IncludeNotdef bool

	// IncludeKerning keeps the kerning pairs from the "kern" table for
	// pairs of glyphs which are both retained.
	IncludeKerning bool

	// IncludeOpenTypeFeatures is accepted for compatibility.  The OpenType
	// layout tables (GSUB, GPOS, GDEF) are always omitted, since they
	// cannot be rewritten for the new glyph IDs.
	IncludeOpenTypeFeatures bool

	// PreserveHinting keeps the "cvt ", "fpgm" and "prep" tables, which are
	// referenced by the instructions inside the glyph descriptions.
	PreserveHinting bool

	// OptimizeSize makes the output as small as possible, at the cost of
	// more work during subsetting.  Glyph names and the "gasp" table are
	// dropped, the horizontal metrics are compressed and the character map
	// uses the smallest possible encoding.
	OptimizeSize bool

	// IncludeNormalized causes AddGlyphsForString to also add the glyphs
	// for the NFC and NFD normal forms of the text.
	IncludeNormalized bool
}

// DefaultOptions returns the options used when nil is passed to New.
func DefaultOptions() *Options {
	return &Options{
		IncludeNotdef:   true,
		IncludeKerning:  true,
		PreserveHinting: true,
	}
}
