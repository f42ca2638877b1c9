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

// Statistics describes the size of a font subset.
type Statistics struct {
	// OriginalSize is the size of the original font file in bytes.
	OriginalSize int

	// SubsetGlyphs is the number of glyphs selected for the subset.
	SubsetGlyphs int

	// TotalGlyphs is the number of glyphs in the original font.
	TotalGlyphs int

	// Ratio is SubsetGlyphs/TotalGlyphs, or 0 if the font has no glyphs.
	Ratio float64

	// SubsetSize is the size of the last subset created by CreateSubset,
	// in bytes.  The value is 0 before CreateSubset has been called.
	SubsetSize int
}

// Statistics returns information about the glyphs selected so far and
// about the last subset created.
func (s *Subsetter) Statistics() Statistics {
	stats := Statistics{
		OriginalSize: len(s.data),
		SubsetGlyphs: s.used.Len(),
		TotalGlyphs:  s.metrics.NumGlyphs,
		SubsetSize:   s.subsetSize,
	}
	stats.Ratio = ratio(stats.SubsetGlyphs, stats.TotalGlyphs)
	return stats
}

func ratio(subset, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(subset) / float64(total)
}
