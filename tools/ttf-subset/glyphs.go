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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt/glyph"
)

// parseGlyphList parses a comma-separated list of glyph IDs and
// glyph ID ranges, like "0,3,5-9".
func parseGlyphList(s string) ([]glyph.ID, error) {
	var res []glyph.ID
	if strings.TrimSpace(s) == "" {
		return res, nil
	}

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		from, to, isRange := strings.Cut(field, "-")
		first, err := parseGID(from)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			last, err = parseGID(to)
			if err != nil {
				return nil, err
			}
			if last < first {
				return nil, fmt.Errorf("invalid glyph range %q", field)
			}
		}
		for gid := int(first); gid <= int(last); gid++ {
			res = append(res, glyph.ID(gid))
		}
	}
	return res, nil
}

func parseGID(s string) (glyph.ID, error) {
	x, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid glyph ID %q", s)
	}
	return glyph.ID(x), nil
}
