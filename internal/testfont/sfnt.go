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

package testfont

import (
	"bytes"

	"golang.org/x/image/font/gofont/goregular"
)

// GoRegular returns a copy of the Go Regular TrueType font.
// The font has a "kern" table, composite glyphs and a version 2 "post"
// table, which makes it a good test case for subsetting.
func GoRegular() []byte {
	return bytes.Clone(goregular.TTF)
}
