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

import (
	"errors"

	"seehuhn.de/go/ttfsubset/sfnt/name"
)

// PostScriptName returns the PostScript name of the font, as stored in
// the "name" table.  If the font has no PostScript name, the empty string
// is returned.
func (s *Subsetter) PostScriptName() (string, error) {
	data, err := s.table("name")
	if err != nil {
		return "", err
	}
	info, err := name.Decode(data)
	if err != nil {
		return "", err
	}
	return info.Get(name.PostScriptName), nil
}

// SubsetName returns the name under which the subset font should be
// embedded in a PDF file.  This is the PostScript name of the font,
// prefixed with the tag for the current glyph selection and a plus sign.
func (s *Subsetter) SubsetName() (string, error) {
	psName, err := s.PostScriptName()
	if err != nil {
		return "", err
	}
	if psName == "" {
		return "", errNoPostScriptName
	}
	return s.Tag() + "+" + psName, nil
}

var errNoPostScriptName = errors.New("ttfsubset: font has no PostScript name")
