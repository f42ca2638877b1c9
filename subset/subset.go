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

// Package subset keeps track of the glyphs which are retained in a font
// subset and assigns the new glyph IDs.
package subset

import (
	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/glyph"
)

// Set is a set of glyph IDs.
// A Set must not be used concurrently by more than one goroutine.
type Set struct {
	glyphs map[glyph.ID]struct{}
}

// NewSet returns a new set.  If includeNotdef is true, the set
// initially contains glyph 0.
func NewSet(includeNotdef bool) *Set {
	s := &Set{glyphs: make(map[glyph.ID]struct{})}
	if includeNotdef {
		s.glyphs[0] = struct{}{}
	}
	return s
}

// Add adds glyphs to the set.
func (s *Set) Add(gids ...glyph.ID) {
	for _, gid := range gids {
		s.glyphs[gid] = struct{}{}
	}
}

// Has reports whether gid is in the set.
func (s *Set) Has(gid glyph.ID) bool {
	_, ok := s.glyphs[gid]
	return ok
}

// Len returns the number of glyphs in the set.
func (s *Set) Len() int {
	return len(s.glyphs)
}

// Freeze returns the glyphs in the set, in increasing order.
// Later changes to the set do not affect the returned slice.
func (s *Set) Freeze() []glyph.ID {
	res := make([]glyph.ID, 0, len(s.glyphs))
	for gid := range s.glyphs {
		res = append(res, gid)
	}
	slices.Sort(res)
	return res
}

// Map translates glyph IDs of the original font into glyph IDs of the
// subset.  The glyphs keep their relative order, and the new IDs are
// 0, 1, ..., n-1.
type Map struct {
	old []glyph.ID

	// newPlusOne[old] is the new glyph ID plus one, or 0 if the glyph is
	// not in the subset.
	newPlusOne []uint32
}

// NewMap returns the map for the given glyphs.  The glyph IDs must be
// in increasing order, as returned by Set.Freeze.
func NewMap(glyphs []glyph.ID) *Map {
	m := &Map{
		old: slices.Clone(glyphs),
	}
	if len(glyphs) > 0 {
		m.newPlusOne = make([]uint32, int(glyphs[len(glyphs)-1])+1)
	}
	for i, gid := range glyphs {
		if i > 0 && gid <= glyphs[i-1] {
			panic("subset: glyph IDs not strictly increasing")
		}
		m.newPlusOne[gid] = uint32(i) + 1
	}
	return m
}

// NewGID returns the glyph ID in the subset which corresponds to the
// glyph old in the original font.  The second return value is false if the
// glyph is not part of the subset.
func (m *Map) NewGID(old glyph.ID) (glyph.ID, bool) {
	if int(old) >= len(m.newPlusOne) || m.newPlusOne[old] == 0 {
		return 0, false
	}
	return glyph.ID(m.newPlusOne[old] - 1), true
}

// OldGIDs returns the original glyph IDs, indexed by the new glyph IDs.
// The returned slice must not be modified.
func (m *Map) OldGIDs() []glyph.ID {
	return m.old
}

// Len returns the number of glyphs in the subset.
func (m *Map) Len() int {
	return len(m.old)
}
