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
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/cmap"
	"seehuhn.de/go/ttfsubset/sfnt/glyf"
	"seehuhn.de/go/ttfsubset/sfnt/header"
	"seehuhn.de/go/ttfsubset/subset"
)

// Subsetter creates subsets of a TrueType font.
type Subsetter struct {
	data    []byte
	toc     *header.Info
	opt     Options
	metrics *Metrics

	used     *subset.Set
	unmapped map[rune]struct{}
	cmap     cmap.Subtable

	glyphMap   *subset.Map
	subsetSize int
}

// New prepares the font in data for subsetting.  The font must contain
// the "head", "hhea" and "maxp" tables.  If opt is nil, DefaultOptions()
// is used.
//
// The Subsetter keeps a reference to data, so the caller must not modify
// data while the Subsetter is in use.
func New(data []byte, opt *Options) (*Subsetter, error) {
	if opt == nil {
		opt = DefaultOptions()
	}

	toc, err := header.Read(data)
	if err != nil {
		return nil, err
	}
	metrics, err := ReadMetrics(data, toc)
	if err != nil {
		return nil, err
	}

	s := &Subsetter{
		data:     data,
		toc:      toc,
		opt:      *opt,
		metrics:  metrics,
		used:     subset.NewSet(opt.IncludeNotdef),
		unmapped: make(map[rune]struct{}),
	}
	return s, nil
}

// Metrics returns the font-wide metrics of the original font.
func (s *Subsetter) Metrics() Metrics {
	return *s.metrics
}

// AddGlyph adds a glyph to the subset.
func (s *Subsetter) AddGlyph(gid glyph.ID) {
	s.used.Add(gid)
}

// AddGlyphs adds glyphs to the subset.
func (s *Subsetter) AddGlyphs(gids ...glyph.ID) {
	s.used.Add(gids...)
}

// AddGlyphsForString adds the glyphs for the characters in text to the
// subset, using the Unicode subtable of the font's character map.
// Characters which are not mapped by the font are skipped; they can be
// listed using the Unmapped method.
func (s *Subsetter) AddGlyphsForString(text string) error {
	sub, err := s.unicodeCmap()
	if err != nil {
		return err
	}

	for _, r := range text {
		gid := sub.Lookup(r)
		if gid == 0 {
			s.unmapped[r] = struct{}{}
			continue
		}
		s.used.Add(gid)
	}

	if s.opt.IncludeNormalized {
		s.used.Add(cmap.Lookup(sub, norm.NFC.String(text))...)
		s.used.Add(cmap.Lookup(sub, norm.NFD.String(text))...)
	}
	return nil
}

// Unmapped returns the characters which were passed to AddGlyphsForString
// but are not mapped by the font, in increasing order.
func (s *Subsetter) Unmapped() []rune {
	res := make([]rune, 0, len(s.unmapped))
	for r := range s.unmapped {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}

// Glyphs returns the glyphs selected for the subset so far, in increasing
// order.
func (s *Subsetter) Glyphs() []glyph.ID {
	return s.used.Freeze()
}

// Tag returns a six-letter tag which identifies the current glyph
// selection.  PDF files prefix the names of subsetted fonts with such a tag.
func (s *Subsetter) Tag() string {
	return subset.Tag(s.used.Freeze(), s.metrics.NumGlyphs)
}

// Map returns the glyph ID mapping used by the last successful call to
// CreateSubset, or nil if no subset has been created yet.
func (s *Subsetter) Map() *subset.Map {
	return s.glyphMap
}

// CreateSubset returns a font file which contains only the selected glyphs.
// Components of composite glyphs are added to the selection automatically.
//
// The font must contain the "cmap", "glyf", "loca", "hmtx" and "maxp"
// tables.  Either a complete font file is returned, or an error.
func (s *Subsetter) CreateSubset() ([]byte, error) {
	for _, name := range []string{"cmap", "glyf", "loca", "hmtx", "maxp"} {
		if s.toc.Has(name) {
			continue
		}
		if name == "glyf" && s.toc.Has("CFF ") {
			return nil, &font.NotSupportedError{
				SubSystem: "ttfsubset",
				Feature:   "CFF-based fonts",
			}
		}
		return nil, &header.ErrNoTable{Name: name}
	}

	glyfData, err := s.table("glyf")
	if err != nil {
		return nil, err
	}
	locaData, err := s.table("loca")
	if err != nil {
		return nil, err
	}
	glyphs, err := glyf.Decode(glyfData, locaData, s.metrics.LocaFormat, s.metrics.NumGlyphs)
	if err != nil {
		return nil, err
	}

	err = s.addComponents(glyphs)
	if err != nil {
		return nil, err
	}
	gids := s.used.Freeze()
	if len(gids) == 0 {
		return nil, errNoGlyphs
	}
	m := subset.NewMap(gids)

	tables := make(map[string][]byte)
	err = s.subsetGlyf(tables, glyphs, m)
	if err != nil {
		return nil, err
	}
	err = s.subsetMetrics(tables, m, "hhea", "hmtx")
	if err != nil {
		return nil, err
	}
	if s.toc.Has("vhea", "vmtx") {
		err = s.subsetMetrics(tables, m, "vhea", "vmtx")
		if err != nil {
			return nil, err
		}
	}
	err = s.subsetCmap(tables, m)
	if err != nil {
		return nil, err
	}
	err = s.subsetMaxp(tables, m)
	if err != nil {
		return nil, err
	}
	err = s.subsetPost(tables, m)
	if err != nil {
		return nil, err
	}
	if s.opt.IncludeKerning {
		err = s.subsetKern(tables, m)
		if err != nil {
			return nil, err
		}
	}
	err = s.copyTables(tables)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, s.toc.ScalerType, tables)
	if err != nil {
		return nil, err
	}

	s.glyphMap = m
	s.subsetSize = buf.Len()
	return buf.Bytes(), nil
}

// addComponents adds the components of all composite glyphs to the usage
// set, recursively.
func (s *Subsetter) addComponents(glyphs *glyf.Glyphs) error {
	todo := s.used.Freeze()
	for len(todo) > 0 {
		gid := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if int(gid) >= glyphs.NumGlyphs() {
			return fmt.Errorf("ttfsubset: glyph %d not in font (%d glyphs)",
				gid, glyphs.NumGlyphs())
		}
		comps, err := glyphs.Components(gid)
		if err != nil {
			return err
		}
		for _, c := range comps {
			if !s.used.Has(c) {
				s.used.Add(c)
				todo = append(todo, c)
			}
		}
	}
	return nil
}

func (s *Subsetter) unicodeCmap() (cmap.Subtable, error) {
	if s.cmap != nil {
		return s.cmap, nil
	}
	data, err := s.table("cmap")
	if err != nil {
		return nil, err
	}
	table, err := cmap.Decode(data)
	if err != nil {
		return nil, err
	}
	sub, err := table.Unicode()
	if err != nil {
		return nil, err
	}
	s.cmap = sub
	return sub, nil
}

func (s *Subsetter) table(name string) ([]byte, error) {
	return s.toc.ReadTableBytes(s.data, name)
}

var errNoGlyphs = errors.New("ttfsubset: no glyphs selected")
