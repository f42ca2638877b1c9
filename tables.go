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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/ttfsubset/font"
	"seehuhn.de/go/ttfsubset/sfnt/cmap"
	"seehuhn.de/go/ttfsubset/sfnt/glyf"
	"seehuhn.de/go/ttfsubset/sfnt/head"
	"seehuhn.de/go/ttfsubset/sfnt/hmtx"
	"seehuhn.de/go/ttfsubset/sfnt/kern"
	"seehuhn.de/go/ttfsubset/sfnt/maxp"
	"seehuhn.de/go/ttfsubset/sfnt/post"
	"seehuhn.de/go/ttfsubset/subset"
)

// hintingTables are referenced by the instructions inside glyph
// descriptions.
var hintingTables = []string{"cvt ", "fpgm", "prep"}

// subsetGlyf writes the "glyf", "loca" and "head" tables.
func (s *Subsetter) subsetGlyf(tables map[string][]byte, glyphs *glyf.Glyphs, m *subset.Map) error {
	locaFormat := s.metrics.LocaFormat
	align := 1
	if locaFormat == 0 || s.opt.OptimizeSize {
		align = 2
	}
	glyfData, offs, err := glyphs.Subset(m.OldGIDs(), m.NewGID, align)
	if err != nil {
		return err
	}

	if s.opt.OptimizeSize && glyf.FitsShort(offs) {
		locaFormat = 0
	} else if !glyf.FitsShort(offs) {
		locaFormat = 1
	}
	locaData, err := glyf.EncodeLoca(offs, locaFormat)
	if err != nil {
		return err
	}

	headData, err := s.table("head")
	if err != nil {
		return err
	}
	headData, err = head.WithLocaFormat(headData, locaFormat)
	if err != nil {
		return err
	}

	tables["glyf"] = glyfData
	tables["loca"] = locaData
	tables["head"] = headData
	return nil
}

// subsetMetrics writes the "hhea" and "hmtx" tables, or the "vhea" and
// "vmtx" tables.
func (s *Subsetter) subsetMetrics(tables map[string][]byte, m *subset.Map, headerName, tableName string) error {
	headerData, err := s.table(headerName)
	if err != nil {
		return err
	}
	h, err := hmtx.DecodeHeader(headerName, headerData)
	if err != nil {
		return err
	}
	mtxData, err := s.table(tableName)
	if err != nil {
		return err
	}
	mm, err := hmtx.Decode(tableName, mtxData, h.NumLongMetrics, s.metrics.NumGlyphs)
	if err != nil {
		return err
	}

	mtxData, numLong := mm.Subset(m.OldGIDs()).Encode(s.opt.OptimizeSize)
	headerData, err = hmtx.SetNumLongMetrics(headerData, numLong)
	if err != nil {
		return err
	}

	tables[headerName] = headerData
	tables[tableName] = mtxData
	return nil
}

// subsetCmap writes a new "cmap" table, containing all mappings of the
// original Unicode subtable to retained glyphs.
func (s *Subsetter) subsetCmap(tables map[string][]byte, m *subset.Map) error {
	sub, err := s.unicodeCmap()
	if err != nil {
		return err
	}

	mappings := make(map[rune]glyph.ID)
	sub.ForEach(func(r rune, gid glyph.ID) {
		newGID, ok := m.NewGID(gid)
		if ok && newGID != 0 {
			mappings[r] = newGID
		}
	})
	tables["cmap"] = cmap.Build(mappings, s.opt.OptimizeSize)
	return nil
}

func (s *Subsetter) subsetMaxp(tables map[string][]byte, m *subset.Map) error {
	data, err := s.table("maxp")
	if err != nil {
		return err
	}
	data, err = maxp.SetNumGlyphs(data, m.Len())
	if err != nil {
		return err
	}
	tables["maxp"] = data
	return nil
}

func (s *Subsetter) subsetPost(tables map[string][]byte, m *subset.Map) error {
	if !s.toc.Has("post") {
		return nil
	}
	data, err := s.table("post")
	if err != nil {
		return err
	}
	if s.opt.OptimizeSize {
		data, err = post.MakeVersion3(data)
	} else {
		data, err = post.Subset(data, m.OldGIDs())
	}
	if err != nil {
		return err
	}
	tables["post"] = data
	return nil
}

// subsetKern writes the kerning pairs between retained glyphs.  Kerning
// tables in unsupported formats are omitted.
func (s *Subsetter) subsetKern(tables map[string][]byte, m *subset.Map) error {
	if !s.toc.Has("kern") {
		return nil
	}
	data, err := s.table("kern")
	if err != nil {
		return err
	}
	info, err := kern.Decode(data)
	if font.IsUnsupported(err) {
		return nil
	} else if err != nil {
		return err
	}

	info = info.Subset(m.NewGID)
	if len(info) > 0 {
		tables["kern"] = info.Encode()
	}
	return nil
}

// copyTables copies the tables which do not depend on glyph IDs.
func (s *Subsetter) copyTables(tables map[string][]byte) error {
	names := []string{"name", "OS/2"}
	if !s.opt.OptimizeSize {
		names = append(names, "gasp")
	}
	if s.opt.PreserveHinting {
		names = append(names, hintingTables...)
	}

	for _, name := range names {
		if !s.toc.Has(name) {
			continue
		}
		data, err := s.table(name)
		if err != nil {
			return err
		}
		tables[name] = data
	}
	return nil
}
