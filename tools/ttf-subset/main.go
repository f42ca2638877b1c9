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

// Ttf-subset writes a subset of a TrueType font, containing only the glyphs
// needed for a given text or list of glyph IDs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/ttfsubset"
	"seehuhn.de/go/ttfsubset/tools/internal/buildinfo"
	"seehuhn.de/go/ttfsubset/tools/internal/profile"
)

var (
	textArg    = flag.String("text", "", "include the glyphs for the characters in `text`")
	glyphsArg  = flag.String("glyphs", "", "include the glyph IDs in `list`, e.g. 0,3,5-9")
	outArg     = flag.String("o", "", "write the subset to `file` instead of stdout")
	kernArg    = flag.Bool("kern", true, "keep kerning information")
	hintingArg = flag.Bool("hinting", true, "keep the hinting tables")
	notdefArg  = flag.Bool("notdef", true, "always include glyph 0")
	optimize   = flag.Bool("optimize", false, "make the output as small as possible")
	normalize  = flag.Bool("normalize", false, "include glyphs for the NFC and NFD forms of the text")
	verbose    = flag.Bool("v", false, "print statistics to stderr")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ttf-subset \u2014 extract a subset of a TrueType font\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("ttf-subset"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  ttf-subset [options] <font.ttf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ttf-subset -text \"Hello World\" -o hello.ttf font.ttf\n")
		fmt.Fprintf(os.Stderr, "  ttf-subset -glyphs 0-99 -optimize font.ttf >small.ttf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) error {
	p := profile.Config{CPU: *cpuprofile, Mem: *memprofile}
	stop, err := p.Start()
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	if *outArg == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("ttf-subset: refusing to write binary data to a terminal")
	}

	gids, err := parseGlyphList(*glyphsArg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	opt := &ttfsubset.Options{
		IncludeNotdef:     *notdefArg,
		IncludeKerning:    *kernArg,
		PreserveHinting:   *hintingArg,
		OptimizeSize:      *optimize,
		IncludeNormalized: *normalize,
	}
	s, err := ttfsubset.New(data, opt)
	if err != nil {
		return err
	}
	s.AddGlyphs(gids...)
	if *textArg != "" {
		err = s.AddGlyphsForString(*textArg)
		if err != nil {
			return err
		}
	}

	out, err := s.CreateSubset()
	if err != nil {
		return err
	}

	if *outArg == "" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(*outArg, out, 0o644)
	}
	if err != nil {
		return err
	}

	if *verbose {
		report(os.Stderr, s)
	}
	return nil
}

func report(w io.Writer, s *ttfsubset.Subsetter) {
	stats := s.Statistics()
	if name, err := s.SubsetName(); err == nil {
		fmt.Fprintf(w, "name: %s\n", name)
	} else {
		fmt.Fprintf(w, "tag: %s\n", s.Tag())
	}
	fmt.Fprintf(w, "glyphs: %d of %d (%.1f%%)\n",
		stats.SubsetGlyphs, stats.TotalGlyphs, 100*stats.Ratio)
	fmt.Fprintf(w, "size: %d -> %d bytes\n", stats.OriginalSize, stats.SubsetSize)
	for _, r := range s.Unmapped() {
		fmt.Fprintf(w, "unmapped: U+%04X %s\n", r, runenames.Name(r))
	}
}
