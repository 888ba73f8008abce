// seehuhn.de/go/kernval - validate kerning in compiled UFO font sources
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

// Package validate checks that the kerning of a UFO source survives
// compilation into a binary font.  The source is compiled, written to a
// byte stream and read back, and every kerning pair is shaped against the
// pair positioning lookups of the round-tripped font.  The shaped
// adjustment must equal the value the UFO kerning rules give for the pair.
package validate

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/gtab"

	"seehuhn.de/go/kernval/classify"
	"seehuhn.de/go/kernval/compile"
	"seehuhn.de/go/kernval/internal/log"
	"seehuhn.de/go/kernval/otl"
	"seehuhn.de/go/kernval/ufo"
)

// Options controls a validation run.
type Options struct {
	// Round rounds fractional kerning values from the source before
	// comparing, the way a font compiler rounds them.  Without this,
	// fractional values are reported as mismatches.
	Round bool

	// Stepwise stops the run at the first mismatch.
	Stepwise bool

	// SkipScripts lists ISO 15924 codes of scripts to exclude from
	// validation.
	SkipScripts map[string]bool

	// Progress, if non-nil, is called after each shaped pair.
	Progress func(done, total int)
}

// Mismatch describes one kerning pair whose shaped adjustment differs
// from the value in the source.
type Mismatch struct {
	// System is the language system the pair was shaped under.
	System language.Tag

	// Direction is the writing direction of the system's script.
	Direction string

	First, Second string

	Expected float64
	Got      float64
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("%s/%s (%s, %s): expected %g, got %g",
		m.First, m.Second, m.System, m.Direction, m.Expected, m.Got)
}

// Report summarizes a validation run.
type Report struct {
	// NumPairs counts the shaped glyph pairs, over all language systems.
	NumPairs int

	Mismatches []*Mismatch
}

// Font compiles a UFO source and validates its kerning.  The returned
// error reports problems with the source or the compiled font; kerning
// mismatches are returned in the report instead.
func Font(f *ufo.Font, opt *Options) (*Report, error) {
	res, err := compile.Font(f)
	if err != nil {
		return nil, err
	}
	return Compiled(f, res, opt)
}

// Compiled validates a UFO source against an already compiled font.
func Compiled(f *ufo.Font, res *compile.Result, opt *Options) (*Report, error) {
	if opt == nil {
		opt = &Options{}
	}

	font, err := roundTrip(res)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if font.Gpos == nil {
		if len(f.Kerning) > 0 {
			log.Warnf("%s: compiled font has no GPOS table", f.Path)
		}
		return report, nil
	}

	glyphToFirst, glyphToSecond := f.Groups.SideMaps()
	pairs := expandPairs(f, res.GID, res.Glyphs)
	work := buildWork(font.Gpos, res.Glyphs, pairs, opt.SkipScripts)

	upem := funit.Int16(font.UnitsPerEm)
	done := 0
	total := 0
	for _, w := range work {
		total += len(w.pairs)
	}

	for _, w := range work {
		lookups := font.Gpos.FindLookups(w.system, kernFeature)
		for _, pair := range w.pairs {
			expected := f.Kerning.LookupValue(pair.First, pair.Second,
				glyphToFirst, glyphToSecond)
			if opt.Round {
				expected = float64(compile.Round(expected))
			}
			got := shapeKern(font, lookups,
				res.GID[pair.First], res.GID[pair.Second], upem)

			report.NumPairs++
			done++
			if opt.Progress != nil {
				opt.Progress(done, total)
			}

			if got != expected {
				report.Mismatches = append(report.Mismatches, &Mismatch{
					System:    w.system,
					Direction: otl.Direction(systemScript(w.system)),
					First:     pair.First,
					Second:    pair.Second,
					Expected:  expected,
					Got:       got,
				})
				if opt.Stepwise {
					return report, nil
				}
			}
		}
	}

	return report, nil
}

var kernFeature = map[string]bool{"kern": true}

// roundTrip serializes the compiled font and reads it back, so that the
// validation sees exactly what a font consumer would see.
func roundTrip(res *compile.Result) (*sfnt.Font, error) {
	buf := &bytes.Buffer{}
	_, err := res.Font.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("writing font: %w", err)
	}
	font, err := sfnt.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("re-reading font: %w", err)
	}

	// Shaping results are meaningless if the glyph IDs moved.
	outlines, ok := font.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, fmt.Errorf("re-read font has no TrueType outlines")
	}
	if len(outlines.Names) != len(res.GlyphOrder) {
		return nil, fmt.Errorf("glyph count changed from %d to %d",
			len(res.GlyphOrder), len(outlines.Names))
	}
	for i, name := range res.GlyphOrder {
		if outlines.Names[i] != name {
			return nil, fmt.Errorf("glyph %d changed from %q to %q",
				i, name, outlines.Names[i])
		}
	}
	return font, nil
}

// expandPairs builds the candidate glyph pairs: every glyph used on the
// first side of any kerning entry against every glyph used on the second
// side.  The full product also covers combinations the source leaves
// unkerned, where a shaped adjustment other than zero means the compiled
// classes are too broad.  Glyphs not mapped from any code point cannot
// occur in shaped text and are left out.
func expandPairs(f *ufo.Font, gid map[string]glyph.ID, cls *classify.Glyphs) []ufo.Pair {
	known := func(name string) []string {
		if ufo.IsKern1Group(name) || ufo.IsKern2Group(name) {
			var res []string
			for _, m := range f.Groups[name] {
				if _, ok := gid[m]; ok {
					res = append(res, m)
				}
			}
			return res
		}
		if _, ok := gid[name]; !ok {
			return nil
		}
		return []string{name}
	}

	firsts := make(map[string]bool)
	seconds := make(map[string]bool)
	for _, entry := range f.Kerning.Pairs() {
		for _, g := range known(entry.First) {
			firsts[g] = true
		}
		for _, g := range known(entry.Second) {
			seconds[g] = true
		}
	}

	shapeable := func(set map[string]bool) []string {
		var res []string
		for g := range set {
			if len(cls.Scripts[g]) == 0 {
				log.Debugf("not shaping %s: no code point mapped", g)
				continue
			}
			res = append(res, g)
		}
		sort.Strings(res)
		return res
	}
	firstList := shapeable(firsts)
	secondList := shapeable(seconds)

	pairs := make([]ufo.Pair, 0, len(firstList)*len(secondList))
	for _, first := range firstList {
		for _, second := range secondList {
			pairs = append(pairs, ufo.Pair{First: first, Second: second})
		}
	}
	return pairs
}

// workItem is the set of glyph pairs to shape under one language system of
// the compiled font.
type workItem struct {
	system language.Tag
	pairs  []ufo.Pair
}

// buildWork distributes the glyph pairs over the language systems found in
// the compiled font.  A pair is shaped under a system if both glyphs can
// occur in text of the system's script; pairs mixing left-to-right and
// right-to-left glyphs are never shaped, because applications split such
// text before it reaches a shaper.
func buildWork(gpos *gtab.Info, cls *classify.Glyphs, pairs []ufo.Pair, skip map[string]bool) []*workItem {
	systems := make([]language.Tag, 0, len(gpos.ScriptList))
	for tag := range gpos.ScriptList {
		if skip[systemScript(tag)] {
			log.Debugf("skipping language system %s", tag)
			continue
		}
		systems = append(systems, tag)
	}
	sort.Slice(systems, func(i, j int) bool {
		return systems[i].String() < systems[j].String()
	})

	var work []*workItem
	for _, system := range systems {
		script := systemScript(system)
		w := &workItem{system: system}
		for _, pair := range pairs {
			if cls.HasMixedBidi(pair.First, pair.Second) {
				log.Debugf("skipping %s/%s: mixed direction",
					pair.First, pair.Second)
				continue
			}
			if !glyphInScript(cls, pair.First, script) ||
				!glyphInScript(cls, pair.Second, script) {
				continue
			}
			w.pairs = append(w.pairs, pair)
		}
		if len(w.pairs) > 0 {
			work = append(work, w)
		}
	}
	return work
}

// systemScript extracts the ISO 15924 script code from a script list key,
// or "" for the default script.
func systemScript(system language.Tag) string {
	if system == language.Und {
		return ""
	}
	script, conf := system.Script()
	if conf == language.No {
		return ""
	}
	return script.String()
}

// glyphInScript reports whether a glyph can occur in text of the given
// script.  Glyphs without an explicit script occur everywhere; under the
// default script only such glyphs are shaped.
func glyphInScript(cls *classify.Glyphs, name, script string) bool {
	d := cls.DirectionsOf(name)
	if d.DefaultOnly {
		return true
	}
	if script == "" {
		return false
	}
	return cls.Scripts[name][script]
}

// shapeKern applies the kerning lookups to a two-glyph sequence and
// returns the resulting adjustment in font units.  Each glyph starts with
// an advance of one em, so the adjustment is what the lookups added.
func shapeKern(font *sfnt.Font, lookups []gtab.LookupIndex, a, b glyph.ID, upem funit.Int16) float64 {
	seq := []glyph.Info{
		{GID: a, Advance: upem},
		{GID: b, Advance: upem},
	}
	ctx := gtab.NewContext(font.Gpos.LookupList, font.Gdef, lookups)
	seq = ctx.Apply(seq)
	var total float64
	for _, g := range seq {
		total += float64(g.Advance)
	}
	return total - 2*float64(upem)
}
