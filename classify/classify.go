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

// Package classify assigns scripts and bidirectional classes to the glyphs
// of a font source, based on the Unicode properties of the code points
// mapped to each glyph.
package classify

import (
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/kernval/otl"
	"seehuhn.de/go/kernval/ufo"
)

// Glyphs holds per-glyph classification results.  Glyphs which are not
// mapped from any code point do not appear in the maps.
type Glyphs struct {
	// Scripts maps glyph names to the ISO 15924 codes of the scripts the
	// glyph is used with.
	Scripts map[string]map[string]bool

	// Bidis maps glyph names to the bidi classes ("L", "R") of the code
	// points mapped to the glyph.
	Bidis map[string]map[string]bool

	// FontScripts is the set of scripts the font is determined to
	// support.
	FontScripts map[string]bool
}

// New classifies the glyphs of a UFO source.
func New(glyphs map[string]*ufo.Glyph) *Glyphs {
	res := &Glyphs{
		Scripts:     make(map[string]map[string]bool),
		Bidis:       make(map[string]map[string]bool),
		FontScripts: make(map[string]bool),
	}

	// A script is supported by the font if it is the script property of
	// any mapped code point.
	for _, g := range glyphs {
		for _, r := range g.Unicodes {
			res.FontScripts[otl.RuneScript(r)] = true
		}
	}

	for name, g := range glyphs {
		for _, r := range g.Unicodes {
			script := otl.RuneScript(r)
			if res.FontScripts[script] || otl.DefaultScripts[script] {
				set := res.Scripts[name]
				if set == nil {
					set = make(map[string]bool)
					res.Scripts[name] = set
				}
				set[script] = true
			}
			if bidi := otl.BidiType(r); bidi != "" {
				set := res.Bidis[name]
				if set == nil {
					set = make(map[string]bool)
					res.Bidis[name] = set
				}
				set[bidi] = true
			}
		}
	}

	return res
}

// ScriptsOf returns the sorted scripts of a glyph.
func (c *Glyphs) ScriptsOf(name string) []string {
	scripts := maps.Keys(c.Scripts[name])
	sort.Strings(scripts)
	return scripts
}

// HasMixedBidi reports whether shaping the two glyphs next to each other
// would mix left-to-right and right-to-left text.  Applications segment
// text by direction, so such pairs never reach a shaper in one run.
func (c *Glyphs) HasMixedBidi(first, second string) bool {
	return (c.Bidis[first]["L"] || c.Bidis[second]["L"]) &&
		(c.Bidis[first]["R"] || c.Bidis[second]["R"])
}

// Directions describes which writing directions a glyph participates in.
type Directions struct {
	LTR, RTL bool

	// DefaultOnly is set if the glyph has no explicit script.  Such
	// glyphs combine with glyphs of every direction.
	DefaultOnly bool
}

// DirectionsOf summarizes the writing directions of a glyph.
func (c *Glyphs) DirectionsOf(name string) Directions {
	var d Directions
	d.DefaultOnly = true
	for script := range c.Scripts[name] {
		if otl.DefaultScripts[script] {
			continue
		}
		d.DefaultOnly = false
		if otl.Direction(script) == "RTL" {
			d.RTL = true
		} else {
			d.LTR = true
		}
	}
	return d
}
