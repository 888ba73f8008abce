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

package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/kernval/ufo"
)

func sample() map[string]*ufo.Glyph {
	return map[string]*ufo.Glyph{
		".notdef": {Name: ".notdef"},
		"A":       {Name: "A", Unicodes: []rune{'A'}},
		"space":   {Name: "space", Unicodes: []rune{' '}},
		"alef-hb": {Name: "alef-hb", Unicodes: []rune{0x05D0}},
		"A.alt":   {Name: "A.alt"},
		"uni0951": {Name: "uni0951", Unicodes: []rune{0x0951}},
	}
}

func TestNew(t *testing.T) {
	c := New(sample())

	if !c.FontScripts["Latn"] || !c.FontScripts["Hebr"] {
		t.Errorf("font scripts: %v", c.FontScripts)
	}

	if d := cmp.Diff([]string{"Latn"}, c.ScriptsOf("A")); d != "" {
		t.Errorf("A: %s", d)
	}
	if d := cmp.Diff([]string{"Zyyy"}, c.ScriptsOf("space")); d != "" {
		t.Errorf("space: %s", d)
	}
	if d := cmp.Diff([]string{"Hebr"}, c.ScriptsOf("alef-hb")); d != "" {
		t.Errorf("alef-hb: %s", d)
	}
	// U+0951 is an inherited combining mark
	if d := cmp.Diff([]string{"Zinh"}, c.ScriptsOf("uni0951")); d != "" {
		t.Errorf("uni0951: %s", d)
	}

	// unmapped glyphs have no classification
	if len(c.ScriptsOf("A.alt")) != 0 {
		t.Errorf("A.alt should be unclassified")
	}
	if len(c.ScriptsOf(".notdef")) != 0 {
		t.Errorf(".notdef should be unclassified")
	}
}

func TestHasMixedBidi(t *testing.T) {
	c := New(sample())

	if c.HasMixedBidi("A", "space") {
		t.Error("A+space must not count as mixed")
	}
	if c.HasMixedBidi("alef-hb", "space") {
		t.Error("alef-hb+space must not count as mixed")
	}
	if !c.HasMixedBidi("A", "alef-hb") {
		t.Error("A+alef-hb mixes L and R")
	}
}

func TestDirectionsOf(t *testing.T) {
	c := New(sample())

	d := c.DirectionsOf("A")
	if !d.LTR || d.RTL || d.DefaultOnly {
		t.Errorf("A: %+v", d)
	}
	d = c.DirectionsOf("alef-hb")
	if d.LTR || !d.RTL || d.DefaultOnly {
		t.Errorf("alef-hb: %+v", d)
	}
	d = c.DirectionsOf("space")
	if d.LTR || d.RTL || !d.DefaultOnly {
		t.Errorf("space: %+v", d)
	}
	d = c.DirectionsOf("A.alt")
	if !d.DefaultOnly {
		t.Errorf("A.alt: %+v", d)
	}
}
