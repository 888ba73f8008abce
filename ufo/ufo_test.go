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

package ufo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/kernval/internal/testufo"
	"seehuhn.de/go/kernval/ufo"
)

func TestOpen(t *testing.T) {
	dir := testufo.Latin().Write(t)

	f, err := ufo.Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	if f.Info.FamilyName != "KernTest" {
		t.Errorf("family name: got %q", f.Info.FamilyName)
	}
	if f.Info.UnitsPerEm != 1000 {
		t.Errorf("units per em: got %g", f.Info.UnitsPerEm)
	}
	if len(f.Glyphs) != 8 {
		t.Errorf("glyph count: got %d, want 8", len(f.Glyphs))
	}

	g := f.Glyphs["A"]
	if g == nil {
		t.Fatal("glyph A missing")
	}
	if g.Width != 600 {
		t.Errorf("A width: got %g", g.Width)
	}
	if d := cmp.Diff([]rune{'A'}, g.Unicodes); d != "" {
		t.Errorf("A unicodes: %s", d)
	}

	if d := cmp.Diff([]string{"A", "Aacute"}, f.Groups["public.kern1.A"]); d != "" {
		t.Errorf("groups: %s", d)
	}
	if v, ok := f.Kerning["A"]["V"]; !ok || v != -100 {
		t.Errorf("kerning A V: got %g, %v", v, ok)
	}
	if v := f.Kerning["V"]["o"]; v != -55.5 {
		t.Errorf("kerning V o: got %g", v)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ufo.Open(dir)
	if err == nil {
		t.Error("expected error for empty directory")
	}

	_, err = ufo.Open(dir + "/does-not-exist")
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestGlyphOrder(t *testing.T) {
	src := testufo.Latin()
	src.GlyphOrder = []string{"V", "T", "no-such-glyph"}
	dir := src.Write(t)

	f, err := ufo.Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{".notdef", "V", "T", "A", "Aacute", "W", "o", "space"}
	if d := cmp.Diff(want, f.GlyphOrder()); d != "" {
		t.Errorf("glyph order: %s", d)
	}
}

func TestLookupValue(t *testing.T) {
	dir := testufo.Latin().Write(t)
	f, err := ufo.Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	g2first, g2second := f.Groups.SideMaps()

	cases := []struct {
		first, second string
		want          float64
	}{
		{"A", "V", -100},     // exact pair beats the group pair
		{"Aacute", "V", -80}, // group/group
		{"Aacute", "W", -80}, // group/group
		{"A", "W", -80},      // no exact pair for W, group rule applies
		{"A", "T", -60},      // group1/glyph
		{"Aacute", "T", -60}, // group1/glyph
		{"T", "o", -70},      // plain glyph pair
		{"V", "o", -55.5},    // fractional value survives
		{"o", "o", 0},        // unkerned
	}
	for _, c := range cases {
		got := f.Kerning.LookupValue(c.first, c.second, g2first, g2second)
		if got != c.want {
			t.Errorf("LookupValue(%s, %s) = %g, want %g",
				c.first, c.second, got, c.want)
		}
	}
}

func TestSideMaps(t *testing.T) {
	groups := ufo.Groups{
		"public.kern1.A":   {"A", "Aacute"},
		"public.kern2.V":   {"V"},
		"some.other.group": {"A", "V"},
	}
	g2first, g2second := groups.SideMaps()
	if g2first["A"] != "public.kern1.A" || g2first["Aacute"] != "public.kern1.A" {
		t.Errorf("first side map: %v", g2first)
	}
	if g2second["V"] != "public.kern2.V" {
		t.Errorf("second side map: %v", g2second)
	}
	if _, ok := g2first["V"]; ok {
		t.Error("non-kerning group leaked into side map")
	}
}
