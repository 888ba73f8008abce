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

// Package testufo writes small UFO sources to disk for use in tests.
// It plays the role for kernval which internal/squarefont plays for the
// PDF layer: a zoo of tiny, fully specified inputs.
package testufo

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"howett.net/plist"
)

// Glyph describes a glyph of a test UFO.
type Glyph struct {
	Name     string
	Width    float64
	Unicodes []rune
}

// Font describes a test UFO source.
type Font struct {
	FamilyName string
	UnitsPerEm float64
	Glyphs     []Glyph
	Groups     map[string][]string
	Kerning    map[string]map[string]float64
	Features   string
	GlyphOrder []string
}

// Write materializes the font as a UFO directory below t.TempDir() and
// returns its path.
func (f *Font) Write(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "Test.ufo")
	mustMkdir(t, dir)
	mustMkdir(t, filepath.Join(dir, "glyphs"))

	writePlist(t, filepath.Join(dir, "metainfo.plist"), map[string]interface{}{
		"creator":       "seehuhn.de/go/kernval",
		"formatVersion": 3,
	})

	upem := f.UnitsPerEm
	if upem == 0 {
		upem = 1000
	}
	family := f.FamilyName
	if family == "" {
		family = "Test"
	}
	writePlist(t, filepath.Join(dir, "fontinfo.plist"), map[string]interface{}{
		"familyName": family,
		"unitsPerEm": upem,
		"ascender":   upem * 3 / 4,
		"descender":  -(upem / 4),
	})

	writePlist(t, filepath.Join(dir, "layercontents.plist"), [][]string{
		{"public.default", "glyphs"},
	})

	contents := make(map[string]string)
	for i, g := range f.Glyphs {
		file := fmt.Sprintf("glyph%d.glif", i)
		contents[g.Name] = file
		writeGlif(t, filepath.Join(dir, "glyphs", file), g)
	}
	writePlist(t, filepath.Join(dir, "glyphs", "contents.plist"), contents)

	if f.Groups != nil {
		writePlist(t, filepath.Join(dir, "groups.plist"), f.Groups)
	}
	if f.Kerning != nil {
		writePlist(t, filepath.Join(dir, "kerning.plist"), f.Kerning)
	}
	if f.GlyphOrder != nil {
		writePlist(t, filepath.Join(dir, "lib.plist"), map[string]interface{}{
			"public.glyphOrder": f.GlyphOrder,
		})
	}
	if f.Features != "" {
		err := os.WriteFile(filepath.Join(dir, "features.fea"), []byte(f.Features), 0o666)
		if err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	err := os.MkdirAll(dir, 0o777)
	if err != nil {
		t.Fatal(err)
	}
}

func writePlist(t *testing.T, fname string, v interface{}) {
	t.Helper()
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fname, data, 0o666)
	if err != nil {
		t.Fatal(err)
	}
}

func writeGlif(t *testing.T, fname string, g Glyph) {
	t.Helper()
	buf := fmt.Sprintf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<glyph name=%q format=\"2\">\n", g.Name)
	buf += fmt.Sprintf("\t<advance width=%q/>\n", trimFloat(g.Width))
	for _, u := range g.Unicodes {
		buf += fmt.Sprintf("\t<unicode hex=\"%04X\"/>\n", u)
	}
	buf += "\t<outline/>\n</glyph>\n"
	err := os.WriteFile(fname, []byte(buf), 0o666)
	if err != nil {
		t.Fatal(err)
	}
}

func trimFloat(x float64) string {
	s := fmt.Sprintf("%f", x)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// Latin returns a small Latin-only UFO with both glyph and group kerning.
func Latin() *Font {
	return &Font{
		FamilyName: "KernTest",
		UnitsPerEm: 1000,
		Glyphs: []Glyph{
			{Name: ".notdef", Width: 500},
			{Name: "space", Width: 250, Unicodes: []rune{' '}},
			{Name: "A", Width: 600, Unicodes: []rune{'A'}},
			{Name: "Aacute", Width: 600, Unicodes: []rune{0x00C1}},
			{Name: "T", Width: 550, Unicodes: []rune{'T'}},
			{Name: "V", Width: 620, Unicodes: []rune{'V'}},
			{Name: "W", Width: 900, Unicodes: []rune{'W'}},
			{Name: "o", Width: 480, Unicodes: []rune{'o'}},
		},
		Groups: map[string][]string{
			"public.kern1.A": {"A", "Aacute"},
			"public.kern2.V": {"V", "W"},
		},
		Kerning: map[string]map[string]float64{
			"public.kern1.A": {
				"public.kern2.V": -80,
				"T":              -60,
			},
			"A":  {"V": -100},
			"T":  {"o": -70},
			"V":  {"o": -55.5},
		},
		GlyphOrder: []string{".notdef", "space", "A", "Aacute", "T", "V", "W", "o"},
	}
}

// Mixed returns a UFO containing Latin and Hebrew glyphs, kerned
// separately, with an extra language system declared for Latin.
func Mixed() *Font {
	f := Latin()
	f.Glyphs = append(f.Glyphs,
		Glyph{Name: "alef-hb", Width: 540, Unicodes: []rune{0x05D0}},
		Glyph{Name: "lamed-hb", Width: 510, Unicodes: []rune{0x05DC}},
	)
	f.Kerning["alef-hb"] = map[string]float64{"lamed-hb": -30}
	f.Features = "languagesystem DFLT dflt;\nlanguagesystem latn dflt;\nlanguagesystem latn TRK;\nlanguagesystem hebr dflt;\n"
	f.GlyphOrder = append(f.GlyphOrder, "alef-hb", "lamed-hb")
	return f
}
