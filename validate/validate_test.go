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

package validate

import (
	"testing"

	"seehuhn.de/go/kernval/internal/testufo"
	"seehuhn.de/go/kernval/ufo"
)

func openTestFont(t *testing.T, desc *testufo.Font) *ufo.Font {
	t.Helper()
	dir := desc.Write(t)
	f, err := ufo.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLatinRoundTrips(t *testing.T) {
	f := openTestFont(t, testufo.Latin())
	report, err := Font(f, &Options{Round: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range report.Mismatches {
		t.Errorf("unexpected mismatch: %s", m)
	}
	// 4 first-side glyphs against 4 second-side glyphs, one language
	// system
	if report.NumPairs != 16 {
		t.Errorf("got %d shaped pairs, want 16", report.NumPairs)
	}
}

func TestMixedRoundTrips(t *testing.T) {
	f := openTestFont(t, testufo.Mixed())
	report, err := Font(f, &Options{Round: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range report.Mismatches {
		t.Errorf("unexpected mismatch: %s", m)
	}
	// the Latin pairs are shaped under und-Latn and tr-Latn, the Hebrew
	// pair under und-Hebr; pairs mixing directions are skipped
	if report.NumPairs != 33 {
		t.Errorf("got %d shaped pairs, want 33", report.NumPairs)
	}
}

func TestFractionalValues(t *testing.T) {
	f := openTestFont(t, testufo.Latin())

	// without rounding, the fractional V/o value cannot survive
	report, err := Font(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Mismatches) != 1 {
		t.Fatalf("got %d mismatches, want 1", len(report.Mismatches))
	}
	m := report.Mismatches[0]
	if m.First != "V" || m.Second != "o" {
		t.Errorf("mismatch on %s/%s, want V/o", m.First, m.Second)
	}
	if m.Expected != -55.5 || m.Got != -55 {
		t.Errorf("got %g vs %g, want -55.5 vs -55", m.Expected, m.Got)
	}
	// the re-read script list key carries the OpenType script tag as an
	// extension, so only the script part is stable
	if systemScript(m.System) != "Latn" {
		t.Errorf("mismatch under %s, want a Latin system", m.System)
	}
	if m.Direction != "LTR" {
		t.Errorf("mismatch direction %q, want LTR", m.Direction)
	}
}

func TestSkipScripts(t *testing.T) {
	f := openTestFont(t, testufo.Mixed())
	report, err := Font(f, &Options{
		Round:       true,
		SkipScripts: map[string]bool{"Hebr": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	// only the Latin pairs remain, shaped under two language systems
	if report.NumPairs != 32 {
		t.Errorf("got %d shaped pairs, want 32", report.NumPairs)
	}
}

func TestCommonPairsShapeOnce(t *testing.T) {
	// Punctuation kerning lives in the shared direction-neutral lookup.
	// The per-script features include that lookup alongside their own,
	// and must not apply the adjustment twice.
	desc := &testufo.Font{
		UnitsPerEm: 1000,
		Glyphs: []testufo.Glyph{
			{Name: ".notdef", Width: 500},
			{Name: "A", Width: 600, Unicodes: []rune{'A'}},
			{Name: "period", Width: 260, Unicodes: []rune{'.'}},
			{Name: "comma", Width: 260, Unicodes: []rune{','}},
		},
		Kerning: map[string]map[string]float64{
			"period": {"comma": -40},
			"A":      {"period": -25},
		},
	}
	f := openTestFont(t, desc)

	report, err := Font(f, &Options{Round: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range report.Mismatches {
		t.Errorf("unexpected mismatch: %s", m)
	}
	// two punctuation pairs under the default system, all four under
	// the Latin system
	if report.NumPairs != 6 {
		t.Errorf("got %d shaped pairs, want 6", report.NumPairs)
	}
}

func TestUnmappedGlyphSkipped(t *testing.T) {
	// A glyph without a code point cannot occur in shaped text, so
	// kerning entries naming it are not validated.
	desc := testufo.Latin()
	desc.Glyphs = append(desc.Glyphs,
		testufo.Glyph{Name: "ornament", Width: 700})
	desc.Kerning["ornament"] = map[string]float64{"o": -50}
	f := openTestFont(t, desc)

	report, err := Font(f, &Options{Round: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range report.Mismatches {
		t.Errorf("unexpected mismatch: %s", m)
	}
	if report.NumPairs != 16 {
		t.Errorf("got %d shaped pairs, want 16", report.NumPairs)
	}
}

func TestStepwise(t *testing.T) {
	desc := testufo.Latin()
	desc.Kerning["A"]["V"] = -100.5
	f := openTestFont(t, desc)

	report, err := Font(f, &Options{Stepwise: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Mismatches) != 1 {
		t.Errorf("got %d mismatches, want 1", len(report.Mismatches))
	}
}

func TestProgress(t *testing.T) {
	f := openTestFont(t, testufo.Latin())

	var calls, lastDone, lastTotal int
	opt := &Options{
		Round: true,
		Progress: func(done, total int) {
			calls++
			lastDone, lastTotal = done, total
		},
	}
	report, err := Font(f, opt)
	if err != nil {
		t.Fatal(err)
	}
	if calls != report.NumPairs {
		t.Errorf("got %d progress calls, want %d", calls, report.NumPairs)
	}
	if lastDone != lastTotal {
		t.Errorf("final progress %d/%d, want done == total", lastDone, lastTotal)
	}
}

func TestNoKerning(t *testing.T) {
	desc := testufo.Latin()
	desc.Kerning = nil
	f := openTestFont(t, desc)

	report, err := Font(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.NumPairs != 0 || len(report.Mismatches) != 0 {
		t.Errorf("unexpected report %+v for a font without kerning", report)
	}
}
