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

package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/classdef"
	"seehuhn.de/go/sfnt/opentype/coverage"
	"seehuhn.de/go/sfnt/opentype/gtab"

	"seehuhn.de/go/kernval/internal/testufo"
	"seehuhn.de/go/kernval/ufo"
)

func compileTestFont(t *testing.T, desc *testufo.Font) *Result {
	t.Helper()
	dir := desc.Write(t)
	f, err := ufo.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Font(f)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestCompileLatin(t *testing.T) {
	res := compileTestFont(t, testufo.Latin())

	wantOrder := []string{".notdef", "space", "A", "Aacute", "T", "V", "W", "o"}
	if d := cmp.Diff(wantOrder, res.GlyphOrder); d != "" {
		t.Errorf("glyph order: %s", d)
	}
	if res.Font.UnitsPerEm != 1000 {
		t.Errorf("unitsPerEm: got %d, want 1000", res.Font.UnitsPerEm)
	}
	if res.GID["V"] != 5 {
		t.Errorf("GID[V]: got %d, want 5", res.GID["V"])
	}

	gpos := res.Font.Gpos
	if gpos == nil {
		t.Fatal("no GPOS table generated")
	}
	if len(gpos.LookupList) != 1 {
		t.Fatalf("got %d lookups, want 1", len(gpos.LookupList))
	}

	lookup := gpos.LookupList[0]
	if lookup.Meta.LookupType != 2 {
		t.Errorf("lookup type: got %d, want 2", lookup.Meta.LookupType)
	}
	if len(lookup.Subtables) != 2 {
		t.Fatalf("got %d subtables, want 2", len(lookup.Subtables))
	}

	pairs, ok := lookup.Subtables[0].(gtab.Gpos2_1)
	if !ok {
		t.Fatalf("subtable 0 has type %T", lookup.Subtables[0])
	}
	wantPairs := gtab.Gpos2_1{
		{Left: 2, Right: 5}: {First: &gtab.GposValueRecord{XAdvance: -100}},
		{Left: 2, Right: 4}: {First: &gtab.GposValueRecord{XAdvance: -60}},
		{Left: 3, Right: 4}: {First: &gtab.GposValueRecord{XAdvance: -60}},
		{Left: 4, Right: 7}: {First: &gtab.GposValueRecord{XAdvance: -70}},
		{Left: 5, Right: 7}: {First: &gtab.GposValueRecord{XAdvance: -55}},
	}
	if d := cmp.Diff(wantPairs, pairs); d != "" {
		t.Errorf("pair subtable: %s", d)
	}

	classes, ok := lookup.Subtables[1].(*gtab.Gpos2_2)
	if !ok {
		t.Fatalf("subtable 1 has type %T", lookup.Subtables[1])
	}
	wantCov := coverage.Set{2: true, 3: true}
	if d := cmp.Diff(wantCov, classes.Cov); d != "" {
		t.Errorf("coverage: %s", d)
	}
	wantClass1 := classdef.Table{2: 1, 3: 1}
	if d := cmp.Diff(wantClass1, classes.Class1); d != "" {
		t.Errorf("class1: %s", d)
	}
	wantClass2 := classdef.Table{5: 1, 6: 1}
	if d := cmp.Diff(wantClass2, classes.Class2); d != "" {
		t.Errorf("class2: %s", d)
	}
	got := classes.Adjust[1][1]
	if got == nil || got.First == nil || got.First.XAdvance != -80 {
		t.Errorf("class kerning: got %v, want XAdvance -80", got)
	}

	latn := language.MustParse("und-Latn")
	if len(gpos.ScriptList) != 1 || gpos.ScriptList[latn] == nil {
		t.Errorf("script list: got %v, want just %s", gpos.ScriptList, latn)
	}
	feat := gpos.ScriptList[latn]
	if feat.Required != noRequiredFeature || len(feat.Optional) != 1 {
		t.Fatalf("unexpected features for %s: %v", latn, feat)
	}
	if tag := gpos.FeatureList[feat.Optional[0]].Tag; tag != "kern" {
		t.Errorf("feature tag: got %q, want kern", tag)
	}
}

func TestCompileMixed(t *testing.T) {
	res := compileTestFont(t, testufo.Mixed())

	gpos := res.Font.Gpos
	if gpos == nil {
		t.Fatal("no GPOS table generated")
	}
	if len(gpos.LookupList) != 2 {
		t.Fatalf("got %d lookups, want 2", len(gpos.LookupList))
	}

	var wantScripts []language.Tag
	for _, s := range []string{"und-Latn", "tr-Latn", "und-Hebr"} {
		wantScripts = append(wantScripts, language.MustParse(s))
	}
	for _, tag := range wantScripts {
		if gpos.ScriptList[tag] == nil {
			t.Errorf("missing script list entry %s", tag)
		}
	}
	if len(gpos.ScriptList) != len(wantScripts) {
		t.Errorf("got %d script list entries, want %d",
			len(gpos.ScriptList), len(wantScripts))
	}

	hebr := gpos.ScriptList[language.MustParse("und-Hebr")]
	if hebr == nil {
		t.Fatal("no Hebrew language system")
	}
	featIdx := hebr.Optional[0]
	lookupIdx := gpos.FeatureList[featIdx].Lookups[0]
	lookup := gpos.LookupList[lookupIdx]

	pairs, ok := lookup.Subtables[0].(gtab.Gpos2_1)
	if !ok {
		t.Fatalf("subtable 0 has type %T", lookup.Subtables[0])
	}
	alef, lamed := res.GID["alef-hb"], res.GID["lamed-hb"]
	adj := pairs[glyph.Pair{Left: alef, Right: lamed}]
	if adj == nil || adj.First == nil {
		t.Fatal("missing Hebrew kerning pair")
	}
	if adj.First.XAdvance != -30 || adj.First.XPlacement != -30 {
		t.Errorf("Hebrew pair: got advance %d, placement %d, want -30, -30",
			adj.First.XAdvance, adj.First.XPlacement)
	}

	// the Latin feature must not include the Hebrew lookup
	latn := gpos.ScriptList[language.MustParse("und-Latn")]
	for _, idx := range gpos.FeatureList[latn.Optional[0]].Lookups {
		if idx == lookupIdx {
			t.Error("Latin feature includes the Hebrew lookup")
		}
	}
}

func TestNotdefOutline(t *testing.T) {
	res := compileTestFont(t, testufo.Latin())

	outlines, ok := res.Font.Outlines.(*glyf.Outlines)
	if !ok {
		t.Fatalf("outlines have type %T", res.Font.Outlines)
	}
	g := outlines.Glyphs[0]
	if g == nil {
		t.Fatal("glyph 0 has no outline")
	}
	sg, ok := g.Data.(glyf.SimpleGlyph)
	if !ok {
		t.Fatalf("glyph 0 has data type %T", g.Data)
	}
	if sg.NumContours < 1 {
		t.Errorf("glyph 0 has %d contours", sg.NumContours)
	}
	for i := 1; i < len(outlines.Glyphs); i++ {
		if outlines.Glyphs[i] != nil {
			t.Errorf("glyph %d has an outline", i)
		}
	}
}

func TestCommonKerningOnce(t *testing.T) {
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
	res := compileTestFont(t, desc)

	gpos := res.Font.Gpos
	if gpos == nil {
		t.Fatal("no GPOS table generated")
	}

	// Kerning between glyphs without an explicit script must appear in
	// exactly one lookup; the script features add their own lookup on
	// top of the shared one, so a second copy would double the
	// adjustment.
	pair := glyph.Pair{Left: res.GID["period"], Right: res.GID["comma"]}
	n := 0
	for _, lookup := range gpos.LookupList {
		for _, sub := range lookup.Subtables {
			if pairs, ok := sub.(gtab.Gpos2_1); ok {
				if pairs[pair] != nil {
					n++
				}
			}
		}
	}
	if n != 1 {
		t.Errorf("period/comma appears in %d subtables, want 1", n)
	}

	latn := gpos.ScriptList[language.MustParse("und-Latn")]
	if latn == nil {
		t.Fatal("no Latin language system")
	}
	if got := len(gpos.FeatureList[latn.Optional[0]].Lookups); got != 2 {
		t.Errorf("Latin feature has %d lookups, want 2", got)
	}
}

func TestHandWrittenKernIgnored(t *testing.T) {
	desc := testufo.Latin()
	desc.Features = `languagesystem DFLT dflt;
languagesystem latn dflt;

feature kern {
    pos T o -999;
} kern;
`
	res := compileTestFont(t, desc)

	gpos := res.Font.Gpos
	if gpos == nil {
		t.Fatal("no GPOS table generated")
	}
	if len(gpos.LookupList) != 1 {
		t.Fatalf("got %d lookups, want 1", len(gpos.LookupList))
	}
	pairs := gpos.LookupList[0].Subtables[0].(gtab.Gpos2_1)
	adj := pairs[glyph.Pair{Left: res.GID["T"], Right: res.GID["o"]}]
	if adj == nil || adj.First.XAdvance != -70 {
		t.Errorf("T/o pair: got %v, want XAdvance -70 from kerning.plist", adj)
	}
}

func TestNoKerning(t *testing.T) {
	desc := testufo.Latin()
	desc.Kerning = nil
	res := compileTestFont(t, desc)
	if res.Font.Gpos != nil {
		t.Errorf("got a GPOS table for a font without kerning")
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{-0.4, 0},
		{-0.5, 0},
		{-0.6, -1},
		{-55.5, -55},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%g): got %d, want %d", c.in, got, c.want)
		}
	}
}
