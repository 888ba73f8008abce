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

// Package compile builds a binary font from a UFO source, with glyph
// outlines stripped and only the kerning information compiled into the
// font's GPOS table.  The result contains just enough structure for a
// shaper to apply the kerning: glyph names, advance widths, a character
// map, and the generated pair positioning lookups.
package compile

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/kernval/classify"
	"seehuhn.de/go/kernval/fea"
	"seehuhn.de/go/kernval/internal/log"
	"seehuhn.de/go/kernval/ufo"
)

// Result is a compiled font together with the information needed to
// validate it against its source.
type Result struct {
	Font *sfnt.Font

	// GlyphOrder lists the glyph names in glyph ID order.
	GlyphOrder []string

	// GID maps glyph names to glyph IDs.
	GID map[string]glyph.ID

	// Glyphs is the script/bidi classification the kerning was
	// compiled with.
	Glyphs *classify.Glyphs
}

// Font compiles a UFO source.
func Font(f *ufo.Font) (*Result, error) {
	order := f.GlyphOrder()
	gid := make(map[string]glyph.ID, len(order))
	for i, name := range order {
		gid[name] = glyph.ID(i)
	}

	upem := f.Info.UnitsPerEm
	if upem < 16 || upem > 16384 {
		return nil, fmt.Errorf("unitsPerEm %g out of range", upem)
	}

	// Outlines are cleared: only the advance widths and the kerning
	// adjustments matter for validation, and empty glyphs keep the
	// compiled font small.  The .notdef glyph keeps a box outline so
	// that the font still carries TrueType glyph data.
	outlines := &glyf.Outlines{
		Glyphs: make(glyf.Glyphs, len(order)),
		Widths: make([]funit.Int16, len(order)),
		Names:  order,
	}
	notdef := notdefGlyph(upem)
	outlines.Glyphs[0] = &notdef
	for i, name := range order {
		outlines.Widths[i] = funit.Int16(clampInt16(Round(f.Glyphs[name].Width)))
	}

	cmapTable := makeCmap(f, order, gid)

	features, err := fea.Resolve(f.Features, f.Path)
	if err != nil {
		return nil, err
	}
	stripped := fea.StripFeatures(features, positioningFeatures)
	if stripped != features {
		log.Debugf("%s: ignoring hand-written positioning features", f.Path)
	}
	langSystems := fea.LanguageSystems(stripped)

	cls := classify.New(f.Glyphs)

	gpos, err := makeKern(f, cls, gid, langSystems)
	if err != nil {
		return nil, err
	}

	q := 1 / upem
	info := &sfnt.Font{
		FamilyName: f.Info.FamilyName,
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  true,
		PermUse:    os2.PermInstall,

		UnitsPerEm: uint16(upem),
		FontMatrix: matrix.Matrix{q, 0, 0, q, 0, 0},

		Ascent:    funit.Int16(clampInt16(Round(f.Info.Ascender))),
		Descent:   funit.Int16(clampInt16(Round(f.Info.Descender))),
		CapHeight: funit.Int16(clampInt16(Round(f.Info.CapHeight))),
		XHeight:   funit.Int16(clampInt16(Round(f.Info.XHeight))),

		Outlines:  outlines,
		CMapTable: cmapTable,
		Gpos:      gpos,
	}

	return &Result{
		Font:       info,
		GlyphOrder: order,
		GID:        gid,
		Glyphs:     cls,
	}, nil
}

// positioningFeatures are the feature blocks removed from the source
// before compilation, so that nothing but the generated kern lookups can
// reach the GPOS table.
var positioningFeatures = map[string]bool{
	"kern": true,
	"mark": true,
	"mkmk": true,
	"curs": true,
	"dist": true,
}

// notdefGlyph builds the box outline for glyph 0.
func notdefGlyph(upem float64) glyf.Glyph {
	w := funit.Int16(clampInt16(Round(upem / 2)))
	h := funit.Int16(clampInt16(Round(upem * 0.7)))
	info := &glyf.SimpleUnpacked{
		Contours: []glyf.Contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 0, Y: h, OnCurve: true},
				{X: w, Y: h, OnCurve: true},
				{X: w, Y: 0, OnCurve: true},
			},
		},
	}
	return info.AsGlyph()
}

// makeCmap builds the character map.  A format 4 subtable covers the basic
// multilingual plane; if any glyph is mapped from outside the BMP, a
// format 12 subtable with the full mapping is added.
func makeCmap(f *ufo.Font, order []string, gid map[string]glyph.ID) cmap.Table {
	mapping := make(map[rune]glyph.ID)
	for _, name := range order {
		for _, r := range f.Glyphs[name].Unicodes {
			if _, ok := mapping[r]; ok {
				log.Debugf("%s: duplicate mapping for U+%04X ignored on %s",
					f.Path, r, name)
				continue
			}
			mapping[r] = gid[name]
		}
	}

	f4 := cmap.Format4{}
	needF12 := false
	for r, id := range mapping {
		if r > 0xFFFF {
			needF12 = true
			continue
		}
		f4[uint16(r)] = id
	}

	table := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: f4.Encode(0),
	}
	if needF12 {
		f12 := cmap.Format12{}
		for r, id := range mapping {
			f12[uint32(r)] = id
		}
		table[cmap.Key{PlatformID: 0, EncodingID: 4}] = f12.Encode(0)
	}
	return table
}

// Round rounds a font measurement to an integer, rounding ties away from
// negative infinity.  This matches the rounding used by font compilers.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampInt16(x int) int {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return x
}

func sortedKeys[T any](m map[string]T) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}
