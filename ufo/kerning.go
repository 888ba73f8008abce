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

package ufo

// Groups maps group names to their member glyphs.  Kerning groups use the
// "public.kern1." and "public.kern2." name prefixes.
type Groups map[string][]string

// Pair is a kerning pair.  Either side may name a glyph or a kerning group.
type Pair struct {
	First, Second string
}

// Kerning holds the kerning values of a UFO source.
type Kerning map[string]map[string]float64

// Pairs returns all kerning pairs, in unspecified order.
func (k Kerning) Pairs() []Pair {
	var pairs []Pair
	for first, seconds := range k {
		for second := range seconds {
			pairs = append(pairs, Pair{first, second})
		}
	}
	return pairs
}

func (k Kerning) get(first, second string) (float64, bool) {
	seconds, ok := k[first]
	if !ok {
		return 0, false
	}
	v, ok := seconds[second]
	return v, ok
}

// SideMaps returns the mapping from glyph names to the first-side and
// second-side kerning group containing them.  A glyph can be member of at
// most one group per side; when groups overlap the lexicographically first
// group wins, so that results are reproducible.
func (g Groups) SideMaps() (glyphToFirst, glyphToSecond map[string]string) {
	glyphToFirst = make(map[string]string)
	glyphToSecond = make(map[string]string)
	for group, members := range g {
		var m map[string]string
		switch {
		case IsKern1Group(group):
			m = glyphToFirst
		case IsKern2Group(group):
			m = glyphToSecond
		default:
			continue
		}
		for _, name := range members {
			if prev, ok := m[name]; ok && prev < group {
				continue
			}
			m[name] = group
		}
	}
	return glyphToFirst, glyphToSecond
}

// LookupValue resolves the kerning value for a pair of glyphs, applying
// the UFO fallback rules: the exact pair wins, then glyph and second-side
// group, then first-side group and glyph, then the pair of groups.  Pairs
// with no applicable rule kern by 0.
func (k Kerning) LookupValue(first, second string, glyphToFirst, glyphToSecond map[string]string) float64 {
	if v, ok := k.get(first, second); ok {
		return v
	}
	firstGroup := glyphToFirst[first]
	secondGroup := glyphToSecond[second]
	if secondGroup != "" {
		if v, ok := k.get(first, secondGroup); ok {
			return v
		}
	}
	if firstGroup != "" {
		if v, ok := k.get(firstGroup, second); ok {
			return v
		}
	}
	if firstGroup != "" && secondGroup != "" {
		if v, ok := k.get(firstGroup, secondGroup); ok {
			return v
		}
	}
	return 0
}
