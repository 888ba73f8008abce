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
	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/classdef"
	"seehuhn.de/go/sfnt/opentype/coverage"
	"seehuhn.de/go/sfnt/opentype/gtab"

	"seehuhn.de/go/kernval/classify"
	"seehuhn.de/go/kernval/fea"
	"seehuhn.de/go/kernval/internal/log"
	"seehuhn.de/go/kernval/otl"
	"seehuhn.de/go/kernval/ufo"
)

// noRequiredFeature is the value of Features.Required when a language
// system has no required feature.
const noRequiredFeature gtab.FeatureIndex = 0xFFFF

// bucket identifies one of the generated kern lookups.  Kerning is split
// by writing direction because applications itemize text into
// single-direction runs before shaping.
type bucket int

const (
	bucketDflt bucket = iota
	bucketLTR
	bucketRTL
	numBuckets
)

// classEntry is one group-to-group kerning rule, restricted to the glyphs
// of a single bucket.
type classEntry struct {
	first, second string // group names
	value         float64
}

// kernData collects the kerning of one bucket while entries are
// partitioned.
type kernData struct {
	pairs   map[glyph.Pair]float64 // specific pairs, winning value
	classes []classEntry
	split   map[string][]string // group name -> members in this bucket
}

func newKernData() *kernData {
	return &kernData{
		pairs: make(map[glyph.Pair]float64),
		split: make(map[string][]string),
	}
}

// makeKern generates the GPOS table for the kerning of a UFO source.
// It returns nil if the source has no kerning.
func makeKern(f *ufo.Font, cls *classify.Glyphs, gid map[string]glyph.ID, langSystems []fea.LanguageSystem) (*gtab.Info, error) {
	if len(f.Kerning) == 0 {
		return nil, nil
	}

	glyphToFirst, glyphToSecond := f.Groups.SideMaps()

	buckets := [numBuckets]*kernData{
		newKernData(), newKernData(), newKernData(),
	}

	inBucket := func(name string, b bucket) bool {
		d := cls.DirectionsOf(name)
		switch b {
		case bucketLTR:
			return d.LTR || d.DefaultOnly
		case bucketRTL:
			return d.RTL || d.DefaultOnly
		default:
			return d.DefaultOnly
		}
	}
	allDefault := func(names []string) bool {
		for _, n := range names {
			if !cls.DirectionsOf(n).DefaultOnly {
				return false
			}
		}
		return true
	}

	// expand returns the known member glyphs of one side of a kerning
	// entry.  The bool result is false if the entry references an
	// undefined group.
	expand := func(name string) ([]string, bool) {
		if ufo.IsKern1Group(name) || ufo.IsKern2Group(name) {
			members, ok := f.Groups[name]
			if !ok {
				return nil, false
			}
			var known []string
			for _, m := range members {
				if _, ok := gid[m]; ok {
					known = append(known, m)
				}
			}
			return known, true
		}
		if _, ok := gid[name]; !ok {
			return nil, true
		}
		return []string{name}, true
	}

	for _, first := range sortedKeys(f.Kerning) {
		row := f.Kerning[first]
		for _, second := range sortedKeys(row) {
			value := row[second]

			firstGlyphs, ok := expand(first)
			if !ok {
				log.Debugf("%s: kerning references undefined group %q",
					f.Path, first)
				continue
			}
			secondGlyphs, ok := expand(second)
			if !ok {
				log.Debugf("%s: kerning references undefined group %q",
					f.Path, second)
				continue
			}
			if len(firstGlyphs) == 0 || len(secondGlyphs) == 0 {
				continue
			}

			isClassPair := ufo.IsKern1Group(first) && ufo.IsKern2Group(second)

			for b := bucketDflt; b < numBuckets; b++ {
				split1 := filterBucket(firstGlyphs, b, inBucket)
				split2 := filterBucket(secondGlyphs, b, inBucket)
				if len(split1) == 0 || len(split2) == 0 {
					continue
				}
				// Entries between glyphs without an explicit script
				// live in the direction-neutral lookup only.  The
				// "kern" features of the LTR and RTL scripts include
				// that lookup, so repeating the entry there would
				// apply it twice.
				if b != bucketDflt && allDefault(split1) && allDefault(split2) {
					continue
				}

				if isClassPair {
					buckets[b].classes = append(buckets[b].classes,
						classEntry{first, second, value})
					buckets[b].split[first] = split1
					buckets[b].split[second] = split2
					continue
				}

				// Pairs naming a specific glyph on either side become
				// individual pair adjustments.  The adjustment is the
				// winning value under the UFO fallback rules, so that
				// exceptions override group kerning regardless of
				// subtable order within a bucket.
				for _, a := range split1 {
					for _, c := range split2 {
						pair := glyph.Pair{Left: gid[a], Right: gid[c]}
						if _, ok := buckets[b].pairs[pair]; ok {
							continue
						}
						buckets[b].pairs[pair] =
							f.Kerning.LookupValue(a, c, glyphToFirst, glyphToSecond)
					}
				}
			}
		}
	}

	var lookups gtab.LookupList
	var lookupOf [numBuckets]gtab.LookupIndex
	var hasLookup [numBuckets]bool
	for b := bucketDflt; b < numBuckets; b++ {
		lookup := makeKernLookup(buckets[b], b == bucketRTL, gid)
		if lookup == nil {
			continue
		}
		lookupOf[b] = gtab.LookupIndex(len(lookups))
		hasLookup[b] = true
		lookups = append(lookups, lookup)
	}
	if len(lookups) == 0 {
		return nil, nil
	}

	info := &gtab.Info{
		LookupList: lookups,
		ScriptList: make(gtab.ScriptListInfo),
	}

	// One "kern" feature per direction, each including the shared
	// direction-neutral lookup.
	featureOf := func(b bucket) (gtab.FeatureIndex, bool) {
		var ll []gtab.LookupIndex
		if hasLookup[bucketDflt] {
			ll = append(ll, lookupOf[bucketDflt])
		}
		if b != bucketDflt && hasLookup[b] {
			ll = append(ll, lookupOf[b])
		}
		if len(ll) == 0 {
			return 0, false
		}
		for i, feat := range info.FeatureList {
			if feat.Tag == "kern" && equalLookups(feat.Lookups, ll) {
				return gtab.FeatureIndex(i), true
			}
		}
		info.FeatureList = append(info.FeatureList, &gtab.Feature{
			Tag:     "kern",
			Lookups: ll,
		})
		return gtab.FeatureIndex(len(info.FeatureList) - 1), true
	}

	register := func(tag language.Tag, idx gtab.FeatureIndex) {
		if _, ok := info.ScriptList[tag]; ok {
			return
		}
		info.ScriptList[tag] = &gtab.Features{
			Required: noRequiredFeature,
			Optional: []gtab.FeatureIndex{idx},
		}
	}

	// The default script gets the direction-neutral kerning.  The -x-dflt
	// extension is what the sfnt writer maps to the DFLT script tag; plain
	// language.Und would be resolved to latn via likely subtags.
	if idx, ok := featureOf(bucketDflt); ok {
		register(language.MustParse("und-x-dflt"), idx)
	}

	// Each script supported by the font is registered with its default
	// language system, plus any language systems declared in the feature
	// file.
	langsByScript := make(map[string][]language.Tag)
	for _, ls := range langSystems {
		script := otl.ScriptCode(ls.Script)
		if script == "" {
			continue
		}
		lang, ok := otl.LangTag(ls.Lang)
		if !ok {
			continue
		}
		langsByScript[script] = append(langsByScript[script], lang)
	}

	scripts := make(map[string]bool, len(cls.FontScripts))
	for s := range cls.FontScripts {
		scripts[s] = true
	}
	for s := range langsByScript {
		scripts[s] = true
	}
	for _, script := range sortedKeys(scripts) {
		if otl.DefaultScripts[script] {
			continue
		}
		b := bucketLTR
		if otl.Direction(script) == "RTL" {
			b = bucketRTL
		}
		idx, ok := featureOf(b)
		if !ok {
			continue
		}

		tag, err := otl.Tag(script, language.Und)
		if err != nil {
			log.Debugf("%s: cannot register script %q: %v", f.Path, script, err)
			continue
		}
		register(tag, idx)
		for _, lang := range langsByScript[script] {
			tag, err := otl.Tag(script, lang)
			if err != nil {
				continue
			}
			register(tag, idx)
		}
	}

	return info, nil
}

func filterBucket(glyphs []string, b bucket, inBucket func(string, bucket) bool) []string {
	var res []string
	for _, g := range glyphs {
		if inBucket(g, b) {
			res = append(res, g)
		}
	}
	return res
}

func equalLookups(a, b []gtab.LookupIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// makeKernLookup builds one GPOS type 2 lookup.  Specific pairs go into a
// format 1 subtable which is consulted first; group kerning follows in a
// format 2 subtable with classes derived from the kerning groups.
func makeKernLookup(data *kernData, rtl bool, gid map[string]glyph.ID) *gtab.LookupTable {
	var subtables []gtab.Subtable

	if len(data.pairs) > 0 {
		adjust := make(gtab.Gpos2_1, len(data.pairs))
		for pair, value := range data.pairs {
			adjust[pair] = pairAdjust(value, rtl)
		}
		subtables = append(subtables, adjust)
	}

	if len(data.classes) > 0 {
		subtables = append(subtables, makeClassSubtable(data, rtl, gid))
	}

	if len(subtables) == 0 {
		return nil
	}
	return &gtab.LookupTable{
		Meta: &gtab.LookupMetaInfo{
			LookupType: 2,
		},
		Subtables: subtables,
	}
}

func makeClassSubtable(data *kernData, rtl bool, gid map[string]glyph.ID) gtab.Subtable {
	firstGroups := make(map[string]bool)
	secondGroups := make(map[string]bool)
	for _, e := range data.classes {
		firstGroups[e.first] = true
		secondGroups[e.second] = true
	}

	class1 := assignClasses(sortedKeys(firstGroups), data.split, gid)
	class2 := assignClasses(sortedKeys(secondGroups), data.split, gid)

	cov := make(coverage.Set)
	for g := range class1.classes {
		cov[g] = true
	}

	adjust := make([][]*gtab.PairAdjust, class1.count+1)
	for i := range adjust {
		adjust[i] = make([]*gtab.PairAdjust, class2.count+1)
		for j := range adjust[i] {
			// the pinned sfnt encoder dereferences every cell, so
			// unkerned combinations need a non-nil zero record
			adjust[i][j] = &gtab.PairAdjust{}
		}
	}
	for _, e := range data.classes {
		c1 := class1.byGroup[e.first]
		c2 := class2.byGroup[e.second]
		if c1 == 0 || c2 == 0 {
			continue
		}
		if adjust[c1][c2].First == nil {
			adjust[c1][c2] = pairAdjust(e.value, rtl)
		}
	}

	return &gtab.Gpos2_2{
		Cov:    cov,
		Class1: class1.classes,
		Class2: class2.classes,
		Adjust: adjust,
	}
}

// classAssignment maps kerning groups to glyph classes.  Class 0 is
// reserved for glyphs outside all groups.
type classAssignment struct {
	byGroup map[string]uint16
	classes classdef.Table
	count   int
}

func assignClasses(groups []string, split map[string][]string, gid map[string]glyph.ID) *classAssignment {
	res := &classAssignment{
		byGroup: make(map[string]uint16),
		classes: make(classdef.Table),
	}
	for _, group := range groups {
		members := split[group]
		cls := uint16(res.count + 1)
		used := false
		for _, name := range members {
			id := gid[name]
			if _, ok := res.classes[id]; ok {
				// a glyph can only be in one class; the first group
				// keeps it, matching the side maps used for lookup
				continue
			}
			res.classes[id] = cls
			used = true
		}
		if used {
			res.byGroup[group] = cls
			res.count++
		}
	}
	return res
}

func pairAdjust(value float64, rtl bool) *gtab.PairAdjust {
	v := funit.Int16(clampInt16(Round(value)))
	rec := &gtab.GposValueRecord{XAdvance: v}
	if rtl {
		rec.XPlacement = v
	}
	return &gtab.PairAdjust{First: rec}
}
