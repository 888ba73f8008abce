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

// Package otl provides the script and language tag data needed to generate
// and inspect OpenType layout tables: conversions between Unicode script
// property names, ISO 15924 script codes, OpenType script tags and BCP 47
// language tags, together with script direction data.
package otl

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// DefaultScripts are the script codes which do not belong to any particular
// writing system.  Glyphs from these scripts combine with every explicit
// script when kerning pairs are formed.
var DefaultScripts = map[string]bool{
	"Zyyy": true, // Common
	"Zinh": true, // Inherited
	"Zzzz": true, // Unknown
}

// rtlScripts lists the ISO 15924 codes of scripts written right-to-left.
// The set follows HarfBuzz's script direction data.
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Armi": true, "Avst": true, "Chrs": true,
	"Cprt": true, "Elym": true, "Hatr": true, "Hebr": true, "Hung": true,
	"Khar": true, "Lydi": true, "Mand": true, "Mani": true, "Mend": true,
	"Merc": true, "Mero": true, "Narb": true, "Nbat": true, "Nkoo": true,
	"Orkh": true, "Ougr": true, "Palm": true, "Phli": true, "Phlp": true,
	"Phnx": true, "Prti": true, "Rohg": true, "Samr": true, "Sarb": true,
	"Sogd": true, "Sogo": true, "Syrc": true, "Thaa": true, "Yezi": true,
}

// Direction gives the horizontal direction of a script.
// Unknown scripts are assumed to be left-to-right.
func Direction(script string) string {
	if rtlScripts[script] {
		return "RTL"
	}
	return "LTR"
}

var (
	runeScriptOnce sync.Once
	runeScriptIdx  []scriptRange
)

type scriptRange struct {
	lo, hi uint32
	code   string
}

func buildRuneScriptIndex() {
	for name, table := range unicode.Scripts {
		code, ok := scriptNameToCode[name]
		if !ok {
			code = "Zzzz"
		}
		// Ranges with a stride greater than one cover only every
		// stride-th code point and must be split up.
		for _, r := range table.R16 {
			if r.Stride == 1 {
				runeScriptIdx = append(runeScriptIdx,
					scriptRange{uint32(r.Lo), uint32(r.Hi), code})
				continue
			}
			for c := uint32(r.Lo); c <= uint32(r.Hi); c += uint32(r.Stride) {
				runeScriptIdx = append(runeScriptIdx, scriptRange{c, c, code})
			}
		}
		for _, r := range table.R32 {
			if r.Stride == 1 {
				runeScriptIdx = append(runeScriptIdx,
					scriptRange{r.Lo, r.Hi, code})
				continue
			}
			for c := r.Lo; c <= r.Hi; c += r.Stride {
				runeScriptIdx = append(runeScriptIdx, scriptRange{c, c, code})
			}
		}
	}
	sort.Slice(runeScriptIdx, func(i, j int) bool {
		return runeScriptIdx[i].lo < runeScriptIdx[j].lo
	})
}

// RuneScript returns the ISO 15924 code of the Unicode script property of r.
func RuneScript(r rune) string {
	runeScriptOnce.Do(buildRuneScriptIndex)
	lo, hi := 0, len(runeScriptIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if runeScriptIdx[mid].hi < uint32(r) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(runeScriptIdx) && runeScriptIdx[lo].lo <= uint32(r) && uint32(r) <= runeScriptIdx[lo].hi {
		return runeScriptIdx[lo].code
	}
	return "Zzzz"
}

// BidiType classifies a rune for kerning purposes: "R" for right-to-left
// runes (classes R and AL), "L" for left-to-right runes, and "" for
// everything else.
func BidiType(r rune) string {
	prop, _ := bidi.LookupRune(r)
	switch prop.Class() {
	case bidi.R, bidi.AL:
		return "R"
	case bidi.L:
		return "L"
	}
	return ""
}

// otScriptSpecial lists the script codes whose OpenType script tag is not
// just the lower-cased ISO code.  The Indic scripts use their newer v2 tags.
var otScriptSpecial = map[string]string{
	"Beng": "bng2",
	"Deva": "dev2",
	"Gujr": "gjr2",
	"Guru": "gur2",
	"Hira": "kana",
	"Knda": "knd2",
	"Laoo": "lao ",
	"Mlym": "mlm2",
	"Mymr": "mym2",
	"Nkoo": "nko ",
	"Orya": "ory2",
	"Taml": "tml2",
	"Telu": "tel2",
	"Vaii": "vai ",
	"Yiii": "yi  ",
}

// ScriptTag returns the OpenType script tag for an ISO 15924 script code.
func ScriptTag(script string) string {
	if tag, ok := otScriptSpecial[script]; ok {
		return strings.TrimRight(tag, " ")
	}
	return strings.ToLower(script)
}

// otTagSpecial is the reverse of otScriptSpecial.  The "kana" tag is
// shared by Hiragana and Katakana and resolves to Katakana here.
var otTagSpecial = map[string]string{
	"bng2": "Beng", "beng": "Beng",
	"dev2": "Deva", "deva": "Deva",
	"gjr2": "Gujr", "gujr": "Gujr",
	"gur2": "Guru", "guru": "Guru",
	"knd2": "Knda", "knda": "Knda",
	"mlm2": "Mlym", "mlym": "Mlym",
	"mym2": "Mymr", "mymr": "Mymr",
	"ory2": "Orya", "orya": "Orya",
	"tml2": "Taml", "taml": "Taml",
	"tel2": "Telu", "telu": "Telu",
	"kana": "Kana",
	"lao":  "Laoo",
	"nko":  "Nkoo",
	"vai":  "Vaii",
	"yi":   "Yiii",
}

// ScriptCode returns the ISO 15924 code for an OpenType script tag, or ""
// if the tag is not recognized.
func ScriptCode(tag string) string {
	tag = strings.TrimRight(tag, " ")
	if code, ok := otTagSpecial[tag]; ok {
		return code
	}
	if tag == "DFLT" || tag == "dflt" {
		return ""
	}
	if len(tag) < 3 {
		return ""
	}
	code := strings.ToUpper(tag[:1]) + strings.ToLower(tag[1:])
	if len(code) == 3 {
		// three-letter tags like "lao" pad the ISO code with a repeated
		// final letter
		code += code[2:3]
	}
	if _, ok := scriptCodeToName()[code]; !ok {
		return ""
	}
	return code
}

var (
	codeToNameOnce sync.Once
	codeToName     map[string]string
)

func scriptCodeToName() map[string]string {
	codeToNameOnce.Do(func() {
		codeToName = make(map[string]string, len(scriptNameToCode))
		for name, code := range scriptNameToCode {
			codeToName[code] = name
		}
	})
	return codeToName
}

// LangTag converts an OpenType language system tag to a BCP 47 language
// tag.  The second return value is false if the tag is not in the registry.
func LangTag(langSys string) (language.Tag, bool) {
	langSys = strings.TrimRight(langSys, " ")
	if langSys == "" || langSys == "dflt" || langSys == "DFLT" {
		return language.Und, false
	}
	bcp47, ok := langSysToBCP47[langSys]
	if !ok {
		return language.Und, false
	}
	tag, err := language.Parse(bcp47)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Tag builds the BCP 47 tag which identifies a script together with an
// optional language, e.g. ("Latn", "tr") -> "tr-Latn" and ("Arab", "") ->
// "und-Arab".  This is the form used to key OpenType script lists in
// seehuhn.de/go/sfnt.
func Tag(script string, lang language.Tag) (language.Tag, error) {
	sc, err := language.ParseScript(script)
	if err != nil {
		return language.Und, err
	}
	if lang == language.Und {
		return language.Compose(sc)
	}
	return language.Compose(lang, sc)
}
