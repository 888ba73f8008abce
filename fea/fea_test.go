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

package fea

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLanguageSystems(t *testing.T) {
	text := `
# default
languagesystem DFLT dflt;
languagesystem latn dflt;
languagesystem latn TRK; # Turkish
feature liga {
    # languagesystem latn AZE; inside a block, must be ignored
    sub f i by fi;
} liga;
`
	got := LanguageSystems(text)
	want := []LanguageSystem{
		{"DFLT", "dflt"},
		{"latn", "dflt"},
		{"latn", "TRK"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("language systems: %s", d)
	}
}

func TestStripFeatures(t *testing.T) {
	text := `languagesystem DFLT dflt;
feature kern {
    lookup kk {
        pos A V -100;
    } kk;
} kern;
feature liga {
    sub f i by fi;
} liga;
feature mark {
    # mark attachment
} mark;
`
	drop := map[string]bool{
		"kern": true, "mark": true, "mkmk": true, "curs": true, "dist": true,
	}
	got := StripFeatures(text, drop)
	if strings.Contains(got, "pos A V") {
		t.Error("kern feature not removed")
	}
	if strings.Contains(got, "mark") {
		t.Error("mark feature not removed")
	}
	if !strings.Contains(got, "sub f i by fi;") {
		t.Error("liga feature must survive")
	}
	if !strings.Contains(got, "languagesystem DFLT dflt;") {
		t.Error("languagesystem statement must survive")
	}
}

func TestStripFeaturesInComment(t *testing.T) {
	text := "# feature kern { } kern;\npos A V -10;\n"
	got := StripFeatures(text, map[string]bool{"kern": true})
	if got != text {
		t.Errorf("commented feature block modified:\n%q", got)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "kern.fea"),
		[]byte("feature kern { pos A V -100; } kern;\n"), 0o666)
	if err != nil {
		t.Fatal(err)
	}

	text := "languagesystem DFLT dflt;\ninclude(kern.fea);\n"
	got, err := Resolve(text, dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "pos A V -100;") {
		t.Errorf("include not resolved:\n%q", got)
	}
	if strings.Contains(got, "include(") {
		t.Errorf("include directive left behind:\n%q", got)
	}
}

func TestResolveCycle(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "a.fea"),
		[]byte("include(a.fea);\n"), 0o666)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Resolve("include(a.fea);", dir)
	if err == nil {
		t.Error("include cycle not detected")
	}
}

func TestResolveMissing(t *testing.T) {
	_, err := Resolve("include(nope.fea);", t.TempDir())
	if err == nil {
		t.Error("missing include not reported")
	}
}
