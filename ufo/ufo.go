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

// Package ufo reads Unified Font Object sources, restricted to the data a
// kerning validator needs: the glyph inventory of the default layer with
// advance widths and unicode assignments, the kerning groups and pairs, the
// glyph order and the feature file text.  Glyph outlines are ignored.
package ufo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"
)

// ErrNotUFO is returned when a path does not look like a UFO directory.
var ErrNotUFO = errors.New("not a UFO directory")

// Font holds the parts of a UFO source which are relevant for kerning
// validation.
type Font struct {
	Path string

	Info    FontInfo
	Glyphs  map[string]*Glyph
	Groups  Groups
	Kerning Kerning

	// Features is the text of features.fea, with include directives
	// already resolved.
	Features string

	// libOrder is the value of public.glyphOrder from lib.plist.
	libOrder []string
}

// FontInfo is the subset of fontinfo.plist used when compiling a font.
type FontInfo struct {
	FamilyName string  `plist:"familyName"`
	StyleName  string  `plist:"styleName"`
	UnitsPerEm float64 `plist:"unitsPerEm"`
	Ascender   float64 `plist:"ascender"`
	Descender  float64 `plist:"descender"`
	CapHeight  float64 `plist:"capHeight"`
	XHeight    float64 `plist:"xHeight"`
}

// Glyph is a glyph of the default layer.  Outlines are not represented.
type Glyph struct {
	Name     string
	Width    float64
	Unicodes []rune
}

type metaInfo struct {
	Creator       string `plist:"creator"`
	FormatVersion int    `plist:"formatVersion"`
}

// Open reads a UFO directory.
func Open(path string) (*Font, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUFO)
	}

	var meta metaInfo
	err = readPlist(filepath.Join(path, "metainfo.plist"), &meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUFO)
	}
	if meta.FormatVersion < 2 || meta.FormatVersion > 3 {
		return nil, fmt.Errorf("%s: unsupported UFO format version %d",
			path, meta.FormatVersion)
	}

	f := &Font{
		Path:    path,
		Glyphs:  make(map[string]*Glyph),
		Groups:  make(Groups),
		Kerning: make(Kerning),
	}
	f.Info.UnitsPerEm = 1000

	err = readPlistOptional(filepath.Join(path, "fontinfo.plist"), &f.Info)
	if err != nil {
		return nil, err
	}
	if f.Info.UnitsPerEm <= 0 {
		f.Info.UnitsPerEm = 1000
	}

	glyphsDir, err := defaultLayerDir(path, meta.FormatVersion)
	if err != nil {
		return nil, err
	}
	err = f.readLayer(filepath.Join(path, glyphsDir))
	if err != nil {
		return nil, err
	}

	err = readPlistOptional(filepath.Join(path, "groups.plist"), &f.Groups)
	if err != nil {
		return nil, err
	}
	err = readPlistOptional(filepath.Join(path, "kerning.plist"), &f.Kerning)
	if err != nil {
		return nil, err
	}

	var lib map[string]interface{}
	err = readPlistOptional(filepath.Join(path, "lib.plist"), &lib)
	if err != nil {
		return nil, err
	}
	if order, ok := lib["public.glyphOrder"].([]interface{}); ok {
		for _, name := range order {
			if s, ok := name.(string); ok {
				f.libOrder = append(f.libOrder, s)
			}
		}
	}

	fea, err := os.ReadFile(filepath.Join(path, "features.fea"))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	f.Features = string(fea)

	return f, nil
}

// defaultLayerDir locates the glyph directory of the default layer.
func defaultLayerDir(path string, formatVersion int) (string, error) {
	if formatVersion == 2 {
		return "glyphs", nil
	}
	var layers [][]string
	err := readPlist(filepath.Join(path, "layercontents.plist"), &layers)
	if os.IsNotExist(err) {
		return "glyphs", nil
	}
	if err != nil {
		return "", err
	}
	for _, layer := range layers {
		if len(layer) == 2 && layer[0] == "public.default" {
			return layer[1], nil
		}
	}
	if len(layers) > 0 && len(layers[0]) == 2 {
		return layers[0][1], nil
	}
	return "glyphs", nil
}

func (f *Font) readLayer(dir string) error {
	var contents map[string]string
	err := readPlist(filepath.Join(dir, "contents.plist"), &contents)
	if err != nil {
		return err
	}
	for name, file := range contents {
		g, err := readGlif(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("glyph %q: %w", name, err)
		}
		if g.Name == "" {
			g.Name = name
		}
		if _, seen := f.Glyphs[name]; seen {
			return fmt.Errorf("duplicate glyph %q in %s", name, dir)
		}
		f.Glyphs[name] = g
	}
	return nil
}

// GlyphOrder returns the glyph order used when compiling the font:
// .notdef first, then the glyphs named by public.glyphOrder, then all
// remaining glyphs in sorted order.
func (f *Font) GlyphOrder() []string {
	order := make([]string, 0, len(f.Glyphs))
	seen := make(map[string]bool, len(f.Glyphs))
	if _, ok := f.Glyphs[".notdef"]; ok {
		order = append(order, ".notdef")
		seen[".notdef"] = true
	}
	for _, name := range f.libOrder {
		if _, ok := f.Glyphs[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range f.Glyphs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func readPlist(fname string, v interface{}) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	_, err = plist.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func readPlistOptional(fname string, v interface{}) error {
	err := readPlist(fname, v)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsKern1Group reports whether name follows the first-side kerning group
// naming convention.
func IsKern1Group(name string) bool {
	return strings.HasPrefix(name, "public.kern1.")
}

// IsKern2Group reports whether name follows the second-side kerning group
// naming convention.
func IsKern2Group(name string) bool {
	return strings.HasPrefix(name, "public.kern2.")
}
