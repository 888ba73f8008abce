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

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// glifGlyph is the XML form of a .glif file, restricted to the elements
// the validator uses.  Outline and anchor data is skipped by the decoder.
type glifGlyph struct {
	XMLName xml.Name `xml:"glyph"`
	Name    string   `xml:"name,attr"`
	Advance struct {
		Width float64 `xml:"width,attr"`
	} `xml:"advance"`
	Unicodes []struct {
		Hex string `xml:"hex,attr"`
	} `xml:"unicode"`
}

// readGlif reads a single .glif file.
func readGlif(fname string) (*Glyph, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var doc glifGlyph
	err = xml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	g := &Glyph{
		Name:  doc.Name,
		Width: doc.Advance.Width,
	}
	for _, u := range doc.Unicodes {
		code, err := strconv.ParseUint(u.Hex, 16, 32)
		if err != nil || code > 0x10FFFF {
			return nil, fmt.Errorf("%s: invalid unicode value %q", fname, u.Hex)
		}
		g.Unicodes = append(g.Unicodes, rune(code))
	}
	return g, nil
}
