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

// Package fea provides a minimal scanner for Adobe feature files.  It
// resolves include directives, extracts languagesystem statements, and can
// remove feature blocks by name.  It is not a feature compiler; everything
// else in the file is passed through untouched.
package fea

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// includeLimit bounds include nesting, to stop include cycles.
const includeLimit = 10

// LanguageSystem is a languagesystem statement, with the OpenType script
// and language system tags as written (trailing spaces removed).
type LanguageSystem struct {
	Script string
	Lang   string
}

// Resolve expands all include(...) directives in text.  Include paths are
// interpreted relative to dir, following the UFO convention.
func Resolve(text, dir string) (string, error) {
	return resolve(text, dir, 0)
}

func resolve(text, dir string, depth int) (string, error) {
	if depth > includeLimit {
		return "", fmt.Errorf("feature file includes nested more than %d deep",
			includeLimit)
	}

	var out strings.Builder
	s := newScanner(text)
	last := 0
	for s.next() {
		if s.state != stateCode || s.ch != 'i' {
			continue
		}
		start := s.pos
		if !strings.HasPrefix(text[start:], "include") {
			continue
		}
		if start > 0 && isNameChar(rune(text[start-1])) {
			continue
		}
		rest := text[start+len("include"):]
		trimmed := strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(trimmed, "(") {
			continue
		}
		closeParen := strings.IndexByte(trimmed, ')')
		if closeParen < 0 {
			return "", fmt.Errorf("unterminated include directive")
		}
		fname := strings.TrimSpace(trimmed[1:closeParen])
		end := start + len("include") + (len(rest) - len(trimmed)) + closeParen + 1
		// optional trailing semicolon
		tail := strings.TrimLeft(text[end:], " \t")
		if strings.HasPrefix(tail, ";") {
			end += len(text[end:]) - len(tail) + 1
		}

		data, err := os.ReadFile(filepath.Join(dir, fname))
		if err != nil {
			return "", fmt.Errorf("include(%s): %w", fname, err)
		}
		sub, err := resolve(string(data), dir, depth+1)
		if err != nil {
			return "", err
		}

		out.WriteString(text[last:start])
		out.WriteString(sub)
		last = end
		s.skipTo(end)
	}
	out.WriteString(text[last:])
	return out.String(), nil
}

// LanguageSystems extracts all languagesystem statements from text.
// Include directives must already be resolved.
func LanguageSystems(text string) []LanguageSystem {
	var res []LanguageSystem
	for _, stmt := range statements(text) {
		fields := strings.Fields(stmt)
		if len(fields) == 3 && fields[0] == "languagesystem" {
			res = append(res, LanguageSystem{
				Script: fields[1],
				Lang:   fields[2],
			})
		}
	}
	return res
}

// statements splits the top-level code (outside of blocks, comments and
// strings) into semicolon-terminated statements.
func statements(text string) []string {
	var res []string
	var cur strings.Builder
	depth := 0
	s := newScanner(text)
	for s.next() {
		if s.state != stateCode {
			continue
		}
		switch s.ch {
		case '{':
			depth++
		case '}':
			depth--
		case ';':
			if depth == 0 {
				res = append(res, cur.String())
				cur.Reset()
			}
		default:
			if depth == 0 && s.ch != 0 {
				cur.WriteByte(s.ch)
			}
		}
	}
	return res
}

// StripFeatures removes all `feature xxxx { ... } xxxx;` blocks whose tag
// is in drop, leaving the rest of the text unchanged.
func StripFeatures(text string, drop map[string]bool) string {
	var out strings.Builder
	last := 0
	s := newScanner(text)
	for s.next() {
		if s.state != stateCode || s.ch != 'f' {
			continue
		}
		start := s.pos
		if !strings.HasPrefix(text[start:], "feature") {
			continue
		}
		if start > 0 && isNameChar(rune(text[start-1])) {
			continue
		}
		afterKw := start + len("feature")
		if afterKw < len(text) && isNameChar(rune(text[afterKw])) {
			continue
		}
		tag, afterTag := nextToken(text, afterKw)
		if tag == "" || !drop[tag] {
			continue
		}

		end, ok := skipBlock(s, text, afterTag)
		if !ok {
			break
		}
		out.WriteString(text[last:start])
		last = end
	}
	out.WriteString(text[last:])
	return out.String()
}

// skipBlock advances the scanner past a braced block which starts at or
// after pos and is terminated by "} tag;".  It returns the offset just
// past the closing semicolon.
func skipBlock(s *scanner, text string, pos int) (int, bool) {
	s.skipTo(pos)
	depth := 0
	for s.next() {
		if s.state != stateCode {
			continue
		}
		switch s.ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				// consume the closing tag and semicolon
				for s.next() {
					if s.state == stateCode && s.ch == ';' {
						return s.pos + 1, true
					}
				}
				return len(text), true
			}
		}
	}
	return 0, false
}

func nextToken(text string, pos int) (string, int) {
	for pos < len(text) && unicode.IsSpace(rune(text[pos])) {
		pos++
	}
	start := pos
	for pos < len(text) && isNameChar(rune(text[pos])) {
		pos++
	}
	return text[start:pos], pos
}

func isNameChar(r rune) bool {
	return r == '_' || r == '.' ||
		r >= '0' && r <= '9' ||
		r >= 'A' && r <= 'Z' ||
		r >= 'a' && r <= 'z'
}

type scanState int

const (
	stateCode scanState = iota
	stateComment
	stateString
)

// scanner walks a feature file byte by byte, tracking whether the current
// position is inside code, a comment, or a quoted string.
type scanner struct {
	text  string
	pos   int
	ch    byte
	state scanState
}

func newScanner(text string) *scanner {
	return &scanner{text: text, pos: -1}
}

func (s *scanner) next() bool {
	s.pos++
	if s.pos >= len(s.text) {
		return false
	}
	s.ch = s.text[s.pos]

	switch s.state {
	case stateComment:
		if s.ch == '\n' {
			s.state = stateCode
		}
	case stateString:
		if s.ch == '"' {
			s.state = stateCode
			s.ch = 0
		}
	default:
		switch s.ch {
		case '#':
			s.state = stateComment
		case '"':
			s.state = stateString
		}
	}
	if s.state != stateCode {
		s.ch = 0
	}
	return true
}

// skipTo positions the scanner so that the next call to next() reads the
// byte at pos.  The comment/string state is reset; callers must only skip
// to positions known to be code.
func (s *scanner) skipTo(pos int) {
	s.pos = pos - 1
	s.state = stateCode
}
