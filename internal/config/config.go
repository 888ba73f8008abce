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

// Package config reads the optional YAML configuration file of the
// command line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the command line flags.  Flags given on the
// command line take precedence.
type Config struct {
	Round       bool     `yaml:"round"`
	Progress    bool     `yaml:"progress"`
	Stepwise    bool     `yaml:"stepwise"`
	SkipScripts []string `yaml:"skip-scripts"`
}

// Load reads a configuration file.  Unknown keys are an error, so that
// typos do not silently disable options.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// SkipSet returns the skipped scripts as a set.
func (c *Config) SkipSet() map[string]bool {
	if len(c.SkipScripts) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.SkipScripts))
	for _, s := range c.SkipScripts {
		set[s] = true
	}
	return set
}
