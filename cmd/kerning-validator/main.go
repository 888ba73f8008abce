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

// Kerning-validator checks that the kerning of UFO font sources survives
// compilation into a binary font.  Each source is compiled into a minimal
// font, the font is serialized and read back, and every kerning pair is
// shaped against the font's own kern lookups.  Mismatches between the
// shaped adjustment and the value in the source are reported.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"seehuhn.de/go/sfnt/opentype/gtab/builder"

	"seehuhn.de/go/kernval/compile"
	"seehuhn.de/go/kernval/internal/config"
	"seehuhn.de/go/kernval/internal/log"
	"seehuhn.de/go/kernval/ufo"
	"seehuhn.de/go/kernval/validate"
)

func main() {
	os.Exit(run())
}

func run() int {
	hadMismatches := false

	cmd := &cli.Command{
		Name:      "kerning-validator",
		Usage:     "check that UFO kerning survives font compilation",
		ArgsUsage: "font.ufo [font.ufo ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "round",
				Usage: "round kerning values before comparing",
			},
			&cli.BoolFlag{
				Name:  "stepwise",
				Usage: "stop at the first mismatch",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "write the compiled fonts to `DIR`",
			},
			&cli.StringFlag{
				Name:  "log-output-dir",
				Usage: "write per-font reports to `DIR` instead of stdout",
			},
			&cli.StringFlag{
				Name:  "debug-gpos",
				Usage: "write a description of the generated lookups to `FILE`",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "read default options from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Init(cmd.Bool("debug"))

			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("no UFO sources given")
			}

			opt, showProgress, err := makeOptions(cmd)
			if err != nil {
				return err
			}

			for _, path := range args {
				bad, err := validateOne(cmd, path, opt, showProgress)
				if err != nil {
					return err
				}
				if bad {
					hadMismatches = true
					if opt.Stepwise {
						break
					}
				}
			}
			return nil
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if hadMismatches {
		return 1
	}
	return 0
}

// makeOptions merges the configuration file and the command line flags.
// Flags given on the command line win.
func makeOptions(cmd *cli.Command) (*validate.Options, bool, error) {
	opt := &validate.Options{}
	showProgress := false

	if fname := cmd.String("config"); fname != "" {
		cfg, err := config.Load(fname)
		if err != nil {
			return nil, false, err
		}
		opt.Round = cfg.Round
		opt.Stepwise = cfg.Stepwise
		opt.SkipScripts = cfg.SkipSet()
		showProgress = cfg.Progress
	}

	if cmd.Bool("round") {
		opt.Round = true
	}
	if cmd.Bool("stepwise") {
		opt.Stepwise = true
	}
	if cmd.Bool("progress") {
		showProgress = true
	}
	if showProgress && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Debugf("stdout is not a terminal, disabling the progress bar")
		showProgress = false
	}

	return opt, showProgress, nil
}

// validateOne compiles and validates a single UFO source.  It returns
// true if the source had kerning mismatches.
func validateOne(cmd *cli.Command, path string, opt *validate.Options, showProgress bool) (bool, error) {
	f, err := ufo.Open(path)
	if err != nil {
		return false, err
	}

	res, err := compile.Font(f)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	if dir := cmd.String("output-dir"); dir != "" {
		err := writeFont(res, dir, path)
		if err != nil {
			return false, err
		}
	}
	if fname := cmd.String("debug-gpos"); fname != "" {
		text := ""
		if res.Font.Gpos != nil {
			text = strings.Join(builder.ExplainGpos(res.Font), "\n")
		}
		err := os.WriteFile(fname, []byte(text), 0o666)
		if err != nil {
			return false, err
		}
	}

	perFont := *opt
	var bar *progressbar.ProgressBar
	if showProgress {
		perFont.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription(baseName(path)),
					progressbar.OptionSetWriter(os.Stderr))
			}
			_ = bar.Set(done)
		}
	}

	report, err := validate.Compiled(f, res, &perFont)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	out := os.Stdout
	if dir := cmd.String("log-output-dir"); dir != "" {
		err := os.MkdirAll(dir, 0o777)
		if err != nil {
			return false, err
		}
		fd, err := os.Create(filepath.Join(dir, baseName(path)+".txt"))
		if err != nil {
			return false, err
		}
		defer fd.Close()
		log.SetOutput(fd)
		defer log.SetOutput(os.Stderr)
		out = fd
	}

	for _, m := range report.Mismatches {
		fmt.Fprintf(out, "%s: %s\n", path, m)
	}
	log.Infof("%s: %d pairs checked, %d mismatches",
		path, report.NumPairs, len(report.Mismatches))

	return len(report.Mismatches) > 0, nil
}

func writeFont(res *compile.Result, dir, ufoPath string) error {
	err := os.MkdirAll(dir, 0o777)
	if err != nil {
		return err
	}
	fname := filepath.Join(dir, baseName(ufoPath)+".ttf")
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = res.Font.Write(fd)
	if err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return fd.Close()
}

func baseName(ufoPath string) string {
	base := filepath.Base(filepath.Clean(ufoPath))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
