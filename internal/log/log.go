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

// Package log routes diagnostic output for the command line tool.  The
// verbosity is controlled by the KERNVAL_LOG environment variable; the
// default only shows warnings and errors.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
)

// Init installs the log handler and sets the level from the KERNVAL_LOG
// environment variable.  If debug is set, the level is forced to debug.
func Init(debug bool) {
	level := strings.ToLower(os.Getenv("KERNVAL_LOG"))
	if debug {
		level = "debug"
	}
	apexLevel := log.WarnLevel
	switch level {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn", "warning":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	}
	log.SetHandler(&handler{w: os.Stderr})
	log.SetLevel(apexLevel)
}

// SetOutput redirects log output, for example to a per-font log file.
func SetOutput(w io.Writer) {
	log.SetHandler(&handler{w: w})
}

// handler writes one line per entry, prefixed by the level.
type handler struct {
	mu sync.Mutex
	w  io.Writer
}

func (h *handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s: %s\n", e.Level, e.Message)
	return err
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
