// SPDX-License-Identifier: MIT

// Package observability builds the logger and metrics used by the mixgen
// command. Library packages never log; only the command does.
package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// EnvLogLevel names the environment variable consulted when no level is given.
const EnvLogLevel = "MIXGEN_LOG_LEVEL"

// NewLogger returns a console logger writing to w with an "app" field.
// Colors are enabled only when w is a terminal.
func NewLogger(app string, level zerolog.Level, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	noColor := true
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		noColor = false
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}

// ResolveLevel picks the log level: flagValue when it parses, else
// $MIXGEN_LOG_LEVEL when it parses, else info. Callers reject a misspelled
// flagValue with ParseLevel before getting here.
func ResolveLevel(flagValue string) zerolog.Level {
	if lvl, ok := ParseLevel(flagValue); ok {
		return lvl
	}
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		return lvl
	}

	return zerolog.InfoLevel
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// report false.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
