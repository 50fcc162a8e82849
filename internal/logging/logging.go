// Package logging constructs the application logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing JSON to stderr, or a human-readable
// console stream when pretty is set. An unknown level falls back to info.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
