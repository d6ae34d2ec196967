// Package logging provides zerolog loggers shared across the CLI.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.Kitchen,
}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// SetLevel adjusts the global log level for all component loggers.
func SetLevel(level zerolog.Level) {
	base = base.Level(level)
}
