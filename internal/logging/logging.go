// Package logging configures zerolog for themesync components.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a console writer on the global logger at the given level.
// Unknown level names fall back to info.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
