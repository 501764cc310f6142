// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger at the configured level. Unknown level
// strings fall back to info.
func Setup(level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// New returns a logger derived from the global one, tagged with the component
// name.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
