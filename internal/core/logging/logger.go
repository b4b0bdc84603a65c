// Package logging holds small helpers around the global zerolog logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger derived from the global logger with a
// component identifier under the "cmp" key.
func Component(name string) zerolog.Logger {
	return Sub(log.Logger, name)
}

// Sub derives a component logger from parent.
func Sub(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("cmp", name).Logger()
}
