// Package logger builds the zerolog logger shared by the bot.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing JSON to stdout, or human readable lines when
// pretty is set. An unknown level falls back to info. The global zerolog
// logger is replaced as well.
func New(level string, pretty bool) zerolog.Logger {
	return newWithWriter(os.Stdout, level, pretty)
}

func newWithWriter(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	l := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = l
	return l
}
