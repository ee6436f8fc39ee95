// Package logger holds the module-wide zerolog instance. Library hot
// paths never log; the logger serves the trap error backend and the
// CLI.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter()
}

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter directs output to a human-readable console format
// on stderr.
func SetConsoleWriter() {
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetLevel adjusts the global level, e.g. for a -verbose flag.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
