// Package logging builds the charmbracelet loggers used by the commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a [log.Logger] writing to w with timestamps enabled. Verbose
// loggers also emit debug entries.
//
// The writer defaults to [os.Stderr].
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spotify-exporter",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// WithRun returns a child logger tagging every entry with a fresh run id.
func WithRun(l *log.Logger) (*log.Logger, string) {
	id := uuid.New().String()
	return l.With("run", id), id
}
