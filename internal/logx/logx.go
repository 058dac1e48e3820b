// Package logx builds the diagnostic logger shared by msyskit commands.
package logx

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "msyskit"

// Options selects the logger's verbosity.
type Options struct {
	Verbose bool
	Quiet   bool
}

// Level maps verbosity flags to a log level. Quiet wins over Verbose.
func (o Options) Level() log.Level {
	switch {
	case o.Quiet:
		return log.ErrorLevel
	case o.Verbose:
		return log.DebugLevel
	}
	return log.WarnLevel
}

// New creates a logger writing to w. A nil w means stderr.
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  opts.Level(),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
