// Package logger is the reporting port handed to every depwatch component.
// Progress, warnings, and debug traces all flow through an injected *Logger
// rather than process-global console state, so core logic stays testable
// without capturing stdout.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger emits operator-visible messages. Debug messages are suppressed
// unless the logger was built in verbose mode.
type Logger struct {
	cl *charmlog.Logger
}

// New creates a logger writing to w with timestamp formatting.
// If w is nil it falls back to stderr.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return &Logger{cl: charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})}
}

// Discard returns a logger that drops every message. Handy for tests that
// exercise core logic without caring about output.
func Discard() *Logger {
	return &Logger{cl: charmlog.New(io.Discard)}
}

// Debugf logs a formatted debug message (verbose mode only).
func (l *Logger) Debugf(format string, v ...any) {
	l.cl.Debugf(format, v...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...any) {
	l.cl.Infof(format, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...any) {
	l.cl.Warnf(format, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...any) {
	l.cl.Errorf(format, v...)
}
