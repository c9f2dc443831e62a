// Package loggers provides the leveled logger used by siteconf.
package loggers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// Logger is the leveled logger used across siteconf.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)

	// LogCounters returns how many messages were logged at each level.
	LogCounters() *LogCounters

	Out() io.Writer
}

// LogCounters counts messages logged per level.
type LogCounters struct {
	ErrorCounter *jww.Counter
	WarnCounter  *jww.Counter
}

type logger struct {
	*jww.Notepad

	// Write ANSI colour codes around level prefixes.
	color bool

	out      io.Writer
	counters *LogCounters
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Warnf(format string, v ...any) {
	l.WARN.Printf(l.colorize(yellow, format), v...)
}

func (l *logger) Errorf(format string, v ...any) {
	l.ERROR.Printf(l.colorize(red, format), v...)
}

func (l *logger) LogCounters() *LogCounters {
	return l.counters
}

func (l *logger) Out() io.Writer {
	return l.out
}

const (
	red    = "\033[1;31m"
	yellow = "\033[0;33m"
	reset  = "\033[0m"
)

func (l *logger) colorize(color, format string) string {
	if !l.color {
		return format
	}
	return color + format + reset
}

// ParseLevel turns a level name into a jww threshold.
// Unknown names return an error.
func ParseLevel(level string) (jww.Threshold, error) {
	switch strings.ToLower(level) {
	case "debug":
		return jww.LevelDebug, nil
	case "info", "":
		return jww.LevelInfo, nil
	case "warn", "warning":
		return jww.LevelWarn, nil
	case "error":
		return jww.LevelError, nil
	}
	return jww.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// New creates a Logger writing messages at or above threshold to out.
func New(threshold jww.Threshold, out io.Writer) Logger {
	errorCounter := &jww.Counter{}
	warnCounter := &jww.Counter{}

	listeners := []jww.LogListener{
		jww.LogCounter(errorCounter, jww.LevelError),
		jww.LogCounter(warnCounter, jww.LevelWarn),
	}

	return &logger{
		Notepad: jww.NewNotepad(threshold, jww.LevelTrace, out, io.Discard, "", 0, listeners...),
		color:   isTerminal(out),
		out:     out,
		counters: &LogCounters{
			ErrorCounter: errorCounter,
			WarnCounter:  warnCounter,
		},
	}
}

// NewDefault creates a Logger writing INFO and above to stderr.
func NewDefault() Logger {
	return New(jww.LevelInfo, os.Stderr)
}

// NewErrorLogger creates a Logger that only prints errors.
func NewErrorLogger() Logger {
	return New(jww.LevelError, os.Stderr)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
