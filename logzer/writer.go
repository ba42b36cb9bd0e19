// Package logzer wires zerolog output for the toolkit:
// a console writer with optional colors or a rotating log file.
package logzer

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	colors     bool
	level      zerolog.Level
	timeFormat string
	logFile    *LogFile
}

// Option customizes the logger writer.
type Option func(*options)

// WithColors enables colorized console output.
func WithColors(enabled bool) Option {
	return func(o *options) { o.colors = enabled }
}

// WithLevel sets the global log level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithTimeFormat sets the console time format.
func WithTimeFormat(format string) Option {
	return func(o *options) { o.timeFormat = format }
}

// WithLogFile directs output into a rotating file instead of stdout.
func WithLogFile(f *LogFile) Option {
	return func(o *options) { o.logFile = f }
}

// NewLoggerWriter applies options and returns the writer for the
// global logger. It also sets the global level.
func NewLoggerWriter(opts ...Option) io.Writer {
	o := options{
		level:      zerolog.InfoLevel,
		timeFormat: time.RFC3339,
	}
	for _, opt := range opts {
		opt(&o)
	}
	zerolog.SetGlobalLevel(o.level)

	if o.logFile != nil {
		return o.logFile
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    !o.colors,
		TimeFormat: o.timeFormat,
	}
}
