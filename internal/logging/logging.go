// Package logging builds the zerolog logger used by the minigrep CLI.
package logging

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Level zerolog.Level
	// Format is "json" for line-delimited JSON; anything else selects the
	// human readable console writer.
	Format string
	Out    io.Writer
}

// New returns a logger writing to opts.Out and sets the zerolog global level
// to opts.Level, so events below it are dropped before they are built.
func New(opts Options) zerolog.Logger {
	zerolog.SetGlobalLevel(opts.Level)

	out := opts.Out
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        opts.Out,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(opts.Out),
		}
	}

	logger := zerolog.New(out).Level(opts.Level).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Raise lowers the threshold of level by verbosity steps, so each -v shows
// one more level of detail. The result never goes below zerolog.TraceLevel.
func Raise(level zerolog.Level, verbosity int) zerolog.Level {
	for i := 0; i < verbosity && level > zerolog.TraceLevel; i++ {
		level--
	}
	return level
}

// isTerminal reports whether w is a terminal, the only case where colour
// escapes are written.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
