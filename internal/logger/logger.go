package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// L is the global logger instance. It discards all output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Writer io.Writer  // Destination, normally stderr. nil discards everything.
	Level  slog.Level // Minimum level.
}

// Init replaces L. Results go to stdout, so Writer must never be stdout.
func Init(opts Options) *slog.Logger {
	if opts.Writer == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return L
	}
	L = slog.New(slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: opts.Level}))
	return L
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
