// Package log configures structured logging for promptrun using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler. attrs (key/value
// pairs, as for slog.With) are attached to every record.
func Setup(verbose, quiet bool, attrs ...any) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, attrs...))
}

// New builds a logger writing to w with the same level rules as Setup.
func New(w io.Writer, verbose, quiet bool, attrs ...any) *slog.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(attrs...)
}
