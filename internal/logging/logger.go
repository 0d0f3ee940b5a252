// Package logging builds the application loggers used by the CLI and the
// examples. Log output goes to stderr so stdout stays free for command
// output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewHandler builds a slog handler for the given format and level name.
// Format "json" emits machine readable records; anything else renders for
// terminals. Levels are trace, debug, info, warn or warning, and error;
// trace additionally reports callers. Unknown names mean info.
func NewHandler(format, level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	if strings.ToLower(format) == "json" {
		return jsonHandler(level, w)
	}
	return textHandler(level, w)
}

// New creates a configured application logger writing to stderr.
func New(format, level string) *slog.Logger {
	return slog.New(NewHandler(format, level, os.Stderr))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func textHandler(level string, w io.Writer) slog.Handler {
	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(level) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

func jsonHandler(level string, w io.Writer) slog.Handler {
	addSource := false
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "trace":
		addSource = true
		lvl = slog.LevelDebug
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
}
