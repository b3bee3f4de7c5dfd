// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"
)

// levelTrace sits below Debug and adds per-worker detail.
const levelTrace = slog.LevelDebug - 4

// parseLevel maps info, debug or trace (any case) to a slog.Level.
// Anything else is info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return levelTrace
	default:
		return slog.LevelInfo
	}
}

// newLogger returns a text logger on w at the given level.
func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == levelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
