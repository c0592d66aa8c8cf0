package logger

import (
	"io"
	"log/slog"
	"strings"
)

const (
	FormatPretty = "pretty"
	FormatText   = "text"
	FormatJSON   = "json"
)

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w in the given format. Unknown formats fall
// back to the pretty handler.
func New(w io.Writer, format string, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		opts.ReplaceAttr = redactAttr
		return slog.New(slog.NewJSONHandler(w, opts))
	case FormatText:
		opts.ReplaceAttr = redactAttr
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		return slog.New(NewPrettyHandler(w, opts))
	}
}

func redactAttr(_ []string, a slog.Attr) slog.Attr {
	if _, sensitive := sensitiveKeys[strings.ToLower(a.Key)]; sensitive {
		return slog.String(a.Key, redacted)
	}
	return a
}
