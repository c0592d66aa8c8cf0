package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	purple = "\033[35m"
	cyan   = "\033[36m"
	gray   = "\033[37m"
	white  = "\033[97m"
)

const redacted = "[REDACTED]"

// sensitiveKeys never reach the output with their value.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"password_hash": {},
	"secret":        {},
	"token":         {},
	"authorization": {},
}

// PrettyHandler writes one colored line per record for local development.
type PrettyHandler struct {
	opts  slog.HandlerOptions
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts:  *opts,
		w:     w,
		mu:    &sync.Mutex{},
		attrs: []slog.Attr{},
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minimum := slog.LevelInfo
	if h.opts.Level != nil {
		minimum = h.opts.Level.Level()
	}
	return level >= minimum
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder

	fmt.Fprintf(&line, "%s%s%s ", gray, r.Time.Format("15:04:05.000"), reset)
	fmt.Fprintf(&line, "%s%-5s%s ", levelColor(r.Level), r.Level.String(), reset)
	fmt.Fprintf(&line, "%s%s%s", white, r.Message, reset)

	for _, a := range h.attrs {
		writeAttr(&line, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&line, h.group, a)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}

	return &PrettyHandler{opts: h.opts, w: h.w, mu: h.mu, attrs: newAttrs, group: h.group}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}

	return &PrettyHandler{opts: h.opts, w: h.w, mu: h.mu, attrs: h.attrs, group: newGroup}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return red
	case level >= slog.LevelWarn:
		return yellow
	case level >= slog.LevelInfo:
		return green
	default:
		return purple
	}
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && !strings.HasPrefix(key, group+".") {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, nested := range a.Value.Group() {
			writeAttr(b, key, nested)
		}
		return
	}

	fmt.Fprintf(b, " %s%s%s=%v", cyan, key, reset, formatValue(a))
}

func formatValue(a slog.Attr) any {
	if _, sensitive := sensitiveKeys[strings.ToLower(a.Key)]; sensitive {
		return redacted
	}

	switch a.Value.Kind() {
	case slog.KindTime:
		return a.Value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return a.Value.Duration().String()
	default:
		return a.Value.Any()
	}
}
