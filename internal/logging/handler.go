package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// lineHandler is a slog.Handler that renders records as single plain-text
// lines. With source enabled the line carries the file:line of the call
// site between the level and the message.
type lineHandler struct {
	mu         *sync.Mutex
	w          io.Writer
	level      slog.Level
	withSource bool
	attrs      []slog.Attr
}

func newLineHandler(w io.Writer, level slog.Level, withSource bool) *lineHandler {
	return &lineHandler{
		mu:         &sync.Mutex{},
		w:          w,
		level:      level,
		withSource: withSource,
	}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Time.Format(timestampLayout))
	sb.WriteString(" - ")
	sb.WriteString(levelName(r.Level))

	if h.withSource {
		sb.WriteString(" - ")
		sb.WriteString(sourceLocation(r.PC))
		sb.WriteString(" - ")
	} else {
		sb.WriteString(": ")
	}

	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&sb, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, attr)
		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	clone := *h
	clone.attrs = merged
	return &clone
}

// WithGroup is accepted but groups are flattened; the line format has no
// nesting to express them.
func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(sb *strings.Builder, attr slog.Attr) {
	sb.WriteByte(' ')
	sb.WriteString(attr.Key)
	sb.WriteByte('=')
	sb.WriteString(attr.Value.String())
}

// sourceLocation resolves a record's program counter to "file.go:line".
func sourceLocation(pc uintptr) string {
	if pc == 0 {
		return "???:0"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// fanoutHandler forwards every record to each wrapped handler.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithGroup(name)
	}
	return next
}
