package sloghandler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/formatter"
	"github.com/philipp01105/minilog/handler"
	"github.com/philipp01105/minilog/logger"
)

// Handler implements slog.Handler on top of a minilog Logger
type Handler struct {
	logger *logger.Logger
	attrs  []formatter.Field
	group  string
}

// New creates a slog.Handler writing through l. A nil l uses the
// default logger.
func New(l *logger.Logger) *Handler {
	if l == nil {
		l = logger.Default()
	}
	return &Handler{logger: l}
}

// Enabled reports whether the handler handles records at the given level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(LevelFromSlog(level))
}

// Handle writes the record as one line
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	level := LevelFromSlog(record.Level)

	fields := make([]formatter.Field, len(h.attrs), len(h.attrs)+record.NumAttrs())
	copy(fields, h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.group, a)
		return true
	})

	handler.Emit(h.logger, level, h.location(record.PC), record.Message, fields)
	return nil
}

func (h *Handler) location(pc uintptr) string {
	if pc == 0 || !h.logger.IncludesCaller() {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return handler.Location(h.logger, frame.File, frame.Line)
}

// WithAttrs returns a new Handler with additional attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]formatter.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler that prefixes later attribute keys
// with name
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// LevelFromSlog folds a slog.Level onto a minilog level. Anything below
// slog.LevelDebug is TRACE.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr flattens a into fields, prefixing keys with group. Groups
// nest with dots; empty attributes are dropped.
func appendAttr(fields []formatter.Field, group string, a slog.Attr) []formatter.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	}

	var v interface{}
	switch a.Value.Kind() {
	case slog.KindString:
		v = a.Value.String()
	default:
		v = a.Value.Any()
	}
	return append(fields, formatter.Field{Key: key, Value: v})
}
