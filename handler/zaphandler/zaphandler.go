package zaphandler

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/formatter"
	"github.com/philipp01105/minilog/handler"
	"github.com/philipp01105/minilog/logger"
)

// Core implements zapcore.Core on top of a minilog Logger
type Core struct {
	logger    *logger.Logger
	fields    []formatter.Field
	namespace string
}

// New creates a Core writing through l. A nil l uses the default logger.
func New(l *logger.Logger) *Core {
	if l == nil {
		l = logger.Default()
	}
	return &Core{logger: l}
}

// NewLogger creates a *zap.Logger backed by a Core for l, with caller
// annotation enabled
func NewLogger(l *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(New(l), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

// Enabled reports whether entries at lvl pass the minilog gate
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(LevelFromZap(lvl))
}

// With returns a Core that adds fields to every entry
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]formatter.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields, ns := appendFields(newFields, c.namespace, fields)
	return &Core{
		logger:    c.logger,
		fields:    newFields,
		namespace: ns,
	}
}

// Check adds c to ce when the entry is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write emits the entry as one line. It never fails.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := make([]formatter.Field, 0, len(c.fields)+len(fields)+2)
	if ent.LoggerName != "" {
		all = append(all, formatter.Field{Key: "logger", Value: ent.LoggerName})
	}
	all = append(all, c.fields...)
	all, _ = appendFields(all, c.namespace, fields)
	if ent.Stack != "" {
		all = append(all, formatter.Field{Key: "stack", Value: ent.Stack})
	}

	var location string
	if ent.Caller.Defined {
		location = handler.Location(c.logger, ent.Caller.File, ent.Caller.Line)
	}
	handler.Emit(c.logger, LevelFromZap(ent.Level), location, ent.Message, all)
	return nil
}

// Sync is a no-op: every line is flushed when it is written
func (c *Core) Sync() error {
	return nil
}

// LevelFromZap folds a zap level onto a minilog level. DPanic, Panic and
// Fatal become ERROR; levels below Debug become TRACE.
func LevelFromZap(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarnLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	case lvl >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendFields encodes zap fields one by one so their order survives.
// Namespace fields prefix the keys of every field after them; the
// resulting prefix is returned for use by With.
func appendFields(dst []formatter.Field, ns string, fields []zapcore.Field) ([]formatter.Field, string) {
	for _, f := range fields {
		if f.Type == zapcore.NamespaceType {
			ns += f.Key + "."
			continue
		}
		if f.Type == zapcore.SkipType {
			continue
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		if len(enc.Fields) == 1 {
			for k, v := range enc.Fields {
				dst = append(dst, formatter.Field{Key: ns + k, Value: v})
			}
			continue
		}

		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, formatter.Field{Key: ns + k, Value: enc.Fields[k]})
		}
	}
	return dst, ns
}
