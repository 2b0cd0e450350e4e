package logrushandler

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/formatter"
	"github.com/philipp01105/minilog/handler"
	"github.com/philipp01105/minilog/logger"
)

// Hook implements logrus.Hook on top of a minilog Logger
type Hook struct {
	logger *logger.Logger
}

// New creates a Hook writing through l. A nil l uses the default logger.
func New(l *logger.Logger) *Hook {
	if l == nil {
		l = logger.Default()
	}
	return &Hook{logger: l}
}

// NewLogger creates a logrus logger that writes only through l. The
// logrus level is left at Trace; the minilog gate decides what is kept.
func NewLogger(l *logger.Logger) *logrus.Logger {
	h := New(l)
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetFormatter(discardFormatter{})
	lg.SetLevel(logrus.TraceLevel)
	lg.SetReportCaller(h.logger.IncludesCaller())
	lg.AddHook(h)
	return lg
}

// Levels returns every logrus level
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire writes the entry as one line when its level passes the gate
func (h *Hook) Fire(entry *logrus.Entry) error {
	level := LevelFromLogrus(entry.Level)
	if !h.logger.Enabled(level) {
		return nil
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]formatter.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formatter.Field{Key: k, Value: entry.Data[k]})
	}

	var location string
	if entry.HasCaller() {
		location = handler.Location(h.logger, entry.Caller.File, entry.Caller.Line)
	}
	handler.Emit(h.logger, level, location, entry.Message, fields)
	return nil
}

// LevelFromLogrus folds a logrus level onto a minilog level. Panic and
// Fatal become ERROR.
func LevelFromLogrus(lvl logrus.Level) core.Level {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// discardFormatter skips logrus' own rendering for loggers whose output
// is discarded anyway
type discardFormatter struct{}

func (discardFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}
