package zerologhandler

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/formatter"
	"github.com/philipp01105/minilog/handler"
	"github.com/philipp01105/minilog/logger"
)

// Writer implements zerolog.LevelWriter on top of a minilog Logger
type Writer struct {
	logger *logger.Logger
}

// New creates a Writer for l. A nil l uses the default logger.
func New(l *logger.Logger) *Writer {
	if l == nil {
		l = logger.Default()
	}
	return &Writer{logger: l}
}

// NewLogger creates a zerolog.Logger writing through l
func NewLogger(l *logger.Logger) zerolog.Logger {
	return zerolog.New(New(l))
}

// Write handles events without a level as INFO
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel writes one event. Events whose level is disabled are
// dropped; the full length of p is always reported as written.
func (w *Writer) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	if lvl == zerolog.Disabled {
		return len(p), nil
	}
	level := LevelFromZerolog(lvl)
	if !w.logger.Enabled(level) {
		return len(p), nil
	}

	msg, location, fields, ok := w.decode(p)
	if !ok {
		s := w.logger.Open(level, "")
		s.Write(bytes.TrimRight(p, "\n"))
		s.WriteText("\n")
		s.Close()
		return len(p), nil
	}
	handler.Emit(w.logger, level, location, msg, fields)
	return len(p), nil
}

// decode splits a JSON event into message, caller location and the
// remaining fields in key order
func (w *Writer) decode(p []byte) (string, string, []formatter.Field, bool) {
	var event map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		return "", "", nil, false
	}

	msg, _ := event[zerolog.MessageFieldName].(string)
	var location string
	if caller, ok := event[zerolog.CallerFieldName].(string); ok {
		location = w.location(caller)
	}
	delete(event, zerolog.MessageFieldName)
	delete(event, zerolog.LevelFieldName)
	delete(event, zerolog.TimestampFieldName)
	delete(event, zerolog.CallerFieldName)

	keys := make([]string, 0, len(event))
	for k := range event {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]formatter.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formatter.Field{Key: k, Value: event[k]})
	}
	return msg, location, fields, true
}

// location parses zerolog's "file:line" caller value
func (w *Writer) location(caller string) string {
	i := strings.LastIndexByte(caller, ':')
	if i < 0 {
		return ""
	}
	line, err := strconv.Atoi(caller[i+1:])
	if err != nil {
		return ""
	}
	return handler.Location(w.logger, caller[:i], line)
}

// LevelFromZerolog folds a zerolog level onto a minilog level. Fatal and
// Panic become ERROR; NoLevel becomes INFO.
func LevelFromZerolog(lvl zerolog.Level) core.Level {
	switch lvl {
	case zerolog.PanicLevel, zerolog.FatalLevel, zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.InfoLevel, zerolog.NoLevel:
		return core.InfoLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.Disabled:
		return core.NoneLevel
	default:
		return core.TraceLevel
	}
}
