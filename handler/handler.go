package handler

import (
	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/formatter"
	"github.com/philipp01105/minilog/logger"
)

// Emit writes one bridged line through l: the message, the rendered
// fields and a terminating line feed. It does not consult the gate.
func Emit(l *logger.Logger, level core.Level, location, msg string, fields []formatter.Field) {
	s := l.Open(level, location)
	s.WriteText(msg)
	_ = formatter.WriteFields(s, fields)
	s.WriteText("\n")
	s.Close()
}

// Location formats a caller position, or returns "" when the logger was
// built without call-site locations or the position is unknown.
func Location(l *logger.Logger, file string, line int) string {
	if !l.IncludesCaller() {
		return ""
	}
	return core.FormatLocation(file, line)
}
