package logger

import (
	"github.com/philipp01105/minilog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel  = core.NoneLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts a level name or rank to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// SetLevel sets the process-wide level
func SetLevel(level Level) {
	core.SetLevel(level)
}

// IsEnabled reports whether level passes the process-wide gate
func IsEnabled(level Level) bool {
	return core.IsEnabled(level)
}

// stripped marks levels removed at build time with the minilog_*_off
// tags. Indexed by level rank.
var stripped [8]bool

// Stripped reports whether level was disabled at build time
func Stripped(level Level) bool {
	return stripped[level&7]
}
