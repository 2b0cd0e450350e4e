package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log call. Levels are ordered by
// rank: a gate set to a level enables that level and every level below it.
type Level uint8

const (
	// NoneLevel disables everything. It is never the level of a message.
	NoneLevel Level = iota
	// ErrorLevel designates very serious errors
	ErrorLevel
	// WarnLevel designates hazardous situations
	WarnLevel
	// InfoLevel designates useful information
	InfoLevel
	// DebugLevel designates lower priority information
	DebugLevel
	// TraceLevel designates very low priority, often extremely verbose, information
	TraceLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized input
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	NoneLevel:  "NONE",
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
	TraceLevel: "TRACE",
}

// pre-formatted tags to avoid concatenation on the hot path
var levelTags = [...]string{
	NoneLevel:  "",
	ErrorLevel: "ERROR ",
	WarnLevel:  "WARN ",
	InfoLevel:  "INFO ",
	DebugLevel: "DEBUG ",
	TraceLevel: "TRACE ",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Tag returns the severity tag that starts every line of this level
func (l Level) Tag() string {
	if l.Valid() {
		return levelTags[l]
	}
	return ""
}

// Valid reports whether l is one of the declared levels
func (l Level) Valid() bool {
	return l <= TraceLevel
}

// ParseLevel converts a level name or numeric rank to a Level
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "NONE", "OFF":
		return NoneLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return NoneLevel, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
