package logger

import (
	"fmt"
	"io"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/out"
)

// Sink is one log line in progress. Text written to it is buffered and
// emitted when a line feed arrives, when it fills up, or on Flush/Close.
// Close ends the line; the sink may be recycled and is not used again.
type Sink interface {
	io.Writer
	io.StringWriter
	WriteText(s string)
	Flush()
	Close() error
}

// Opener creates the sink for one log line, preloaded with the severity
// tag of level and the given location prefix.
type Opener func(level core.Level, location string) Sink

// PlatformOpener opens the adapter compiled for the current target
func PlatformOpener(level core.Level, location string) Sink {
	return out.Open(level, location)
}

// Logger gates log calls and writes enabled ones to sinks from its
// Opener. A Logger is immutable after Build.
type Logger struct {
	gate          *core.Gate
	open          Opener
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	gate          *core.Gate
	open          Opener
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a builder for a Logger that uses the process-wide
// gate, the platform adapter and call-site locations
func NewBuilder() *Builder {
	return &Builder{
		gate:          core.DefaultGate(),
		open:          PlatformOpener,
		includeCaller: true,
		callerSkip:    0,
	}
}

// WithGate sets the gate consulted before each call
func (b *Builder) WithGate(g *core.Gate) *Builder {
	b.gate = g
	return b
}

// WithOpener sets where lines are written
func (b *Builder) WithOpener(o Opener) *Builder {
	b.open = o
	return b
}

// WithCaller enables or disables the "- [file:line] - " prefix
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adds frames to skip when resolving the caller, for
// wrappers around Logger
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		gate:          b.gate,
		open:          b.open,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	if l.gate == nil {
		l.gate = core.DefaultGate()
	}
	if l.open == nil {
		l.open = PlatformOpener
	}
	return l
}

// Enabled reports whether a call at level would be written
func (l *Logger) Enabled(level core.Level) bool {
	return level != core.NoneLevel && !Stripped(level) && l.gate.IsEnabled(level)
}

// IncludesCaller reports whether lines carry a call-site location
func (l *Logger) IncludesCaller() bool {
	return l.includeCaller
}

// Open returns a sink for a line at level with the given location. It
// does not consult the gate; callers check Enabled first.
func (l *Logger) Open(level core.Level, location string) Sink {
	return l.open(level, location)
}

// location resolves the caller skip frames above the exported method
func (l *Logger) location(skip int) string {
	if !l.includeCaller {
		return ""
	}
	return core.Location(skip + 1 + l.callerSkip)
}

// write emits msg as one line; depth is the frame distance to the user
func (l *Logger) write(level core.Level, depth int, msg string) {
	s := l.open(level, l.location(depth+1))
	s.WriteText(msg)
	s.WriteText("\n")
	s.Close()
}

func (l *Logger) writef(level core.Level, depth int, format string, args []interface{}) {
	s := l.open(level, l.location(depth+1))
	fmt.Fprintf(s, format, args...)
	s.WriteText("\n")
	s.Close()
}

// Log writes msg at level
func (l *Logger) Log(level core.Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.write(level, 1, msg)
}

// Logf writes a formatted message at level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.writef(level, 1, format, args)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.write(core.ErrorLevel, 1, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.write(core.WarnLevel, 1, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.write(core.InfoLevel, 1, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.write(core.DebugLevel, 1, msg)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.write(core.TraceLevel, 1, msg)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.writef(core.ErrorLevel, 1, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.writef(core.WarnLevel, 1, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.writef(core.InfoLevel, 1, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.writef(core.DebugLevel, 1, format, args)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.writef(core.TraceLevel, 1, format, args)
}
