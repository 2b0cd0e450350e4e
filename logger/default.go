package logger

import (
	"sync"

	"github.com/philipp01105/minilog/core"
)

var (
	defaultLogger = NewBuilder().Build()
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They
// call write directly so the reported location is the caller's.

// Error logs an error message using the default logger
func Error(msg string) {
	if l := Default(); l.Enabled(core.ErrorLevel) {
		l.write(core.ErrorLevel, 1, msg)
	}
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	if l := Default(); l.Enabled(core.WarnLevel) {
		l.write(core.WarnLevel, 1, msg)
	}
}

// Info logs an info message using the default logger
func Info(msg string) {
	if l := Default(); l.Enabled(core.InfoLevel) {
		l.write(core.InfoLevel, 1, msg)
	}
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	if l := Default(); l.Enabled(core.DebugLevel) {
		l.write(core.DebugLevel, 1, msg)
	}
}

// Trace logs a trace message using the default logger
func Trace(msg string) {
	if l := Default(); l.Enabled(core.TraceLevel) {
		l.write(core.TraceLevel, 1, msg)
	}
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	if l := Default(); l.Enabled(core.ErrorLevel) {
		l.writef(core.ErrorLevel, 1, format, args)
	}
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	if l := Default(); l.Enabled(core.WarnLevel) {
		l.writef(core.WarnLevel, 1, format, args)
	}
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	if l := Default(); l.Enabled(core.InfoLevel) {
		l.writef(core.InfoLevel, 1, format, args)
	}
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	if l := Default(); l.Enabled(core.DebugLevel) {
		l.writef(core.DebugLevel, 1, format, args)
	}
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	if l := Default(); l.Enabled(core.TraceLevel) {
		l.writef(core.TraceLevel, 1, format, args)
	}
}
