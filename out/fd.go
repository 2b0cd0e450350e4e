package out

import (
	"io"
	"sync/atomic"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/sink"
)

// FdCapacity is the buffer capacity of an FdWriter
const FdCapacity = sink.MaxCapacity

var (
	// Stdout receives INFO, DEBUG and TRACE lines
	Stdout io.Writer = FD(1)
	// Stderr receives ERROR and WARN lines
	Stderr io.Writer = FD(2)
)

var noTimestamps atomic.Bool

// SetTimestamps enables or disables the timestamp block on FdWriter lines.
// Timestamps are enabled by default.
func SetTimestamps(enabled bool) {
	noTimestamps.Store(!enabled)
}

// Timestamps reports whether FdWriter lines carry a timestamp
func Timestamps() bool {
	return !noTimestamps.Load()
}

// FdWriter buffers one log line and writes it to a descriptor stream.
// A line ending with a line feed is written with a single Write call.
type FdWriter struct {
	stream io.Writer
	pooled bool
	buf    sink.Buffer
}

var fdPool pool[FdWriter]

// fdEmitter is the sink.Emitter view of an FdWriter
type fdEmitter FdWriter

func (e *fdEmitter) Emit(p []byte, eol bool) {
	if eol {
		p = e.buf.Terminated('\n')
	}
	if len(p) == 0 || e.stream == nil {
		return
	}
	_, _ = e.stream.Write(p)
}

// Open resets w for a new line at level
func (w *FdWriter) Open(level core.Level, location string) {
	if level == core.ErrorLevel || level == core.WarnLevel {
		w.stream = Stderr
	} else {
		w.stream = Stdout
	}
	w.buf.Init(FdCapacity, (*fdEmitter)(w))
	w.buf.WriteText(level.Tag())
	if Timestamps() {
		ts := core.CurrentTimestamp()
		w.buf.Write(ts[:])
	}
	w.buf.WriteText(location)
}

// WriteText appends s
func (w *FdWriter) WriteText(s string) {
	w.buf.WriteText(s)
}

// WriteString implements io.StringWriter
func (w *FdWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Write implements io.Writer
func (w *FdWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Flush writes the pending text without a line feed
func (w *FdWriter) Flush() {
	w.buf.Flush()
}

// Close flushes pending text, if any. A writer taken from Open goes
// back to the pool.
func (w *FdWriter) Close() error {
	if w.buf.Len() > 0 {
		w.buf.Flush()
	}
	if w.pooled {
		w.pooled = false
		w.stream = nil
		fdPool.put(w)
	}
	return nil
}

func (w *FdWriter) markPooled() {
	w.pooled = true
}

// Len returns the number of pending bytes
func (w *FdWriter) Len() int {
	return w.buf.Len()
}
