//go:build android && cgo

package out

/*
#cgo LDFLAGS: -llog
#include <android/log.h>
*/
import "C"

import (
	"unsafe"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/sink"
)

// AndroidCapacity matches the logd message limit
const AndroidCapacity = 4000

// android_LogPriority values
const (
	prioVerbose = 2
	prioDebug   = 3
	prioInfo    = 4
	prioWarn    = 5
	prioError   = 6
)

var androidPriorities = [...]int{
	core.NoneLevel:  prioInfo,
	core.ErrorLevel: prioError,
	core.WarnLevel:  prioWarn,
	core.InfoLevel:  prioInfo,
	core.DebugLevel: prioDebug,
	core.TraceLevel: prioVerbose,
}

// androidTag is allocated once and lives for the process
var androidTag = C.CString("minilog")

// logWrite hands one NUL-terminated record to logd
var logWrite = func(prio int, text []byte) {
	C.__android_log_write(C.int(prio), androidTag, (*C.char)(unsafe.Pointer(&text[0])))
}

// AndroidLog buffers one log line and writes it to logd. The text is
// NUL-terminated in the buffer's reserved byte before the call.
type AndroidLog struct {
	prio   int
	framer recordFramer
	pooled bool
	buf    sink.Buffer
}

var androidPool pool[AndroidLog]

type androidEmitter AndroidLog

func (e *androidEmitter) Emit(p []byte, eol bool) {
	if e.framer.skip(p, eol) {
		return
	}
	logWrite(e.prio, e.buf.Terminated(0))
}

// Open resets l for a new line at level
func (l *AndroidLog) Open(level core.Level, location string) {
	l.prio = prioInfo
	if level.Valid() {
		l.prio = androidPriorities[level]
	}
	l.framer = recordFramer{}
	l.buf.Init(AndroidCapacity, (*androidEmitter)(l))
	l.buf.WriteText(level.Tag())
	l.buf.WriteText(location)
}

// WriteText appends s
func (l *AndroidLog) WriteText(s string) {
	l.buf.WriteText(s)
}

// WriteString implements io.StringWriter
func (l *AndroidLog) WriteString(s string) (int, error) {
	return l.buf.WriteString(s)
}

// Write implements io.Writer
func (l *AndroidLog) Write(p []byte) (int, error) {
	return l.buf.Write(p)
}

// Flush writes the pending text as one log record
func (l *AndroidLog) Flush() {
	l.buf.Flush()
}

// Close flushes pending text, if any. A logger taken from Open goes
// back to the pool.
func (l *AndroidLog) Close() error {
	if l.buf.Len() > 0 {
		l.buf.Flush()
	}
	if l.pooled {
		l.pooled = false
		androidPool.put(l)
	}
	return nil
}

func (l *AndroidLog) markPooled() {
	l.pooled = true
}

// Len returns the number of pending bytes
func (l *AndroidLog) Len() int {
	return l.buf.Len()
}
