//go:build js && wasm

package out

import (
	"syscall/js"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/sink"
)

// ConsoleCapacity is the buffer capacity of a Console
const ConsoleCapacity = sink.MaxCapacity

var consoleMethods = [...]string{
	core.NoneLevel:  "log",
	core.ErrorLevel: "error",
	core.WarnLevel:  "warn",
	core.InfoLevel:  "info",
	core.DebugLevel: "debug",
	core.TraceLevel: "trace",
}

// Console buffers one log line and hands it to the browser console
// method matching its level. Every flush is one console call.
type Console struct {
	method string
	framer recordFramer
	pooled bool
	buf    sink.Buffer
}

var consolePool pool[Console]

type consoleEmitter Console

func (e *consoleEmitter) Emit(p []byte, eol bool) {
	if e.framer.skip(p, eol) {
		return
	}
	js.Global().Get("console").Call(e.method, string(p))
}

// Open resets c for a new line at level
func (c *Console) Open(level core.Level, location string) {
	c.method = "log"
	if level.Valid() {
		c.method = consoleMethods[level]
	}
	c.framer = recordFramer{}
	c.buf.Init(ConsoleCapacity, (*consoleEmitter)(c))
	c.buf.WriteText(level.Tag())
	c.buf.WriteText(location)
}

// WriteText appends s
func (c *Console) WriteText(s string) {
	c.buf.WriteText(s)
}

// WriteString implements io.StringWriter
func (c *Console) WriteString(s string) (int, error) {
	return c.buf.WriteString(s)
}

// Write implements io.Writer
func (c *Console) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// Flush emits the pending text as one console call
func (c *Console) Flush() {
	c.buf.Flush()
}

// Close flushes pending text, if any. A console taken from Open goes
// back to the pool.
func (c *Console) Close() error {
	if c.buf.Len() > 0 {
		c.buf.Flush()
	}
	if c.pooled {
		c.pooled = false
		consolePool.put(c)
	}
	return nil
}

func (c *Console) markPooled() {
	c.pooled = true
}

// Len returns the number of pending bytes
func (c *Console) Len() int {
	return c.buf.Len()
}
