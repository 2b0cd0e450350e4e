package out

import "github.com/philipp01105/minilog/core"

// Noop has the adapter surface and does nothing
type Noop struct{}

var noopPool pool[Noop]

// Open does nothing
func (Noop) Open(core.Level, string) {}

// WriteText discards s
func (Noop) WriteText(string) {}

// WriteString discards s and reports it as written
func (Noop) WriteString(s string) (int, error) { return len(s), nil }

// Write discards p and reports it as written
func (Noop) Write(p []byte) (int, error) { return len(p), nil }

// Flush does nothing
func (Noop) Flush() {}

// Close does nothing
func (Noop) Close() error { return nil }

// Len is always zero
func (Noop) Len() int { return 0 }

func (Noop) markPooled() {}
