package core

import (
	"sync"
	"sync/atomic"
)

// Gate holds the minimum enabled level. The zero value is a gate with
// everything disabled.
//
// Loads and stores are atomic but unordered with respect to concurrent log
// calls: a call racing with SetLevel may observe either the old or the new
// level.
type Gate struct {
	level atomic.Uint32
}

// NewGate creates a gate set to level
func NewGate(level Level) *Gate {
	g := &Gate{}
	g.level.Store(uint32(level))
	return g
}

// SetLevel stores the minimum enabled level
func (g *Gate) SetLevel(level Level) {
	g.level.Store(uint32(level))
}

// Level returns the stored level
func (g *Gate) Level() Level {
	return Level(g.level.Load())
}

// IsEnabled reports whether calls at level pass the gate
func (g *Gate) IsEnabled(level Level) bool {
	return g.level.Load() >= uint32(level)
}

var (
	defaultGate   = NewGate(NoneLevel)
	bootstrapOnce sync.Once
)

// DefaultGate returns the process-wide gate used by the package-level
// functions and by every log call in the logger package.
func DefaultGate() *Gate {
	return defaultGate
}

// SetLevel sets the process-wide level. The first call also performs
// one-time platform setup (console code page on Windows).
func SetLevel(level Level) {
	bootstrapOnce.Do(bootstrap)
	defaultGate.SetLevel(level)
}

// CurrentLevel returns the process-wide level
func CurrentLevel() Level {
	return defaultGate.Level()
}

// IsEnabled reports whether level is enabled by the process-wide gate
func IsEnabled(level Level) bool {
	return defaultGate.IsEnabled(level)
}
