package zerologhandler

import (
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/logger"
	"github.com/philipp01105/minilog/sink"
)

type lineRecorder struct {
	mu      sync.Mutex
	pending strings.Builder
	lines   []string
}

func (r *lineRecorder) Emit(p []byte, eol bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Write(p)
	if eol {
		r.lines = append(r.lines, r.pending.String())
		r.pending.Reset()
	}
}

func (r *lineRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func newLogger(level core.Level, caller bool) (*logger.Logger, *lineRecorder) {
	rec := &lineRecorder{}
	l := logger.NewBuilder().
		WithGate(core.NewGate(level)).
		WithCaller(caller).
		WithOpener(func(level core.Level, location string) logger.Sink {
			b := sink.New(256, rec)
			b.WriteText(level.Tag())
			b.WriteText(location)
			return b
		}).
		Build()
	return l, rec
}

func TestWriter_Event(t *testing.T) {
	l, rec := newLogger(core.InfoLevel, false)
	log := NewLogger(l)

	log.Info().Str("user", "bob").Int("n", 3).Msg("hello")

	want := "INFO hello n=3 user=bob"
	if rec.String() != want {
		t.Errorf("output = %q, want %q", rec.String(), want)
	}
}

func TestWriter_LevelGate(t *testing.T) {
	l, rec := newLogger(core.WarnLevel, false)
	log := NewLogger(l)

	log.Debug().Msg("dropped")
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	log.Error().Str("op", "sync").Msg("failed")

	want := "WARN kept\nERROR failed op=sync"
	if rec.String() != want {
		t.Errorf("output = %q, want %q", rec.String(), want)
	}
}

func TestWriter_Caller(t *testing.T) {
	l, rec := newLogger(core.InfoLevel, true)
	log := NewLogger(l).With().Caller().Logger()

	log.Info().Msg("located")

	if !strings.HasPrefix(rec.String(), "INFO - [zerologhandler_test.go:") {
		t.Errorf("output = %q, want call site of the test", rec.String())
	}
}

func TestWriter_PlainWrite(t *testing.T) {
	l, rec := newLogger(core.InfoLevel, false)
	w := New(l)

	n, err := w.Write([]byte("not json\n"))
	if err != nil || n != len("not json\n") {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if rec.String() != "INFO not json" {
		t.Errorf("output = %q, want %q", rec.String(), "INFO not json")
	}
}

func TestWriter_Disabled(t *testing.T) {
	l, rec := newLogger(core.TraceLevel, false)
	if _, err := New(l).WriteLevel(zerolog.Disabled, []byte(`{"message":"x"}`)); err != nil {
		t.Fatalf("WriteLevel() error = %v", err)
	}
	if rec.String() != "" {
		t.Errorf("output = %q, want nothing", rec.String())
	}
}

func TestLevelFromZerolog(t *testing.T) {
	tests := []struct {
		zerologLevel zerolog.Level
		coreLevel    core.Level
	}{
		{zerolog.PanicLevel, core.ErrorLevel},
		{zerolog.FatalLevel, core.ErrorLevel},
		{zerolog.ErrorLevel, core.ErrorLevel},
		{zerolog.WarnLevel, core.WarnLevel},
		{zerolog.InfoLevel, core.InfoLevel},
		{zerolog.NoLevel, core.InfoLevel},
		{zerolog.DebugLevel, core.DebugLevel},
		{zerolog.TraceLevel, core.TraceLevel},
		{zerolog.Disabled, core.NoneLevel},
	}

	for _, tt := range tests {
		if got := LevelFromZerolog(tt.zerologLevel); got != tt.coreLevel {
			t.Errorf("LevelFromZerolog(%v) = %v, want %v", tt.zerologLevel, got, tt.coreLevel)
		}
	}
}
