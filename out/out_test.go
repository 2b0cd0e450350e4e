package out

import (
	"testing"

	"github.com/philipp01105/minilog/core"
)

func TestRecordFramer(t *testing.T) {
	tests := []struct {
		name  string
		calls []struct {
			p   string
			eol bool
		}
		want []bool
	}{
		{
			name: "single line",
			calls: []struct {
				p   string
				eol bool
			}{{"line", true}},
			want: []bool{false},
		},
		{
			name: "chunked line ending on boundary",
			calls: []struct {
				p   string
				eol bool
			}{{"chunk", false}, {"", true}},
			want: []bool{false, true},
		},
		{
			name: "chunked line with tail",
			calls: []struct {
				p   string
				eol bool
			}{{"chunk", false}, {"tail", true}},
			want: []bool{false, false},
		},
		{
			name: "explicit flush of nothing",
			calls: []struct {
				p   string
				eol bool
			}{{"", false}, {"line", true}},
			want: []bool{true, false},
		},
		{
			name: "empty line",
			calls: []struct {
				p   string
				eol bool
			}{{"", true}, {"", true}},
			want: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recordFramer
			for i, c := range tt.calls {
				if got := r.skip([]byte(c.p), c.eol); got != tt.want[i] {
					t.Errorf("call %d skip(%q, %v) = %v, want %v", i, c.p, c.eol, got, tt.want[i])
				}
			}
		})
	}
}

func TestNoop(t *testing.T) {
	var n Noop
	n.Open(core.ErrorLevel, "- [x.go:1] - ")
	n.WriteText("ignored\n")
	if w, err := n.WriteString("abc"); w != 3 || err != nil {
		t.Errorf("WriteString() = %d, %v", w, err)
	}
	if w, err := n.Write([]byte("abcd")); w != 4 || err != nil {
		t.Errorf("Write() = %d, %v", w, err)
	}
	n.Flush()
	if n.Len() != 0 || n.Close() != nil {
		t.Error("Noop should hold nothing")
	}
}

// sinkSurface is the call surface every adapter provides
type sinkSurface interface {
	Open(core.Level, string)
	WriteText(string)
	WriteString(string) (int, error)
	Write([]byte) (int, error)
	Flush()
	Close() error
	Len() int
}

var (
	_ sinkSurface = (*FdWriter)(nil)
	_ sinkSurface = (*Noop)(nil)
	_ sinkSurface = (*Out)(nil)
)

func TestConstructors(t *testing.T) {
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &countingWriter{}, &countingWriter{}
	defer func() { Stdout, Stderr = prevOut, prevErr }()

	ctors := []func(string) *Out{Error, Warn, Info, Debug, Trace}
	for _, ctor := range ctors {
		o := ctor("")
		if o == nil {
			t.Fatal("constructor returned nil")
		}
		o.WriteText("line\n")
		if o.Len() != 0 {
			t.Errorf("Len() after line = %d, want 0", o.Len())
		}
		o.Close()
	}
}
