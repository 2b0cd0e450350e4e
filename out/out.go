package out

import "github.com/philipp01105/minilog/core"

// Open takes the platform sink for level from a pool and preloads it with
// its tag and location. Close ends the line and returns the sink to the
// pool; it must not be used afterwards.
func Open(level core.Level, location string) *Out {
	o := outPool.get()
	o.Open(level, location)
	o.markPooled()
	return o
}

// Error returns the platform sink for an error line
func Error(location string) *Out {
	return Open(core.ErrorLevel, location)
}

// Warn returns the platform sink for a warning line
func Warn(location string) *Out {
	return Open(core.WarnLevel, location)
}

// Info returns the platform sink for an info line
func Info(location string) *Out {
	return Open(core.InfoLevel, location)
}

// Debug returns the platform sink for a debug line
func Debug(location string) *Out {
	return Open(core.DebugLevel, location)
}

// Trace returns the platform sink for a trace line
func Trace(location string) *Out {
	return Open(core.TraceLevel, location)
}

// recordFramer tracks whether part of the current line has already been
// emitted. Destinations that treat every call as one record use it to drop
// empty records: an explicit flush of nothing, and the empty end-of-line
// flush that follows a chunked line.
type recordFramer struct {
	partial bool
}

// skip reports whether a flush of p should be suppressed, and updates the
// partial-line state.
func (r *recordFramer) skip(p []byte, eol bool) bool {
	if !eol {
		if len(p) == 0 {
			return true
		}
		r.partial = true
		return false
	}
	wasPartial := r.partial
	r.partial = false
	return wasPartial && len(p) == 0
}
