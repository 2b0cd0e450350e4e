package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Location returns the source-location prefix "- [file:line] - " of the
// caller skip frames above Location's caller. Location(0) describes the
// function calling Location. It returns "" when the frame is unavailable.
func Location(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return FormatLocation(file, line)
}

// FormatLocation renders a location prefix from a file path and line
func FormatLocation(file string, line int) string {
	if file == "" {
		return ""
	}
	base := filepath.Base(file)
	buf := make([]byte, 0, len(base)+16)
	buf = append(buf, "- ["...)
	buf = append(buf, base...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	buf = append(buf, "] - "...)
	return string(buf)
}
