// Package core defines the shared pieces every minilog call goes
// through before any text is buffered.
//
// Level is an ordered severity with a NoneLevel sentinel. Gate holds the
// minimum enabled level in a single atomic word; the process-wide gate
// behind SetLevel and IsEnabled is created at package initialization and
// lives for the life of the process. A level check is one atomic load
// and one integer comparison.
//
// FormatTimestamp and Location produce the fixed prefixes that sinks
// copy into their buffers: a 22-byte "[YYYY-MM-DD HH:MM:SS] " block and a
// "- [file:line] - " call-site marker.
package core
