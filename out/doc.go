// Package out provides the platform emission adapters that sit behind a
// sink.Buffer, and selects one of them at build time as Out.
//
// Every adapter has the same surface: Open (or the Error, Warn, Info,
// Debug and Trace constructors) preloads the severity tag and call-site
// location, Write/WriteString/WriteText stream text, Flush and Close emit
// what is pending. Nothing returns an error to the caller; a failed
// platform write drops the text.
//
// Adapters:
//
//   - FdWriter writes to numeric descriptors: stderr for ERROR and WARN,
//     stdout for the rest. Lines carry a local timestamp. Used on unix,
//     windows and wasip1.
//   - Console calls console.error/warn/info/debug/trace (js/wasm).
//   - AndroidLog calls __android_log_write with a per-level priority
//     (android with cgo).
//   - Noop discards everything. It is selected with the minilog_noop
//     build tag or when no other adapter fits the target.
package out
