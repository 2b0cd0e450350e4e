// Package formatter renders key/value fields as text for the bridge
// handlers.
//
// Fields are appended as " key=value" after the message of a line. Values
// are rendered with Go's Append-style functions (strconv.AppendInt,
// time.AppendFormat) into a pooled buffer, so common types do not
// allocate. Strings containing spaces, quotes, '=' or control characters
// are quoted, which keeps an embedded line feed from splitting a record.
//
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
