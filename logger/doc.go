// Package logger is the call-site API of minilog. Most programs only
// need this package.
//
// Nothing is written until a level is set; the process-wide gate starts
// at NoneLevel:
//
//	logger.SetLevel(logger.InfoLevel)
//	logger.Info("ready")
//	logger.Errorf("dial %s: %v", addr, err)
//
// Each enabled call opens one sink for its line, preloaded with the
// severity tag and a "- [file:line] - " prefix, streams the message into
// it and ends with a line feed, which flushes the line to the platform.
// Disabled calls cost one atomic load and one comparison. Sinks come
// from a pool, so an enabled call without a location does not allocate.
//
// Every call appends its own line feed: Info("done\n") prints "done"
// followed by an empty line.
//
// Levels can also be removed at build time. The tags minilog_error_off,
// minilog_warn_off, minilog_info_off, minilog_debug_off, minilog_trace_off
// and minilog_all_off make the matching calls no-ops regardless of the
// runtime level.
//
// A Logger built with NewBuilder can use its own Gate and Opener, which
// is how the bridges in the handler packages and the tests redirect
// output.
package logger
