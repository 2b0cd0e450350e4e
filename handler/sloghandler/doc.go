// Package sloghandler provides an adapter from log/slog to minilog,
// allowing minilog to serve as the backend of the standard library's
// structured logging.
package sloghandler
