// Package logrushandler forwards logrus entries to minilog through a
// logrus.Hook.
//
// NewLogger returns a *logrus.Logger whose own output is discarded, so
// every entry is written exactly once by minilog. Hook can also be added
// to an existing logger to mirror its entries.
package logrushandler
