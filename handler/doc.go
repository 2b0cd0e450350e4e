// Package handler connects other logging front-ends to minilog.
//
// Each subpackage adapts one API and sends its records through a
// logger.Logger, so the level gate, the per-line sink and the platform
// adapter are the same ones used by direct calls:
//
//   - sloghandler implements log/slog.Handler.
//   - zaphandler implements go.uber.org/zap/zapcore.Core.
//   - logrushandler implements a github.com/sirupsen/logrus Hook.
//   - zerologhandler implements github.com/rs/zerolog.LevelWriter.
//
// Foreign levels are folded onto ERROR, WARN, INFO, DEBUG and TRACE;
// anything more severe than an error is logged as ERROR. Record
// attributes are appended to the message as " key=value" text.
package handler
