// Package zaphandler provides a zapcore.Core that writes zap entries
// through minilog, so code built on go.uber.org/zap logs to the same
// gate and platform sink as direct minilog calls.
package zaphandler
