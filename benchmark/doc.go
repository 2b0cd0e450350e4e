// Package benchmark compares minilog with zap, slog, logrus and zerolog
// writing to a discarding destination, and measures the bridges.
package benchmark
