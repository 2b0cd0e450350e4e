package logger_test

import (
	"fmt"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/logger"
	"github.com/philipp01105/minilog/sink"
)

// Set a level once at startup, then log through the package functions.
func Example() {
	logger.SetLevel(logger.InfoLevel)

	logger.Info("Application started")
	logger.Debug("not written at INFO")
	logger.Warnf("disk %d%% full", 91)
}

// Redirect a Logger into any sink, here a small buffer that prints each
// completed line.
func ExampleNewBuilder() {
	printLine := sink.EmitterFunc(func(p []byte, eol bool) {
		fmt.Printf("%s\n", p)
	})

	log := logger.NewBuilder().
		WithGate(core.NewGate(logger.DebugLevel)).
		WithCaller(false).
		WithOpener(func(level core.Level, location string) logger.Sink {
			b := sink.New(128, printLine)
			b.WriteText(level.Tag())
			b.WriteText(location)
			return b
		}).
		Build()

	log.Info("ready")
	log.Debugf("port=%d", 8080)
	log.Trace("dropped")

	// Output:
	// INFO ready
	// DEBUG port=8080
}
