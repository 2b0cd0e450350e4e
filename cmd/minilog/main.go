// Command minilog writes one line per severity through minilog and its
// bridges, as a quick check of the platform adapter.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipp01105/minilog/config"
	"github.com/philipp01105/minilog/handler/logrushandler"
	"github.com/philipp01105/minilog/handler/sloghandler"
	"github.com/philipp01105/minilog/handler/zaphandler"
	"github.com/philipp01105/minilog/handler/zerologhandler"
	"github.com/philipp01105/minilog/logger"
	"github.com/philipp01105/minilog/out"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "minilog: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("minilog", pflag.ContinueOnError)
	level := flags.StringP("level", "l", "", "log level (none, error, warn, info, debug, trace); overrides config and environment")
	configPath := flags.StringP("config", "c", "", "YAML config file")
	noTimestamps := flags.Bool("no-timestamps", false, "omit the timestamp block")
	bridges := flags.Bool("bridges", false, "also log through the slog, zap, logrus and zerolog bridges")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if flags.Changed("level") {
		cfg.Level = *level
	} else if cfg.Level == config.Default().Level {
		cfg.Level = "debug"
	}
	if *noTimestamps {
		disabled := false
		cfg.Timestamps = &disabled
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	logger.Errorf("error %s, %s", "sad", "2")
	logger.Error(strings.Repeat("0123456789", out.FdCapacity/10+1))
	logger.Warn("")
	logger.Warn("warn!")
	logger.Info("info!")
	logger.Debug("debug!")
	logger.Trace("trace!")

	if *bridges {
		logBridges(logger.Default())
	}
	return nil
}

func logBridges(l *logger.Logger) {
	slog.New(sloghandler.New(l)).Info("slog bridge", "handler", "sloghandler")

	z := zaphandler.NewLogger(l)
	z.Info("zap bridge", zap.String("handler", "zaphandler"))
	_ = z.Sync()

	logrushandler.NewLogger(l).WithField("handler", "logrushandler").Info("logrus bridge")

	zl := zerologhandler.NewLogger(l)
	zl.Info().Str("handler", "zerologhandler").Msg("zerolog bridge")
}
