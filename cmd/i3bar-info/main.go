// Package main is the entry point for i3bar-info, a status-line producer for
// the i3bar protocol.
//
// The protocol stream goes to stdout; diagnostics go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jamesprial/i3bar-info/internal/bar"
	"github.com/jamesprial/i3bar-info/internal/config"
	"github.com/jamesprial/i3bar-info/internal/provider"
	"github.com/jamesprial/i3bar-info/internal/system"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger, err = newLogger(cfg, os.Stderr)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, system.NewGopsutilHost(), os.Stdout, logger); err != nil {
		logger.Error("i3bar-info stopped", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the file named by I3BAR_INFO_CONFIG_PATH when set, falls
// back to defaults otherwise, then applies environment overrides.
func loadConfig(logger *slog.Logger) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := os.Getenv(config.EnvConfigPath); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded config", "path", path)
		cfg = loaded
	}

	config.ApplyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text logger on w at the configured level.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return slog.New(slog.NewTextHandler(w, nil)), err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// run resolves the process-wide inputs once, then streams ticks to out until
// ctx is cancelled or out fails.
func run(ctx context.Context, cfg *config.Config, host system.Host, out io.Writer, logger *slog.Logger) error {
	processors, err := host.ProcessorCount(ctx)
	if err != nil {
		return err
	}
	if processors <= 0 {
		return fmt.Errorf("processor count %d is not positive", processors)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger.Info("starting",
		"processors", processors,
		"timezone", loc.String(),
		"battery", cfg.Paths.Battery,
		"thermal", cfg.Paths.Thermal,
	)

	providers := provider.Standard(provider.Options{
		Host:        host,
		Processors:  processors,
		BatteryPath: cfg.Paths.Battery,
		ThermalPath: cfg.Paths.Thermal,
		Location:    loc,
	})
	stream := bar.NewStream(out, bar.NewComposer(providers, logger))
	return stream.Run(ctx)
}
