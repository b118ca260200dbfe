package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"osmbox/internal/cli"
	"osmbox/internal/config"
	"osmbox/internal/logging"
	"osmbox/internal/tui"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.Debug("config loaded", "output", cfg.Output.Format, "presets", len(cfg.Presets))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	deps := cli.Dependencies{
		Config:  cfg,
		Version: version,
		RunViewer: func(ctx context.Context, opts tui.Options) error {
			opts.LogLevel = cfg.Log.Level
			return tui.Run(ctx, opts)
		},
	}
	code := cli.Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
