package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"launchpad/config"
	"launchpad/internal/app"
	"launchpad/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "referralctl",
	Short:         "Operate the launchpad referral engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// withApp loads configuration, opens the engine and runs fn against it.
func withApp(ctx context.Context, fn func(*app.App, *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Server.Production(), cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a, logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
