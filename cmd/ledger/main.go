// Package main runs the personal expense ledger console.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/abgdnv/storekeeper/internal/app"
	"github.com/abgdnv/storekeeper/internal/config"
	"github.com/abgdnv/storekeeper/internal/console"
	"github.com/abgdnv/storekeeper/pkg/bootstrap"
	"github.com/abgdnv/storekeeper/pkg/config/configloader"
)

const programName = "ledger"

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.LedgerConfig](programName, config.LedgerDefaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logOut, closeLog, err := bootstrap.OpenLogOutput(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	logger := bootstrap.NewLogger(cfg.Log.Level, logOut)
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	ctx = app.NewSession(ctx)
	deps := app.SetupLedger(cfg, logger)
	logger.InfoContext(ctx, "Ledger started")

	ui := console.NewLedger(deps.ExpenseService, console.NewPrompter(os.Stdin, os.Stdout), deps.Logger, cfg.MinEntries, cfg.MaxEntries)
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("ledger menu failed: %w", err)
	}
	logger.InfoContext(ctx, "Ledger stopped")
	return nil
}
