// Package main runs the store inventory console.
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

const programName = "inventory"

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, sets up logging and the product catalogue, and serves the menu on stdin/stdout.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.InventoryConfig](programName, config.InventoryDefaults())
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
	deps, err := app.SetupInventory(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Inventory started")

	ui := console.NewInventory(deps.ProductService, console.NewPrompter(os.Stdin, os.Stdout), deps.Logger)
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("inventory menu failed: %w", err)
	}
	logger.InfoContext(ctx, "Inventory stopped")
	return nil
}
