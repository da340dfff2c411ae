// Package app contains the application setup for the inventory and ledger programs.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abgdnv/storekeeper/internal/config"
	"github.com/abgdnv/storekeeper/internal/idgen"
	"github.com/abgdnv/storekeeper/internal/inventory"
	"github.com/abgdnv/storekeeper/internal/ledger"
	"github.com/abgdnv/storekeeper/internal/store"
	"github.com/abgdnv/storekeeper/pkg/logger"
	"github.com/google/uuid"
)

type InventoryDependencies struct {
	ProductService inventory.ProductService
	Logger         *slog.Logger
}

// SetupInventory builds the product catalogue and loads the demo products when cfg.Seed is set.
func SetupInventory(ctx context.Context, cfg *config.InventoryConfig, logger *slog.Logger) (*InventoryDependencies, error) {
	codes := idgen.NewSequence(cfg.CodePrefix)
	pService := inventory.NewService(store.NewInMemory[inventory.Product](codes), logger)
	if cfg.Seed {
		if err := pService.Seed(ctx); err != nil {
			return nil, fmt.Errorf("failed to set up inventory: %w", err)
		}
	}

	return &InventoryDependencies{
		ProductService: pService,
		Logger:         logger,
	}, nil
}

type LedgerDependencies struct {
	ExpenseService ledger.ExpenseService
	Logger         *slog.Logger
}

func SetupLedger(cfg *config.LedgerConfig, logger *slog.Logger) *LedgerDependencies {
	codes := idgen.NewSequence(cfg.CodePrefix)
	return &LedgerDependencies{
		ExpenseService: ledger.NewService(store.NewInMemory[ledger.Expense](codes), logger),
		Logger:         logger,
	}
}

// NewSession returns a context tagged with a fresh session id, so that the log records
// of one console run can be told apart in a shared log file.
func NewSession(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, uuid.NewString())
}
