package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/abgdnv/storekeeper/internal/config"
	"github.com/abgdnv/storekeeper/internal/inventory"
	"github.com/abgdnv/storekeeper/internal/ledger"
	pkgconfig "github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_SetupInventory(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       config.InventoryConfig
		wantCount int
		wantFirst string
	}{
		{
			name:      "seeded with default prefix",
			cfg:       config.InventoryConfig{Log: pkgconfig.LogConfig{Level: "warn"}, CodePrefix: "1", Seed: true},
			wantCount: inventory.DemoSize(),
			wantFirst: "10001",
		},
		{
			name:      "seeded with custom prefix",
			cfg:       config.InventoryConfig{CodePrefix: "7", Seed: true},
			wantCount: inventory.DemoSize(),
			wantFirst: "70001",
		},
		{
			name:      "empty catalogue",
			cfg:       config.InventoryConfig{CodePrefix: "1"},
			wantCount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ctx := context.Background()
			// when
			deps, err := SetupInventory(ctx, &tc.cfg, testLogger())
			// then
			require.NoError(t, err)
			list := deps.ProductService.List(ctx)
			require.Len(t, list, tc.wantCount)
			if tc.wantCount > 0 {
				assert.Equal(t, tc.wantFirst, list[0].Code)
			}
		})
	}
}

func Test_SetupLedger(t *testing.T) {
	ctx := context.Background()
	deps := SetupLedger(&config.LedgerConfig{CodePrefix: "1", MinEntries: 2, MaxEntries: 40}, testLogger())

	e, err := deps.ExpenseService.Add(ctx, ledger.ExpenseCreateDto{Name: "Rent", Value: decimal.NewFromInt(235)})

	require.NoError(t, err)
	assert.Equal(t, "10001", e.Code)
}

func Test_NewSession(t *testing.T) {
	first := logger.SessionID(NewSession(context.Background()))
	second := logger.SessionID(NewSession(context.Background()))

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
