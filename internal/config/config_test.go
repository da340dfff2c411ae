package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/config/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_LoadInventory_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := configloader.LoadFrom[*InventoryConfig]("inventory",
		filepath.Join(dir, "inventory.yaml"), filepath.Join(dir, ".env"), InventoryDefaults())

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "1", cfg.CodePrefix)
	assert.True(t, cfg.Seed)
}

func Test_LoadInventory_Layering(t *testing.T) {
	// given
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "inventory.yaml", "log:\n  level: info\ncodeprefix: \"2\"\nseed: true\n")
	envFile := writeFile(t, dir, ".env", "INVENTORY_SEED=false\nLEDGER_SEED=true\n")
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")
	// when
	cfg, err := configloader.LoadFrom[*InventoryConfig]("inventory", yamlFile, envFile, InventoryDefaults())
	// then
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level, "system env wins over yaml")
	assert.Equal(t, "2", cfg.CodePrefix, "yaml wins over defaults")
	assert.False(t, cfg.Seed, ".env wins over yaml")
}

func Test_LoadLedger(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "ledger.yaml", "minentries: 3\nmaxentries: 10\n")

	cfg, err := configloader.LoadFrom[*LedgerConfig]("ledger", yamlFile, filepath.Join(dir, ".env"), LedgerDefaults())

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinEntries)
	assert.Equal(t, 10, cfg.MaxEntries)
	assert.Equal(t, "1", cfg.CodePrefix)
}

func Test_LoadLedger_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDGER_CODEPREFIX", "9")
	t.Setenv("LEDGER_MAXENTRIES", "5")

	cfg, err := configloader.LoadFrom[*LedgerConfig]("ledger", filepath.Join(dir, "ledger.yaml"), filepath.Join(dir, ".env"), LedgerDefaults())

	require.NoError(t, err)
	assert.Equal(t, "9", cfg.CodePrefix)
	assert.Equal(t, 5, cfg.MaxEntries)
	assert.Equal(t, 2, cfg.MinEntries)
}

func Test_LoadLedger_Invalid(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "ledger.yaml", "minentries: 5\nmaxentries: 4\n")

	_, err := configloader.LoadFrom[*LedgerConfig]("ledger", yamlFile, filepath.Join(dir, ".env"), LedgerDefaults())

	assert.ErrorContains(t, err, "config validation failed")
}

func Test_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         configloader.Validator
		expectError bool
	}{
		{name: "inventory ok", cfg: &InventoryConfig{CodePrefix: "1"}},
		{name: "inventory empty prefix", cfg: &InventoryConfig{}, expectError: true},
		{name: "inventory letters in prefix", cfg: &InventoryConfig{CodePrefix: "A"}, expectError: true},
		{name: "inventory bad log level", cfg: &InventoryConfig{CodePrefix: "1", Log: config.LogConfig{Level: "loud"}}, expectError: true},
		{name: "ledger ok", cfg: &LedgerConfig{CodePrefix: "1", MinEntries: 2, MaxEntries: 40}},
		{name: "ledger zero min", cfg: &LedgerConfig{CodePrefix: "1", MinEntries: 0, MaxEntries: 40}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_String(t *testing.T) {
	inv := &InventoryConfig{CodePrefix: "1", Seed: true, Log: config.LogConfig{Level: "warn"}}
	assert.Contains(t, inv.String(), "codeprefix: 1")
	assert.Contains(t, inv.String(), "file: <stderr>")

	led := &LedgerConfig{CodePrefix: "1", MinEntries: 2, MaxEntries: 40}
	assert.Contains(t, led.String(), "entries: [2, 40]")
}
