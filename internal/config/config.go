// Package config holds the configuration of the inventory and ledger programs.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/config/configloader"
)

var _ configloader.Validator = (*InventoryConfig)(nil)
var _ configloader.Validator = (*LedgerConfig)(nil)

type InventoryConfig struct {
	Log        config.LogConfig `koanf:"log"`
	CodePrefix string           `koanf:"codeprefix"`
	// Seed loads the demonstration catalogue at start.
	Seed bool `koanf:"seed"`
}

// InventoryDefaults are applied before any file or environment source.
func InventoryDefaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"codeprefix": "1",
		"seed":       true,
	}
}

func (c *InventoryConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString("\n--- Inventory ---\n")
	b.WriteString(fmt.Sprintf("  codeprefix: %s\n", c.CodePrefix))
	b.WriteString(fmt.Sprintf("  seed: %t\n", c.Seed))
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *InventoryConfig) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return validatePrefix(c.CodePrefix)
}

type LedgerConfig struct {
	Log        config.LogConfig `koanf:"log"`
	CodePrefix string           `koanf:"codeprefix"`
	// MinEntries and MaxEntries bound the number of expenses entered at start.
	MinEntries int `koanf:"minentries"`
	MaxEntries int `koanf:"maxentries"`
}

// LedgerDefaults are applied before any file or environment source.
func LedgerDefaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"codeprefix": "1",
		"minentries": 2,
		"maxentries": 40,
	}
}

func (c *LedgerConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString("\n--- Ledger ---\n")
	b.WriteString(fmt.Sprintf("  codeprefix: %s\n", c.CodePrefix))
	b.WriteString(fmt.Sprintf("  entries: [%d, %d]\n", c.MinEntries, c.MaxEntries))
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *LedgerConfig) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := validatePrefix(c.CodePrefix); err != nil {
		return err
	}
	if c.MinEntries < 1 {
		return fmt.Errorf("minentries must be at least 1, got %d", c.MinEntries)
	}
	if c.MaxEntries < c.MinEntries {
		return fmt.Errorf("maxentries (%d) must not be below minentries (%d)", c.MaxEntries, c.MinEntries)
	}
	return nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("codeprefix is not configured")
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return fmt.Errorf("codeprefix must contain digits only: %q", prefix)
		}
	}
	return nil
}
