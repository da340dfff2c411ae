package config

import (
	"fmt"
	"strings"
)

type LogConfig struct {
	Level string `koanf:"level"`
	// File receives the log output; stderr when empty.
	File string `koanf:"file"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	file := c.File
	if file == "" {
		file = "<stderr>"
	}
	b.WriteString(fmt.Sprintf("  file: %s\n", file))
	return b.String()
}

func (c *LogConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level: %q", c.Level)
	}
}
