// Package config loads fsgraph settings from defaults, an optional YAML
// file, FSGRAPH_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultRoot      = "."
	DefaultStyle     = "plain"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultFileName  = "fsgraph.yaml"
	EnvPrefix        = "FSGRAPH_"
)

// Config is the resolved configuration of one CLI invocation.
type Config struct {
	Root     string        `koanf:"root"`
	Exclude  []string      `koanf:"exclude"`
	MaxDepth int           `koanf:"max_depth"`
	Style    string        `koanf:"style"`
	Log      LoggingConfig `koanf:"log"`

	// File is the config file that was read, or "" if none.
	File string `koanf:"-"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `koanf:"level"`
	Format        string `koanf:"format"` // text|json
	IncludeCaller bool   `koanf:"include_caller"`
}

// Validate checks the values that cannot be caught by the type system.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("%w: root is required", ErrInvalidConfig)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	for _, p := range c.Exclude {
		if p == "" {
			return fmt.Errorf("%w: empty exclude pattern", ErrInvalidConfig)
		}
	}
	switch strings.ToLower(c.Style) {
	case "plain", "table":
	default:
		return fmt.Errorf("%w: style %q (want plain|table)", ErrInvalidConfig, c.Style)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text|json)", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}
