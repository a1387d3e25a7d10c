package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps flag names whose config key is not the snake_case form.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-caller": "log.include_caller",
}

// skipFlags are flags that steer loading itself and are not config keys.
var skipFlags = map[string]bool{
	"config": true,
	"help":   true,
}

// findConfigFile returns the explicit path, else ./fsgraph.yaml or
// ./fsgraph.yml if one exists, else "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{DefaultFileName, "fsgraph.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// envKey maps FSGRAPH_LOG_LEVEL to log.level and FSGRAPH_MAX_DEPTH to max_depth.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}

	return key
}

// Load resolves the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags the user actually set override lower layers. An explicit
// cfgFile that cannot be read is an error; a missing default file is not.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"root":               DefaultRoot,
		"exclude":            []string{},
		"max_depth":          0,
		"style":              DefaultStyle,
		"log.level":          DefaultLogLevel,
		"log.format":         DefaultLogFormat,
		"log.include_caller": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment variables (FSGRAPH_ prefix); exclude is comma-separated.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		name := envKey(key)
		if name == "exclude" {
			return name, strings.Split(value, ",")
		}
		return name, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || skipFlags[f.Name] {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal and validate
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
