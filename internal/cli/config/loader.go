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

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > obadmin.yaml > obadmin.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"obadmin.yaml", "obadmin.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (OBADMIN_ prefix, double underscore nests:
	// OBADMIN_DISPLAY__PAGE_SIZE -> display.page_size)
	if err := k.Load(env.Provider("OBADMIN_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "OBADMIN_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI uses short flag names for the nested display keys.
			switch key {
			case "page_size":
				return "display.page_size", posflag.FlagVal(flags, f)
			case "max_columns":
				return "display.max_columns", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

func validate(cfg *Config) error {
	d := &cfg.Display
	if d.PageSize < 1 {
		return fmt.Errorf("display.page_size must be at least 1, got %d", d.PageSize)
	}
	if d.MinCellWidth > d.MaxCellWidth {
		return fmt.Errorf("display.min_cell_width (%d) must not exceed display.max_cell_width (%d)",
			d.MinCellWidth, d.MaxCellWidth)
	}
	return nil
}
