package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// DefaultConfigPath returns ~/.config/warpflow/config.toml, or an empty
// string when the home directory cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "warpflow", "config.toml")
}

// DetectConfigPath returns the config file to use, or empty string if none
// exists.
//
// Search order:
// 1. $WARPFLOW_CONFIG
// 2. ~/.config/warpflow/config.toml
func DetectConfigPath() string {
	if path := os.Getenv("WARPFLOW_CONFIG"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if path := DefaultConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error wrapping ErrNotFound.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &wferrors.ConfigError{Path: path, Err: wferrors.Path("read", path, err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, &wferrors.ConfigError{Path: path, Err: wferrors.Parse(err)}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &wferrors.ConfigError{
			Path: path,
			Err:  fmt.Errorf("%w: unknown keys: %s", wferrors.ErrInvalid, strings.Join(keys, ", ")),
		}
	}

	applyEnvOverrides(cfg)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &wferrors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults loads the config found by DetectConfigPath.
// If no config file is found, returns the defaults with environment
// overrides applied.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)

		if err := cfg.Validate(); err != nil {
			return nil, &wferrors.ConfigError{Err: err}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: WARPFLOW_<SECTION>_<FIELD>
//
// Examples:
// - WARPFLOW_LOCAL_PATH overrides [local].path
// - WARPFLOW_UPSTREAM_ENABLED overrides [upstream].enabled
// - WARPFLOW_LOG_LEVEL overrides [log].level
//
// Boolean fields: use "true"/"false" strings. Unparseable values are ignored.
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			if i, err := strconv.Atoi(val); err == nil {
				*target = i
			}
		}
	}

	// Local section
	applyString("WARPFLOW_LOCAL_PATH", &c.Local.Path)

	// Upstream section
	applyBool("WARPFLOW_UPSTREAM_ENABLED", &c.Upstream.Enabled)
	applyString("WARPFLOW_UPSTREAM_URL", &c.Upstream.URL)
	applyString("WARPFLOW_UPSTREAM_BRANCH", &c.Upstream.Branch)
	applyString("WARPFLOW_UPSTREAM_PATH", &c.Upstream.Path)
	applyInt("WARPFLOW_UPSTREAM_DEPTH", &c.Upstream.Depth)

	// Log section
	applyString("WARPFLOW_LOG_LEVEL", &c.Log.Level)
	applyString("WARPFLOW_LOG_FORMAT", &c.Log.Format)

	// Output section
	applyString("WARPFLOW_OUTPUT_FORMAT", &c.Output.Format)
}

// expandPaths expands a leading ~ to the home directory in every path.
func expandPaths(c *Config) {
	c.Local.Path = ExpandHome(c.Local.Path)
	c.Upstream.Path = ExpandHome(c.Upstream.Path)
}

// ExpandHome replaces a leading "~" or "~/" in path with the user's home
// directory. Other paths are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
}
