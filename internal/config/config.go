// Package config provides configuration management for warpflow.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// DefaultUpstreamURL is the public collection of Warp workflows.
const DefaultUpstreamURL = "https://github.com/warpdotdev/workflows.git"

// Config is the top-level configuration struct for warpflow.
type Config struct {
	Local    LocalConfig    `toml:"local"`
	Upstream UpstreamConfig `toml:"upstream"`
	Log      LogConfig      `toml:"log"`
	Output   OutputConfig   `toml:"output"`
}

// LocalConfig contains settings for the user's own workflow directory.
type LocalConfig struct {
	// Path is the directory searched recursively for workflow YAML files.
	Path string `toml:"path"`
}

// UpstreamConfig contains settings for the shared workflow repository.
type UpstreamConfig struct {
	// Enabled controls whether the repository is cloned at startup. When
	// false, whatever is already at Path is still loaded.
	Enabled bool `toml:"enabled"`

	// URL is the git remote to clone.
	URL string `toml:"url"`

	// Branch is the branch to check out (empty uses the remote default).
	Branch string `toml:"branch"`

	// Path is the local clone directory.
	Path string `toml:"path"`

	// Depth creates a shallow clone with the given depth (0 = full clone).
	Depth int `toml:"depth"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of: trace, debug, info, warn, error.
	Level string `toml:"level"`

	// Format is one of: text, json.
	Format string `toml:"format"`
}

// OutputConfig contains settings for command output.
type OutputConfig struct {
	// Format is one of: table, json, plain.
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "warpflow")

	return &Config{
		Local: LocalConfig{
			Path: filepath.Join(dataDir, "workflows"),
		},
		Upstream: UpstreamConfig{
			Enabled: true,
			URL:     DefaultUpstreamURL,
			Branch:  "main",
			Path:    filepath.Join(dataDir, "upstream"),
			Depth:   1,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

var (
	validLogLevels     = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
	validOutputFormats = []string{"table", "json", "plain"}
)

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error wrapping
// ErrInvalid describing the first problem found.
func (c *Config) Validate() error {
	if c.Local.Path == "" {
		return invalid("local.path cannot be empty")
	}

	if c.Upstream.Path == "" {
		return invalid("upstream.path cannot be empty")
	}
	if c.Upstream.Enabled && c.Upstream.URL == "" {
		return invalid("upstream.url cannot be empty when upstream.enabled is true")
	}
	if c.Upstream.Depth < 0 {
		return invalid("upstream.depth must be >= 0; got %d", c.Upstream.Depth)
	}
	if c.Upstream.Path == c.Local.Path {
		return invalid("upstream.path and local.path must differ; both are %q", c.Local.Path)
	}

	if !oneOf(c.Log.Level, validLogLevels) {
		return invalid("log.level must be one of: %s; got %q", strings.Join(validLogLevels, ", "), c.Log.Level)
	}
	if !oneOf(c.Log.Format, validLogFormats) {
		return invalid("log.format must be one of: %s; got %q", strings.Join(validLogFormats, ", "), c.Log.Format)
	}

	if !oneOf(c.Output.Format, validOutputFormats) {
		return invalid("output.format must be one of: %s; got %q", strings.Join(validOutputFormats, ", "), c.Output.Format)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", wferrors.ErrInvalid, fmt.Sprintf(format, args...))
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
