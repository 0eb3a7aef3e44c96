package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// Write writes the config to a file in TOML format, creating the parent
// directory if needed.
func Write(path string, cfg *Config) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return &wferrors.ConfigError{Path: path, Err: wferrors.Path("create", configDir, err)}
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return &wferrors.ConfigError{Path: path, Err: fmt.Errorf("encode: %w", err)}
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return &wferrors.ConfigError{Path: path, Err: wferrors.Path("write", path, err)}
	}

	return nil
}
