// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/app"
	"github.com/chazuruo/warpflow/internal/config"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// ConfigPath is the config file given with --config.
	ConfigPath string

	// LogLevel overrides [log].level when set with --log-level.
	LogLevel string

	// noTUIMutex protects NoTUI for concurrent access.
	noTUIMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text or JSON output")
	cmd.PersistentFlags().StringVar(&ConfigPath, "config", "",
		"config file path (default ~/.config/warpflow/config.toml)")
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "",
		"log level: trace, debug, info, warn or error")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	noTUIMutex.RLock()
	defer noTUIMutex.RUnlock()
	return NoTUI
}

// SetNoTUI sets the NoTUI flag.
func SetNoTUI(v bool) {
	noTUIMutex.Lock()
	defer noTUIMutex.Unlock()
	NoTUI = v
}

// loadConfig loads the config named by --config, or the detected one.
// It returns the config and the path it came from ("" for defaults).
func loadConfig() (*config.Config, string, error) {
	if ConfigPath != "" {
		cfg, err := config.Load(ConfigPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, ConfigPath, nil
	}

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, config.DetectConfigPath(), nil
}

// configureLogging applies the [log] section, with --log-level taking
// precedence.
func configureLogging(cfg *config.Config) error {
	level := cfg.Log.Level
	if LogLevel != "" {
		level = LogLevel
	}
	if err := logger.SetLogLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLogFormat(cfg.Log.Format)
	return nil
}

// session is what a command needs after startup.
type session struct {
	ctx        context.Context
	cfg        *config.Config
	configPath string
	repo       *store.Composite
}

// openSession loads config, sets up logging and opens the workflow stores.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := configureLogging(cfg); err != nil {
		return nil, err
	}

	ctx := logger.WithLogger(cmd.Context(), logger.L.WithField("cmd", cmd.Name()))

	repo, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &session{ctx: ctx, cfg: cfg, configPath: path, repo: repo}, nil
}
