package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"local.path", cfg.Local.Path, filepath.Join(home, ".local", "share", "warpflow", "workflows")},
		{"upstream.enabled", cfg.Upstream.Enabled, true},
		{"upstream.url", cfg.Upstream.URL, DefaultUpstreamURL},
		{"upstream.branch", cfg.Upstream.Branch, "main"},
		{"upstream.path", cfg.Upstream.Path, filepath.Join(home, ".local", "share", "warpflow", "upstream")},
		{"upstream.depth", cfg.Upstream.Depth, 1},
		{"log.level", cfg.Log.Level, "warn"},
		{"log.format", cfg.Log.Format, "text"},
		{"output.format", cfg.Output.Format, "table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "empty local path",
			modify:  func(c *Config) { c.Local.Path = "" },
			wantErr: "local.path cannot be empty",
		},
		{
			name:    "empty upstream path",
			modify:  func(c *Config) { c.Upstream.Path = "" },
			wantErr: "upstream.path cannot be empty",
		},
		{
			name:    "enabled upstream without url",
			modify:  func(c *Config) { c.Upstream.URL = "" },
			wantErr: "upstream.url cannot be empty",
		},
		{
			name: "disabled upstream without url",
			modify: func(c *Config) {
				c.Upstream.Enabled = false
				c.Upstream.URL = ""
			},
		},
		{
			name:    "negative depth",
			modify:  func(c *Config) { c.Upstream.Depth = -1 },
			wantErr: "upstream.depth must be >= 0",
		},
		{
			name:   "full clone",
			modify: func(c *Config) { c.Upstream.Depth = 0 },
		},
		{
			name:    "shared directory",
			modify:  func(c *Config) { c.Upstream.Path = c.Local.Path },
			wantErr: "must differ",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level must be one of",
		},
		{
			name:    "bad log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format must be one of",
		},
		{
			name:    "bad output format",
			modify:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "output.format must be one of",
		},
		{
			name:   "json output",
			modify: func(c *Config) { c.Output.Format = "json" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, wferrors.IsInvalid(err))
		})
	}
}
