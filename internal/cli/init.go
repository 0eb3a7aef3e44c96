package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/config"
	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath  string
	Local       string
	UpstreamURL string
	Branch      string
	NoUpstream  bool
	Force       bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a warpflow configuration file",
		Long: `Write a configuration file with the default settings.

The init command asks for:
- The local directory holding your own workflows
- The upstream repository to clone shared workflows from
- The upstream branch

Use --no-tui with flags for scripted setup. An existing file is only
replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigPath == "" {
				opts.ConfigPath = ConfigPath
			}
			if IsNoTUI() {
				return runInitNonInteractive(cmd.OutOrStdout(), opts)
			}
			return runInitInteractive(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Local, "local", "", "directory holding your own workflows")
	cmd.Flags().StringVar(&opts.UpstreamURL, "upstream-url", "", "git URL of the shared workflow repository")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "upstream branch")
	cmd.Flags().BoolVar(&opts.NoUpstream, "no-upstream", false, "do not clone the upstream repository")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

// runInitInteractive asks for the settings, then writes the config.
func runInitInteractive(w io.Writer, opts *InitOptions) error {
	defaults := config.DefaultConfig()
	enabled := !opts.NoUpstream

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Local workflows directory").
				Description("Searched recursively for .yaml and .yml files").
				Value(&opts.Local).Placeholder(defaults.Local.Path),
			huh.NewConfirm().
				Title("Clone shared workflows?").
				Value(&enabled),
		),
	).Run(); err != nil {
		return formError(err)
	}
	opts.NoUpstream = !enabled

	if enabled {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Upstream URL").
					Description("Git remote URL (HTTPS or SSH)").
					Value(&opts.UpstreamURL).Placeholder(defaults.Upstream.URL),
				huh.NewInput().
					Title("Upstream branch").
					Value(&opts.Branch).Placeholder(defaults.Upstream.Branch),
			),
		).Run(); err != nil {
			return formError(err)
		}
	}

	return runInitNonInteractive(w, opts)
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("init cancelled")
	}
	return fmt.Errorf("form error: %w", err)
}

// runInitNonInteractive builds the config from opts and writes it.
func runInitNonInteractive(w io.Writer, opts *InitOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return fmt.Errorf("%w: cannot determine config path; use --config", wferrors.ErrInvalid)
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%w: config already exists at %s (use --force to overwrite)", wferrors.ErrInvalid, path)
	}

	cfg := buildConfig(opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := os.MkdirAll(cfg.Local.Path, 0755); err != nil {
		return wferrors.Path("create", cfg.Local.Path, err)
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Wrote config to %s\n", path)
	return err
}

// buildConfig overlays the flag values on the defaults.
func buildConfig(opts *InitOptions) *config.Config {
	cfg := config.DefaultConfig()

	if opts.Local != "" {
		cfg.Local.Path = config.ExpandHome(opts.Local)
	}
	if opts.UpstreamURL != "" {
		cfg.Upstream.URL = opts.UpstreamURL
	}
	if opts.Branch != "" {
		cfg.Upstream.Branch = opts.Branch
	}
	if opts.NoUpstream {
		cfg.Upstream.Enabled = false
	}

	return cfg
}
