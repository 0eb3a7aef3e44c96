package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/app"
)

// StatusOptions contains the options for the status command.
type StatusOptions struct {
	JSON bool
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	opts := &StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where workflows are loaded from",
		Long: `Display the workflow sources and the state of the upstream clone.

Shows:
- The config file in use
- The local directory and how many workflows it holds
- The upstream URL, branch, clone directory and workflow count
- The checked out commit and any locally modified files in the clone
- A warning when the clone's origin is not the configured URL`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}

			status, err := app.Status(s.ctx, s.configPath, s.repo)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			if opts.JSON {
				return printStatusJSON(cmd.OutOrStdout(), status)
			}
			return printStatusPlain(cmd.OutOrStdout(), status)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")

	return cmd
}

// printStatusPlain prints status in plain text format.
func printStatusPlain(w io.Writer, status *app.StatusOutput) error {
	configPath := status.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	fmt.Fprintf(w, "Config: %s\n\n", configPath)

	fmt.Fprintf(w, "Local:\n")
	fmt.Fprintf(w, "  Path: %s\n", status.Local.Path)
	fmt.Fprintf(w, "  Workflows: %d\n\n", status.Local.Workflows)

	up := status.Upstream
	fmt.Fprintf(w, "Upstream:\n")
	fmt.Fprintf(w, "  URL: %s\n", up.URL)
	if up.Branch != "" {
		fmt.Fprintf(w, "  Branch: %s\n", up.Branch)
	}
	fmt.Fprintf(w, "  Path: %s\n", up.Path)
	fmt.Fprintf(w, "  Workflows: %d\n", up.Workflows)

	if !up.Cloned {
		_, err := fmt.Fprintf(w, "  Clone: missing\n")
		return err
	}

	head := up.Head
	if len(head) > 12 {
		head = head[:12]
	}
	fmt.Fprintf(w, "  Head: %s\n", head)
	if up.RemoteMismatch {
		fmt.Fprintf(w, "  Remote: %s (differs from configured URL; remove %s to re-clone)\n", up.Remote, up.Path)
	}
	if len(up.Modified) == 0 {
		_, err := fmt.Fprintf(w, "  Clone: clean\n")
		return err
	}

	fmt.Fprintf(w, "  Clone: %d modified file(s)\n", len(up.Modified))
	for _, path := range up.Modified {
		fmt.Fprintf(w, "    %s\n", path)
	}
	return nil
}

// printStatusJSON prints status in JSON format.
func printStatusJSON(w io.Writer, status *app.StatusOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(status); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
