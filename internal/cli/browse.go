package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/tui"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// programRunner runs a Bubble Tea model to completion.
type programRunner func(ctx context.Context, m tea.Model) (tea.Model, error)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse workflows interactively",
		Long: `Open an interactive browser over the local and upstream workflows.

Type to search, use the arrow keys to move and enter to print the selected
workflow. Ctrl+D removes the selected workflow from this session's local
set (files on disk are untouched) and Ctrl+R reloads from disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if IsNoTUI() {
				return fmt.Errorf("browse is interactive; use 'warpflow search' or 'warpflow list' with --no-tui")
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			return runBrowse(s.ctx, cmd.OutOrStdout(), s.repo, runFullScreen)
		},
	}

	return cmd
}

func runFullScreen(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
}

// runBrowse runs the browser with logging silenced and prints the selected
// workflow, if any.
func runBrowse(ctx context.Context, w io.Writer, repo store.Repository, run programRunner) error {
	restore := logger.Silence()
	finalModel, err := run(ctx, tui.NewBrowseModel(ctx, repo))
	restore()
	if err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	m, ok := finalModel.(tui.BrowseModel)
	if !ok {
		return fmt.Errorf("unexpected model type from browser")
	}
	if !m.DidConfirm() || m.GetSelected() == nil {
		return nil
	}

	_, err = fmt.Fprintln(w, tui.RenderWorkflow(*m.GetSelected(), 0))
	return err
}
