package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/tui"
	"github.com/chazuruo/warpflow/internal/workflows"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// ShowOptions contains the options for the show command.
type ShowOptions struct {
	Raw bool
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a workflow",
		Long: `Display a workflow's command, arguments and metadata.

The name must match exactly. When a local and an upstream workflow share a
name, the local one is shown. Use --raw to print the YAML document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			return runShow(cmd.OutOrStdout(), s.repo, args[0], opts.Raw)
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the workflow as YAML")

	return cmd
}

func runShow(w io.Writer, repo store.Repository, name string, raw bool) error {
	wf, err := repo.GetWorkflow(name)
	if err != nil {
		return err
	}

	if raw {
		data, err := workflows.MarshalWorkflow(&wf)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	_, err = fmt.Fprintln(w, tui.RenderWorkflow(wf, 0))
	return err
}
