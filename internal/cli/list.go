package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/workflows"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	Tags   []string
	Format string
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workflows",
		Long: `List every loaded workflow, local ones first.

Use --tag (repeatable) to keep only workflows carrying all of the given tags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(opts.Format, s.cfg.Output.Format)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), s.repo, opts.Tags, format)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format: table, json or plain")

	return cmd
}

func runList(w io.Writer, repo store.Repository, tags []string, format string) error {
	all, err := repo.GetWorkflows()
	if err != nil {
		return fmt.Errorf("failed to list workflows: %w", err)
	}

	var filtered []workflows.Workflow
	for _, wf := range all {
		if workflows.HasTags(wf, tags...) {
			filtered = append(filtered, wf)
		}
	}

	if len(filtered) == 0 && format != formatJSON {
		_, err := fmt.Fprintln(w, "No workflows found.")
		return err
	}

	return printWorkflows(w, filtered, format)
}
