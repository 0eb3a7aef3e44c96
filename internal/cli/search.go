package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// SearchOptions contains the options for the search command.
type SearchOptions struct {
	Query  string
	Format string
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search workflows by name, command or tag",
		Long: `Search the local and upstream workflows.

A workflow matches when the query is a substring of its name or command, or
is exactly one of its tags. Matching is case-sensitive. Local workflows are
listed before upstream ones.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Query = args[0]
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(opts.Format, s.cfg.Output.Format)
			if err != nil {
				return err
			}
			return runSearch(cmd.OutOrStdout(), s.repo, opts.Query, format)
		},
	}

	cmd.Flags().StringVar(&opts.Query, "query", "", "search query")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format: table, json or plain")

	return cmd
}

func runSearch(w io.Writer, repo store.Repository, query, format string) error {
	results, err := repo.QueryWorkflows(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 && format != formatJSON {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	return printWorkflows(w, results, format)
}
