package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/warpflow/internal/export"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	Dir      string
	Format   string
	Template string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a workflow to a file",
		Long: `Export a workflow as YAML, JSON or Markdown.

With --dir, the workflow is written to <dir>/<slug>.<format>, where the slug
is derived from the workflow name; an existing file is never overwritten.
Without --dir, the export is printed.

Markdown output can be customised with --template, a Go text/template file
executed against the workflow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), s.repo, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory to write the file into")
	cmd.Flags().StringVar(&opts.Format, "format", string(export.FormatYAML), "export format: yaml, json or md")
	cmd.Flags().StringVar(&opts.Template, "template", "", "template file for md output")

	return cmd
}

func runExport(w io.Writer, repo store.Repository, name string, opts *ExportOptions) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	exporter, err := export.NewExporter(export.Options{Format: format, Template: opts.Template})
	if err != nil {
		return err
	}

	wf, err := repo.GetWorkflow(name)
	if err != nil {
		return err
	}

	if opts.Dir == "" {
		data, err := exporter.Export(wf)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	path, err := exporter.ExportToDir(wf, opts.Dir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Exported %q to %s\n", wf.Name, path)
	return err
}
