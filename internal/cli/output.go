package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/workflows"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatPlain = "plain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// outputFormat picks the --format flag over the configured default.
func outputFormat(flag, configured string) (string, error) {
	format := configured
	if flag != "" {
		format = flag
	}
	switch format {
	case formatTable, formatJSON, formatPlain:
		return format, nil
	case "":
		return formatTable, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q (want table, json or plain)", wferrors.ErrInvalid, format)
	}
}

// printWorkflows writes ws to w in the given format.
func printWorkflows(w io.Writer, ws []workflows.Workflow, format string) error {
	switch format {
	case formatJSON:
		return outputJSON(w, ws)
	case formatPlain:
		return outputPlain(w, ws)
	default:
		outputTable(w, ws)
		return nil
	}
}

// outputJSON writes ws as an indented JSON array. An empty result is "[]".
func outputJSON(w io.Writer, ws []workflows.Workflow) error {
	if ws == nil {
		ws = []workflows.Workflow{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ws); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputPlain writes one "name<TAB>command" line per workflow.
func outputPlain(w io.Writer, ws []workflows.Workflow) error {
	for _, wf := range ws {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", wf.Name, oneLine(wf.Command)); err != nil {
			return err
		}
	}
	return nil
}

func outputTable(w io.Writer, ws []workflows.Workflow) {
	tbl := table.New("Name", "Tags", "Command").
		WithWriter(w).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})

	for _, wf := range ws {
		tbl.AddRow(wf.Name, strings.Join(wf.Tags, ", "), truncate(oneLine(wf.Command), 60))
	}
	tbl.Print()
}

// oneLine folds a multi-line command onto a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
