package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// RenderOptions contains the options for the render command.
type RenderOptions struct {
	Set []string
}

// promptFunc asks for values of the named placeholders.
type promptFunc func(wf workflows.Workflow, names []string) (map[string]string, error)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Fill in a workflow's arguments and print the command",
		Long: `Render a workflow's command with its {{placeholders}} substituted.

Values come from the arguments' defaults, then from --set key=value, then
from an interactive form for anything still missing. With --no-tui, missing
placeholders are left in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}

			var prompt promptFunc
			if !IsNoTUI() {
				prompt = promptArguments
			}
			return runRender(cmd.OutOrStdout(), s.repo, args[0], opts.Set, prompt)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "argument value as key=value (repeatable)")

	return cmd
}

func runRender(w io.Writer, repo store.Repository, name string, sets []string, prompt promptFunc) error {
	overrides, err := parseSets(sets)
	if err != nil {
		return err
	}

	wf, err := repo.GetWorkflow(name)
	if err != nil {
		return err
	}

	values := wf.ArgumentValues(overrides)

	var missing []string
	for _, p := range wf.Placeholders() {
		if _, ok := values[p]; !ok {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		if prompt == nil {
			logger.L.WithField("workflow", wf.Name).
				Warnf("no value for %s", strings.Join(missing, ", "))
		} else {
			answers, err := prompt(wf, missing)
			if err != nil {
				return err
			}
			for k, v := range answers {
				values[k] = v
			}
		}
	}

	_, err = fmt.Fprintln(w, wf.Render(values))
	return err
}

// parseSets turns key=value pairs into a map. Later pairs win.
func parseSets(sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --set expects key=value, got %q", wferrors.ErrInvalid, s)
		}
		values[key] = value
	}
	return values, nil
}

// promptArguments shows one form with an input per missing placeholder.
func promptArguments(wf workflows.Workflow, names []string) (map[string]string, error) {
	answers := make([]string, len(names))
	fields := make([]huh.Field, len(names))
	for i, name := range names {
		input := huh.NewInput().
			Title(name).
			Value(&answers[i])
		if arg, ok := wf.Argument(name); ok && arg.Description != nil {
			input = input.Description(*arg.Description)
		}
		fields[i] = input
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("render cancelled")
		}
		return nil, fmt.Errorf("form error: %w", err)
	}

	values := make(map[string]string, len(names))
	for i, name := range names {
		values[name] = answers[i]
	}
	return values, nil
}
