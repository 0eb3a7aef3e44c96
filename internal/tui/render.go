package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/warpflow/internal/workflows"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))
)

// RenderWorkflow formats a workflow for display. Lines are wrapped to
// width when width is positive.
func RenderWorkflow(wf workflows.Workflow, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(wf.Name))
	b.WriteString("\n")

	if wf.Description != nil && *wf.Description != "" {
		b.WriteString(*wf.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(commandStyle.Render(wf.Command))
	b.WriteString("\n")

	if len(wf.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Tags: "))
		tags := make([]string, len(wf.Tags))
		for i, tag := range wf.Tags {
			tags[i] = tagStyle.Render("#" + tag)
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n")
	}

	if len(wf.Shells) > 0 {
		shells := make([]string, len(wf.Shells))
		for i, s := range wf.Shells {
			shells[i] = string(s)
		}
		b.WriteString(labelStyle.Render("Shells: "))
		b.WriteString(strings.Join(shells, ", "))
		b.WriteString("\n")
	}

	if len(wf.Arguments) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Arguments:"))
		b.WriteString("\n")
		for _, arg := range wf.Arguments {
			line := "  {{" + arg.Name + "}}"
			if arg.Description != nil {
				line += "  " + *arg.Description
			}
			if arg.DefaultValue != nil {
				line += labelStyle.Render(" (default: " + *arg.DefaultValue + ")")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if wf.Author != nil || wf.SourceURL != nil {
		b.WriteString("\n")
		if wf.Author != nil {
			author := *wf.Author
			if wf.AuthorURL != nil {
				author += " <" + *wf.AuthorURL + ">"
			}
			b.WriteString(labelStyle.Render("Author: " + author))
			b.WriteString("\n")
		}
		if wf.SourceURL != nil {
			b.WriteString(labelStyle.Render("Source: " + *wf.SourceURL))
			b.WriteString("\n")
		}
	}

	out := strings.TrimRight(b.String(), "\n")
	if width > 0 {
		out = lipgloss.NewStyle().Width(width).Render(out)
	}
	return out
}
