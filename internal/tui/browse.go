// Package tui provides Bubble Tea models for terminal UI interactions.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/warpflow/internal/workflows"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// BrowseModel is a Bubble Tea model for searching and managing workflows.
type BrowseModel struct {
	ctx  context.Context
	repo store.Repository

	// Results is the current search results.
	Results []workflows.Workflow

	// cursor is the current cursor position in the results list.
	cursor int

	// SearchInput is the text input for search query.
	SearchInput textinput.Model

	// Preview shows the selected workflow.
	Preview viewport.Model

	// Quit indicates whether the user quit without selecting.
	Quit bool

	// Confirmed indicates whether the user confirmed selection.
	Confirmed bool

	// Selected is the workflow chosen with enter.
	Selected *workflows.Workflow

	// status is a one-line message shown under the results.
	status string

	// styles
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	headerStyle   lipgloss.Style
	metadataStyle lipgloss.Style
	errorStyle    lipgloss.Style
}

// NewBrowseModel creates a browser over repo. Refresh runs with ctx.
func NewBrowseModel(ctx context.Context, repo store.Repository) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Search workflows..."
	ti.Focus()

	m := BrowseModel{
		ctx:         ctx,
		repo:        repo,
		SearchInput: ti,
		Preview:     viewport.New(60, 20),

		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
	m.PerformSearch()
	return m
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if wf, ok := m.current(); ok {
				m.Confirmed = true
				m.Selected = &wf
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
				m.updatePreview()
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.Results)-1 {
				m.cursor++
				m.updatePreview()
			}
			return m, nil

		case "ctrl+d":
			m.deleteCurrent()
			return m, nil

		case "ctrl+r":
			m.refreshNow()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Preview.Width = max(20, msg.Width/2-4)
		m.Preview.Height = max(5, msg.Height-8)
		m.updatePreview()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	oldQuery := m.SearchInput.Value()
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	cmds = append(cmds, cmd)
	if m.SearchInput.Value() != oldQuery {
		m.PerformSearch()
	}

	m.Preview, cmd = m.Preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshNow reloads the repository on the update goroutine. The stores
// have a single owner, so Refresh must never run from a tea.Cmd.
func (m *BrowseModel) refreshNow() {
	if err := m.repo.Refresh(m.ctx); err != nil {
		m.status = "Refresh failed: " + err.Error()
	} else {
		m.status = "Refreshed."
	}
	m.PerformSearch()
}

// deleteCurrent removes every workflow named like the selected one.
func (m *BrowseModel) deleteCurrent() {
	wf, ok := m.current()
	if !ok {
		return
	}
	if err := m.repo.DeleteWorkflow(wf.Name); err != nil {
		m.status = "Delete failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Deleted %q.", wf.Name)
	m.PerformSearch()
}

// PerformSearch reruns the query in the search input.
func (m *BrowseModel) PerformSearch() {
	results, err := m.repo.QueryWorkflows(m.SearchInput.Value())
	if err != nil {
		results = nil
	}
	m.Results = results

	if m.cursor >= len(m.Results) {
		m.cursor = max(0, len(m.Results)-1)
	}
	m.updatePreview()
}

func (m BrowseModel) current() (workflows.Workflow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.Results) {
		return workflows.Workflow{}, false
	}
	return m.Results[m.cursor], true
}

func (m *BrowseModel) updatePreview() {
	wf, ok := m.current()
	if !ok {
		m.Preview.SetContent("")
		return
	}
	m.Preview.SetContent(RenderWorkflow(wf, m.Preview.Width))
	m.Preview.GotoTop()
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.headerStyle.Render("Workflows"))
	b.WriteString("\n\n  ")
	b.WriteString(m.metadataStyle.Render(strings.Join([]string{
		"[Enter] Select",
		"[↑/↓] Move",
		"[Ctrl+D] Delete",
		"[Ctrl+R] Refresh",
		"[Esc] Quit",
	}, " • ")))
	b.WriteString("\n\n")

	left := m.renderResultsColumn(50)
	right := ""
	if len(m.Results) > 0 {
		right = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.Preview.View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	if m.status != "" {
		style := m.metadataStyle
		if strings.Contains(m.status, "failed") {
			style = m.errorStyle
		}
		b.WriteString("  " + style.Render(m.status) + "\n")
	}

	return b.String()
}

// renderResultsColumn renders the search input and results column.
func (m BrowseModel) renderResultsColumn(width int) string {
	var b strings.Builder

	b.WriteString("  Search: ")
	b.WriteString(m.SearchInput.View())
	b.WriteString("\n\n  ")
	b.WriteString(m.metadataStyle.Render(fmt.Sprintf("%d result(s)", len(m.Results))))
	b.WriteString("\n\n")

	if len(m.Results) == 0 {
		b.WriteString("  (no matches)")
	} else {
		// Show visible window around cursor
		start := max(0, m.cursor-10)
		end := min(len(m.Results), m.cursor+11)

		for i := start; i < end; i++ {
			wf := m.Results[i]
			style := m.normalStyle
			if i == m.cursor {
				style = m.selectedStyle
			}

			line := "  " + wf.Name
			if maxLen := width - 4; lipgloss.Width(line) > maxLen {
				line = truncate(line, maxLen-3) + "..."
			}
			b.WriteString(style.Render(line) + "\n")

			if i == m.cursor && len(wf.Tags) > 0 {
				b.WriteString("    ")
				b.WriteString(m.metadataStyle.Render(fmt.Sprintf("[%s]", strings.Join(wf.Tags, ", "))))
				b.WriteString("\n")
			}
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// DidQuit returns true if the user quit without selecting.
func (m BrowseModel) DidQuit() bool {
	return m.Quit
}

// DidConfirm returns true if the user confirmed selection.
func (m BrowseModel) DidConfirm() bool {
	return m.Confirmed
}

// GetSelected returns the selected workflow, or nil.
func (m BrowseModel) GetSelected() *workflows.Workflow {
	return m.Selected
}
