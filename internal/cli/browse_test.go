package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/warpflow/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger.SetLogOutput(&buf)
	t.Cleanup(func() { logger.SetLogOutput(os.Stderr) })
	return &buf
}

func TestRunBrowse_SilencesLogsWhileRunning(t *testing.T) {
	logs := captureLogs(t)

	run := func(ctx context.Context, m tea.Model) (tea.Model, error) {
		logger.L.Warn("query failed")
		return m, nil
	}

	var out bytes.Buffer
	require.NoError(t, runBrowse(context.Background(), &out, newTestRepo(t), run))
	assert.Empty(t, logs.String())
	assert.Empty(t, out.String())

	logger.L.Warn("after browse")
	assert.Contains(t, logs.String(), "after browse")
}

func TestRunBrowse_PrintsSelection(t *testing.T) {
	run := func(ctx context.Context, m tea.Model) (tea.Model, error) {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return next, nil
	}

	var out bytes.Buffer
	require.NoError(t, runBrowse(context.Background(), &out, newTestRepo(t), run))
	assert.Contains(t, out.String(), "Curl header")
}

func TestRunBrowse_RestoresLoggingOnError(t *testing.T) {
	logs := captureLogs(t)
	boom := errors.New("no tty")

	run := func(context.Context, tea.Model) (tea.Model, error) {
		return nil, boom
	}

	err := runBrowse(context.Background(), &bytes.Buffer{}, newTestRepo(t), run)
	assert.ErrorIs(t, err, boom)

	logger.L.Warn("visible")
	assert.Contains(t, logs.String(), "visible")
}
