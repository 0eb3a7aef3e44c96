package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/workflows"
)

func TestExport_ToDir(t *testing.T) {
	dir := t.TempDir()
	repo := newTestRepo(t)

	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, repo, "Curl header", &ExportOptions{Dir: dir, Format: "yaml"}))

	path := filepath.Join(dir, "curl-header.yaml")
	assert.Equal(t, "Exported \"Curl header\" to "+path+"\n", buf.String())

	wf, err := workflows.LoadYAML(path)
	require.NoError(t, err)
	orig, err := repo.GetWorkflow("Curl header")
	require.NoError(t, err)
	assert.True(t, orig.Equal(*wf))

	// Exporting is not saving.
	all, err := repo.GetWorkflows()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestExport_Stdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, newTestRepo(t), "Undo commit", &ExportOptions{Format: "md"}))

	assert.True(t, strings.HasPrefix(buf.String(), "# Undo commit\n"))
	assert.Contains(t, buf.String(), "git reset --hard HEAD~1")
}

func TestExport_Errors(t *testing.T) {
	repo := newTestRepo(t)

	err := runExport(&bytes.Buffer{}, repo, "Curl header", &ExportOptions{Format: "pdf"})
	assert.True(t, wferrors.IsInvalid(err))

	err = runExport(&bytes.Buffer{}, repo, "nope", &ExportOptions{Format: "yaml"})
	assert.True(t, wferrors.IsNotFound(err))
}
