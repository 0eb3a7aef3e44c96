package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazuruo/warpflow/internal/testutil"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

const curlWorkflow = `name: Curl header
command: curl -H "{{header}}" {{url}}
tags: [curl, http]
arguments:
  - name: header
    description: The header to attach
    default_value: "Accept: */*"
  - name: url
    description: The URL to request
`

// newTestRepo returns a composite with two local and two upstream
// workflows. "Undo commit" exists in both; the local one is "git reset".
func newTestRepo(t *testing.T) *store.Composite {
	t.Helper()
	ctx := context.Background()

	localDir := t.TempDir()
	testutil.WriteFile(t, localDir, "a.yaml", testutil.MinimalWorkflow("Undo commit", "git reset --hard HEAD~1")+"tags: [git]\n")
	testutil.WriteFile(t, localDir, "b.yaml", curlWorkflow)

	upstreamDir := t.TempDir()
	testutil.WriteFile(t, upstreamDir, "c.yaml", testutil.MinimalWorkflow("Show log", "git log --oneline")+"tags: [git]\n")
	testutil.WriteFile(t, upstreamDir, "d.yaml", testutil.MinimalWorkflow("Undo commit", "git revert HEAD"))

	local, err := store.NewDirectory(ctx, localDir)
	require.NoError(t, err)
	upstream := store.NewGit(ctx, store.GitOptions{
		URL:     "https://example.com/workflows.git",
		Path:    upstreamDir,
		Offline: true,
	})

	return store.NewComposite(local, upstream)
}
