package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/warpflow/internal/config"
	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/testutil"
	"github.com/chazuruo/warpflow/internal/workflows"
)

type recordingCloner struct {
	urls []string
}

func (r *recordingCloner) Clone(_ context.Context, url, _, _ string) error {
	r.urls = append(r.urls, url)
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Local.Path = filepath.Join(dir, "local")
	cfg.Upstream.Path = filepath.Join(dir, "upstream")
	return cfg
}

func TestOpen(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteFile(t, cfg.Local.Path, "mine.yaml", testutil.MinimalWorkflow("mine", "echo mine"))
	testutil.WriteFile(t, cfg.Upstream.Path, "theirs.yaml", testutil.MinimalWorkflow("theirs", "echo theirs"))
	cloner := &recordingCloner{}

	repo, err := Open(context.Background(), cfg, Options{Cloner: cloner})
	require.NoError(t, err)

	assert.Equal(t, []string{config.DefaultUpstreamURL}, cloner.urls)
	assert.Equal(t, cfg.Local.Path, repo.Local().Root())
	assert.Equal(t, cfg.Upstream.Path, repo.Upstream().Root())
	assert.Equal(t, "main", repo.Upstream().Branch())

	ws, err := repo.GetWorkflows()
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, "mine", ws[0].Name)
	assert.Equal(t, "theirs", ws[1].Name)
}

func TestOpen_UpstreamDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Upstream.Enabled = false
	cloner := &recordingCloner{}

	repo, err := Open(context.Background(), cfg, Options{Cloner: cloner})
	require.NoError(t, err)
	assert.Empty(t, cloner.urls)

	// Nothing on disk yet: both sources are empty but usable.
	ws, err := repo.QueryWorkflows("anything")
	require.NoError(t, err)
	assert.Empty(t, ws)

	require.NoError(t, repo.SaveWorkflow(workflows.New("draft", "true")))
	_, err = repo.GetWorkflow("draft")
	assert.NoError(t, err)
}

func TestOpen_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "loud"

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, wferrors.IsInvalid(err))
}

func TestOpen_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, testConfig(t), Options{Cloner: &recordingCloner{}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatus(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{
		"a.yaml": testutil.MinimalWorkflow("a", "echo a"),
	})
	cfg := testConfig(t)
	cfg.Upstream.URL = remote
	cfg.Upstream.Depth = 0
	testutil.WriteFile(t, cfg.Local.Path, "mine.yaml", testutil.MinimalWorkflow("mine", "echo mine"))
	ctx := context.Background()

	repo, err := Open(ctx, cfg)
	require.NoError(t, err)

	out, err := Status(ctx, "/etc/warpflow.toml", repo)
	require.NoError(t, err)

	assert.Equal(t, "/etc/warpflow.toml", out.ConfigPath)
	assert.Equal(t, 1, out.Local.Workflows)
	assert.Equal(t, 1, out.Upstream.Workflows)
	assert.Equal(t, remote, out.Upstream.URL)
	assert.True(t, out.Upstream.Cloned)
	assert.Equal(t, "main", out.Upstream.Branch)
	assert.NotEmpty(t, out.Upstream.Head)
	assert.Empty(t, out.Upstream.Modified)
	assert.Equal(t, remote, out.Upstream.Remote)
	assert.False(t, out.Upstream.RemoteMismatch)

	testutil.WriteFile(t, cfg.Upstream.Path, "local-edit.yaml", testutil.MinimalWorkflow("edit", "true"))
	out, err = Status(ctx, "", repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"local-edit.yaml"}, out.Upstream.Modified)
}

func TestStatus_RemoteMismatch(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{
		"a.yaml": testutil.MinimalWorkflow("a", "echo a"),
	})
	cfg := testConfig(t)
	cfg.Upstream.URL = remote
	cfg.Upstream.Depth = 0
	ctx := context.Background()

	_, err := Open(ctx, cfg)
	require.NoError(t, err)

	cfg.Upstream.URL = "https://example.com/other.git"
	cfg.Upstream.Enabled = false
	repo, err := Open(ctx, cfg)
	require.NoError(t, err)

	out, err := Status(ctx, "", repo)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/other.git", out.Upstream.URL)
	assert.Equal(t, remote, out.Upstream.Remote)
	assert.True(t, out.Upstream.RemoteMismatch)
}

func TestStatus_NestedInOtherRepository(t *testing.T) {
	parent := testutil.InitRemote(t, nil)
	cfg := testConfig(t)
	cfg.Upstream.Enabled = false
	cfg.Upstream.Path = filepath.Join(parent, "upstream")
	testutil.WriteFile(t, cfg.Upstream.Path, "a.yaml", testutil.MinimalWorkflow("a", "echo a"))

	repo, err := Open(context.Background(), cfg)
	require.NoError(t, err)

	out, err := Status(context.Background(), "", repo)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Upstream.Workflows)
	assert.False(t, out.Upstream.Cloned)
	assert.Empty(t, out.Upstream.Head)
	assert.Empty(t, out.Upstream.Modified)
}

func TestStatus_NotCloned(t *testing.T) {
	testutil.RequireGit(t)
	cfg := testConfig(t)
	cfg.Upstream.Enabled = false

	repo, err := Open(context.Background(), cfg)
	require.NoError(t, err)

	out, err := Status(context.Background(), "", repo)
	require.NoError(t, err)
	assert.False(t, out.Upstream.Cloned)
	assert.Empty(t, out.Upstream.Head)
}
