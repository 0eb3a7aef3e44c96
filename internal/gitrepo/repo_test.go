package gitrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/testutil"
)

func TestNew(t *testing.T) {
	path := "/test/path"
	repo := New(path)

	if repo == nil {
		t.Fatal("New() returned nil")
	}

	if repo.Path() != path {
		t.Errorf("Path() = %s, want %s", repo.Path(), path)
	}
}

func TestGitRepo_IsInitialized(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		testutil.RequireGit(t)
		repo := New(t.TempDir())

		if repo.IsInitialized(context.Background()) {
			t.Error("IsInitialized() = true, want false")
		}
	})

	t.Run("initialized", func(t *testing.T) {
		remote := testutil.InitRemote(t, nil)
		repo := New(remote)

		if !repo.IsInitialized(context.Background()) {
			t.Error("IsInitialized() = false, want true")
		}
	})

	t.Run("nested in another repository", func(t *testing.T) {
		parent := testutil.InitRemote(t, nil)
		nested := filepath.Join(parent, "share", "upstream")
		testutil.WriteFile(t, nested, "a.yaml", testutil.MinimalWorkflow("a", "true"))

		if New(nested).IsInitialized(context.Background()) {
			t.Error("IsInitialized() = true for a directory inside another repository, want false")
		}
	})
}

func TestGitRepo_Status(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{
		"curl.yaml": testutil.MinimalWorkflow("curl", "curl {{url}}"),
	})
	repo := New(remote)
	ctx := context.Background()

	status, err := repo.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.Branch != "main" {
		t.Errorf("Status().Branch = %q, want main", status.Branch)
	}
	if status.Head == "" {
		t.Error("Status().Head is empty")
	}
	if status.Dirty {
		t.Error("Status().Dirty = true, want false (clean repo)")
	}

	testutil.WriteFile(t, remote, "extra.yaml", testutil.MinimalWorkflow("extra", "true"))

	status, err = repo.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !status.Dirty {
		t.Error("Status().Dirty = false, want true")
	}
	if len(status.Entries) != 1 || status.Entries[0].Path != "extra.yaml" || status.Entries[0].X != '?' {
		t.Errorf("Status().Entries = %+v, want one untracked extra.yaml", status.Entries)
	}
}

func TestGitRepo_RemoteURL(t *testing.T) {
	remote := testutil.InitRemote(t, nil)
	dest := filepath.Join(t.TempDir(), "clone")
	ctx := context.Background()

	if err := Clone(ctx, CloneOptions{Remote: remote, Path: dest}); err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	url, err := New(dest).RemoteURL(ctx, "origin")
	if err != nil {
		t.Fatalf("RemoteURL() error = %v", err)
	}
	if url != remote {
		t.Errorf("RemoteURL() = %s, want %s", url, remote)
	}

	_, err = New(dest).RemoteURL(ctx, "nope")
	var gitErr *wferrors.GitError
	if !errors.As(err, &gitErr) {
		t.Fatalf("RemoteURL(nope) error = %v, want *GitError", err)
	}
	if gitErr.Cmd != "git remote get-url nope" {
		t.Errorf("GitError.Cmd = %q", gitErr.Cmd)
	}
	if !errors.Is(err, wferrors.ErrGit) {
		t.Error("RemoteURL(nope) error does not wrap ErrGit")
	}
}

func TestParseStatus(t *testing.T) {
	output := "# branch.oid 1234abcd\n" +
		"# branch.head main\n" +
		"# branch.upstream origin/main\n" +
		"# branch.ab +2 -3\n" +
		"1 .M N... 100644 100644 100644 aaaa bbbb git/undo.yaml\n" +
		"? notes.txt\n"

	status := parseStatus(output)

	if status.Head != "1234abcd" {
		t.Errorf("Head = %q", status.Head)
	}
	if status.Branch != "main" || status.Upstream != "origin/main" {
		t.Errorf("Branch = %q, Upstream = %q", status.Branch, status.Upstream)
	}
	if status.Ahead != 2 || status.Behind != 3 {
		t.Errorf("Ahead = %d, Behind = %d, want 2, 3", status.Ahead, status.Behind)
	}
	if !status.Dirty || len(status.Entries) != 2 {
		t.Fatalf("Entries = %+v", status.Entries)
	}
	if e := status.Entries[0]; e.Path != "git/undo.yaml" || e.X != '.' || e.Y != 'M' {
		t.Errorf("Entries[0] = %+v", e)
	}
}

func TestParseStatus_Clean(t *testing.T) {
	status := parseStatus("# branch.oid (initial)\n# branch.head main\n")

	if status.Dirty || len(status.Entries) != 0 {
		t.Errorf("parseStatus() = %+v, want clean", status)
	}
	if status.Head != "(initial)" {
		t.Errorf("Head = %q", status.Head)
	}
}

func TestGitRepo_StatusOutsideRepository(t *testing.T) {
	testutil.RequireGit(t)
	_, err := New(t.TempDir()).Status(context.Background())
	if !wferrors.IsGit(err) {
		t.Errorf("Status() error = %v, want git error", err)
	}
}
