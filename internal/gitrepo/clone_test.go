package gitrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/testutil"
)

func TestClone(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{
		"git/undo.yaml": testutil.MinimalWorkflow("Undo", "git reset HEAD~1"),
	})
	dest := filepath.Join(t.TempDir(), "nested", "upstream")

	err := Clone(context.Background(), CloneOptions{Remote: remote, Path: dest, Branch: "main"})
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "git", "undo.yaml")); err != nil {
		t.Errorf("cloned file missing: %v", err)
	}
}

func TestClone_EmptyDestination(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{"a.yaml": testutil.MinimalWorkflow("a", "a")})
	dest := t.TempDir()

	if err := Clone(context.Background(), CloneOptions{Remote: remote, Path: dest}); err != nil {
		t.Fatalf("Clone() into empty dir error = %v", err)
	}
}

func TestClone_DestinationExists(t *testing.T) {
	dest := t.TempDir()
	testutil.WriteFile(t, dest, "keep.yaml", testutil.MinimalWorkflow("keep", "true"))

	err := Clone(context.Background(), CloneOptions{Remote: "https://example.invalid/repo.git", Path: dest})
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("Clone() error = %v, want ErrDestinationExists", err)
	}
	if !wferrors.IsGit(err) {
		t.Error("Clone() error does not wrap ErrGit")
	}

	// The existing content is untouched.
	if _, err := os.Stat(filepath.Join(dest, "keep.yaml")); err != nil {
		t.Errorf("existing file removed: %v", err)
	}
}

func TestClone_UnknownBranch(t *testing.T) {
	remote := testutil.InitRemote(t, nil)
	dest := filepath.Join(t.TempDir(), "clone")

	err := Clone(context.Background(), CloneOptions{Remote: remote, Path: dest, Branch: "does-not-exist"})

	var gitErr *wferrors.GitError
	if !errors.As(err, &gitErr) {
		t.Fatalf("Clone() error = %v, want *GitError", err)
	}
	if gitErr.Op != "clone" {
		t.Errorf("GitError.Op = %q, want clone", gitErr.Op)
	}
}

func TestCloner_Shallow(t *testing.T) {
	remote := testutil.InitRemote(t, map[string]string{"a.yaml": testutil.MinimalWorkflow("a", "a")})
	testutil.Git(t, remote, "commit", "--quiet", "--allow-empty", "-m", "second")
	dest := filepath.Join(t.TempDir(), "clone")

	// Local clones ignore --depth unless the file:// transport is used.
	cloner := Cloner{Depth: 1, SingleBranch: true}
	if err := cloner.Clone(context.Background(), "file://"+remote, dest, "main"); err != nil {
		t.Fatalf("Cloner.Clone() error = %v", err)
	}

	count := testutil.Git(t, dest, "rev-list", "--count", "HEAD")
	if count != "1\n" {
		t.Errorf("rev-list --count = %q, want 1", count)
	}
}
