// Package gitrepo provides a Git repository abstraction.
// It shells out to the git binary for operations, making it
// a lightweight wrapper around standard Git functionality.
package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// gitRepo represents a Git repository.
type gitRepo struct {
	path string
}

// Repo is the interface for read-only inspection of a cloned repository.
type Repo interface {
	// Path returns the repository path.
	Path() string

	// IsInitialized returns true if the path is the top of a Git work tree.
	IsInitialized(ctx context.Context) bool

	// Status returns the current status of the repository.
	Status(ctx context.Context) (Status, error)

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)

	// Close releases any resources held by the repository.
	Close() error
}

// New creates a new Repo instance for the given path.
func New(path string) Repo {
	return &gitRepo{path: path}
}

// Path returns the repository path.
func (r *gitRepo) Path() string {
	return r.path
}

// Close releases any resources held by the repository.
func (r *gitRepo) Close() error {
	return nil
}

// IsInitialized returns true if the path is the top of a Git work tree.
// A directory nested inside some other repository does not count.
func (r *gitRepo) IsInitialized(ctx context.Context) bool {
	output, err := r.runGit(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return false
	}
	return samePath(strings.TrimSpace(output), r.path)
}

// samePath compares two paths after resolving symlinks, so a temp dir
// reached through /var and one reported as /private/var are equal.
func samePath(a, b string) bool {
	return canonical(a) == canonical(b)
}

func canonical(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Clean(path)
}

// RemoteURL returns the fetch URL of the named remote.
func (r *gitRepo) RemoteURL(ctx context.Context, remote string) (string, error) {
	output, err := r.runGit(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// runGit executes a git command in the repository and returns its
// combined output.
func (r *gitRepo) runGit(ctx context.Context, args ...string) (string, error) {
	return run(ctx, r.path, args...)
}

// run executes git with args in dir. Failures are returned as a
// *errors.GitError wrapping ErrGit.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		op := "git"
		if len(args) > 0 {
			op = args[0]
		}
		return "", &wferrors.GitError{
			Op:  op,
			Err: fmt.Errorf("%w: %w: %s", wferrors.ErrGit, err, strings.TrimSpace(string(output))),
			Cmd: "git " + strings.Join(args, " "),
		}
	}

	return string(output), nil
}
