package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// ErrDestinationExists is returned by Clone when the target path already
// exists and is not an empty directory.
var ErrDestinationExists = errors.New("destination already exists and is not empty")

// CloneOptions contains options for cloning a repository.
type CloneOptions struct {
	// Remote is the Git remote URL to clone from.
	Remote string

	// Path is the local path to clone to.
	Path string

	// Branch is the branch to checkout (optional).
	Branch string

	// Depth creates a shallow clone with the given depth (0 = full clone).
	Depth int

	// SingleBranch clones only a single branch.
	SingleBranch bool
}

// Clone clones a Git repository from remote to local path.
func Clone(ctx context.Context, opts CloneOptions) error {
	if populated(opts.Path) {
		return &wferrors.GitError{
			Op:  "clone",
			Err: fmt.Errorf("%w: %w: %s", wferrors.ErrGit, ErrDestinationExists, opts.Path),
		}
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return &wferrors.GitError{Op: "clone", Err: wferrors.Path("create", filepath.Dir(opts.Path), err)}
	}

	args := []string{"clone", "--quiet"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.SingleBranch {
		args = append(args, "--single-branch")
	}
	args = append(args, opts.Remote, opts.Path)

	_, err := run(ctx, filepath.Dir(opts.Path), args...)
	return err
}

// populated reports whether path exists and is anything but an empty directory.
func populated(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	entries, err := os.ReadDir(path)
	return err != nil || len(entries) > 0
}

// Cloner clones remote repositories with the git binary. Its zero value
// performs a full clone.
type Cloner struct {
	Depth        int
	SingleBranch bool
}

// Clone clones url into path, checking out branch when it is not empty.
func (c Cloner) Clone(ctx context.Context, url, path, branch string) error {
	return Clone(ctx, CloneOptions{
		Remote:       url,
		Path:         path,
		Branch:       branch,
		Depth:        c.Depth,
		SingleBranch: c.SingleBranch,
	})
}
