package store

import (
	"context"
	"errors"

	"github.com/chazuruo/warpflow/internal/gitrepo"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows"
)

// Cloner clones a remote repository into a local path.
type Cloner interface {
	Clone(ctx context.Context, url, path, branch string) error
}

// GitOptions configures a GitStore.
type GitOptions struct {
	// URL is the remote repository to clone.
	URL string
	// Branch is checked out by the clone when set.
	Branch string
	// Path is the local clone directory.
	Path string
	// Cloner performs the clone. Defaults to gitrepo.Cloner{}.
	Cloner Cloner
	// Offline skips the clone and only loads what is already at Path.
	Offline bool
}

// GitStore serves the workflows of a cloned git repository.
//
// The clone happens once, at construction. Every operation delegates to a
// DirectoryStore over the clone directory; Refresh rereads that directory
// and does not pull from the remote.
type GitStore struct {
	url    string
	branch string
	dir    *DirectoryStore
}

// NewGit clones opts.URL into opts.Path and opens the result.
//
// A failed clone is logged and construction continues with whatever is
// already on disk at opts.Path, which may be an earlier clone, a partial
// one, or nothing.
func NewGit(ctx context.Context, opts GitOptions) *GitStore {
	log := logger.G(ctx).WithField("url", opts.URL).WithField("path", opts.Path)

	if !opts.Offline {
		cloner := opts.Cloner
		if cloner == nil {
			cloner = gitrepo.Cloner{}
		}

		err := cloner.Clone(ctx, opts.URL, opts.Path, opts.Branch)
		switch {
		case err == nil:
			log.Debug("cloned upstream workflows")
		case errors.Is(err, gitrepo.ErrDestinationExists):
			log.Debug("upstream clone already present")
		default:
			log.WithError(err).Warn("failed to clone upstream workflows")
		}
	}

	return &GitStore{
		url:    opts.URL,
		branch: opts.Branch,
		dir:    OpenDirectory(ctx, opts.Path),
	}
}

// URL returns the remote repository URL.
func (s *GitStore) URL() string { return s.url }

// Branch returns the branch requested at clone time.
func (s *GitStore) Branch() string { return s.branch }

// Root returns the clone directory.
func (s *GitStore) Root() string { return s.dir.Root() }

func (s *GitStore) Refresh(ctx context.Context) error {
	return s.dir.Refresh(ctx)
}

func (s *GitStore) GetWorkflow(name string) (workflows.Workflow, error) {
	return s.dir.GetWorkflow(name)
}

func (s *GitStore) GetWorkflows() ([]workflows.Workflow, error) {
	return s.dir.GetWorkflows()
}

func (s *GitStore) SaveWorkflow(wf workflows.Workflow) error {
	return s.dir.SaveWorkflow(wf)
}

func (s *GitStore) DeleteWorkflow(name string) error {
	return s.dir.DeleteWorkflow(name)
}

func (s *GitStore) QueryWorkflows(query string) ([]workflows.Workflow, error) {
	return s.dir.QueryWorkflows(query)
}
