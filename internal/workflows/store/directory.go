// Package store provides the workflow repositories: a directory of YAML
// files, a cloned git repository, and a composite view over both.
package store

import (
	"context"
	"os"
	"path/filepath"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows"
)

// DirectoryStore holds the workflows found under a directory tree.
//
// The collection is read once at construction and again on Refresh; it is
// not kept in sync with the filesystem in between. SaveWorkflow and
// DeleteWorkflow change the in-memory collection only.
type DirectoryStore struct {
	root      string
	workflows []workflows.Workflow
}

// NewDirectory loads every workflow under root.
//
// Files with a .yaml or .yml extension are decoded; files that fail to
// decode are skipped. It returns an error wrapping ErrNotFound or ErrIO if
// root or any directory below it cannot be read.
func NewDirectory(ctx context.Context, root string) (*DirectoryStore, error) {
	s := &DirectoryStore{root: root}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenDirectory is like NewDirectory but never fails: if root cannot be
// loaded the failure is logged and an empty store bound to root is
// returned, so a later Refresh can pick the directory up.
func OpenDirectory(ctx context.Context, root string) *DirectoryStore {
	s, err := NewDirectory(ctx, root)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("root", root).
			Warn("workflow directory unavailable, starting empty")
		return &DirectoryStore{root: root}
	}
	return s
}

// Root returns the directory the store loads from.
func (s *DirectoryStore) Root() string {
	return s.root
}

// Refresh reloads the collection from disk. On failure the previous
// collection is kept.
func (s *DirectoryStore) Refresh(ctx context.Context) error {
	loaded, err := visitDir(ctx, s.root)
	if err != nil {
		return err
	}
	s.workflows = loaded

	logger.G(ctx).WithField("root", s.root).WithField("count", len(loaded)).
		Debug("loaded workflows")
	return nil
}

// visitDir walks dir depth-first in lexical order, decoding YAML files.
func visitDir(ctx context.Context, dir string) ([]workflows.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wferrors.Path("read", dir, err)
	}

	var result []workflows.Workflow
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks so linked files and directories are visited.
		info, err := os.Stat(path)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("path", path).Debug("skipping unreadable entry")
			continue
		}

		if info.IsDir() {
			sub, err := visitDir(ctx, path)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
			continue
		}

		if !info.Mode().IsRegular() || !isYAML(path) {
			continue
		}

		wf, err := workflows.LoadYAML(path)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("path", path).Debug("skipping workflow file")
			continue
		}
		result = append(result, *wf)
	}

	return result, nil
}

func isYAML(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

// GetWorkflow returns a copy of the first workflow named name.
func (s *DirectoryStore) GetWorkflow(name string) (workflows.Workflow, error) {
	for _, wf := range s.workflows {
		if wf.Name == name {
			return wf.Clone(), nil
		}
	}
	return workflows.Workflow{}, wferrors.NotFound("get", name)
}

// GetWorkflows returns a copy of the whole collection in load order.
func (s *DirectoryStore) GetWorkflows() ([]workflows.Workflow, error) {
	result := make([]workflows.Workflow, 0, len(s.workflows))
	for _, wf := range s.workflows {
		result = append(result, wf.Clone())
	}
	return result, nil
}

// SaveWorkflow appends a copy of wf. Workflows with the same name are
// kept side by side.
func (s *DirectoryStore) SaveWorkflow(wf workflows.Workflow) error {
	s.workflows = append(s.workflows, wf.Clone())
	return nil
}

// DeleteWorkflow removes every workflow named name. Deleting a name that
// is not present is not an error.
func (s *DirectoryStore) DeleteWorkflow(name string) error {
	kept := s.workflows[:0]
	for _, wf := range s.workflows {
		if wf.Name != name {
			kept = append(kept, wf)
		}
	}
	clear(s.workflows[len(kept):])
	s.workflows = kept
	return nil
}

// QueryWorkflows returns the workflows matching query (see
// workflows.Matches) in load order. It fails with ErrNotFound when
// nothing matches.
func (s *DirectoryStore) QueryWorkflows(query string) ([]workflows.Workflow, error) {
	result := workflows.Filter(s.workflows, query)
	if len(result) == 0 {
		return nil, wferrors.NotFound("query", query)
	}
	return result, nil
}
