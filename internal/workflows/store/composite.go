package store

import (
	"context"

	"github.com/hashicorp/go-multierror"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows"
)

// Composite merges a local DirectoryStore and an upstream GitStore into a
// single view. Local entries come first and shadow upstream entries of the
// same name on lookup. Mutations only ever touch the local store.
//
// Reads are best effort: a source that fails is logged and contributes
// nothing, so GetWorkflows and QueryWorkflows never fail.
type Composite struct {
	local    *DirectoryStore
	upstream *GitStore
}

// NewComposite takes ownership of local and upstream.
func NewComposite(local *DirectoryStore, upstream *GitStore) *Composite {
	return &Composite{local: local, upstream: upstream}
}

// Local returns the local store.
func (c *Composite) Local() *DirectoryStore { return c.local }

// Upstream returns the upstream store.
func (c *Composite) Upstream() *GitStore { return c.upstream }

// Refresh refreshes the local store and then the upstream store. The
// upstream refresh runs even when the local one fails; the returned error
// carries every failure.
func (c *Composite) Refresh(ctx context.Context) error {
	var result *multierror.Error

	if err := c.local.Refresh(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.upstream.Refresh(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// GetWorkflow looks name up locally, then upstream.
func (c *Composite) GetWorkflow(name string) (workflows.Workflow, error) {
	wf, err := c.local.GetWorkflow(name)
	if err == nil {
		return wf, nil
	}
	if !wferrors.IsNotFound(err) {
		logger.L.WithError(err).WithField("name", name).Warn("local lookup failed")
	}

	wf, err = c.upstream.GetWorkflow(name)
	if err == nil {
		return wf, nil
	}
	if !wferrors.IsNotFound(err) {
		logger.L.WithError(err).WithField("name", name).Warn("upstream lookup failed")
	}

	return workflows.Workflow{}, wferrors.NotFound("get", name)
}

// GetWorkflows returns the local workflows followed by the upstream ones.
func (c *Composite) GetWorkflows() ([]workflows.Workflow, error) {
	result := []workflows.Workflow{}

	for _, src := range c.sources() {
		ws, err := src.repo.GetWorkflows()
		if err != nil {
			logger.L.WithError(err).WithField("source", src.name).Warn("skipping workflow source")
			continue
		}
		result = append(result, ws...)
	}

	return result, nil
}

// SaveWorkflow adds wf to the local store.
func (c *Composite) SaveWorkflow(wf workflows.Workflow) error {
	return c.local.SaveWorkflow(wf)
}

// DeleteWorkflow removes name from the local store. Upstream entries of
// the same name are left in place.
func (c *Composite) DeleteWorkflow(name string) error {
	return c.local.DeleteWorkflow(name)
}

// QueryWorkflows queries both stores, local results first. A source with
// no matches, or that fails, contributes nothing; the result is empty
// rather than an error when nothing matches anywhere.
func (c *Composite) QueryWorkflows(query string) ([]workflows.Workflow, error) {
	result := []workflows.Workflow{}

	for _, src := range c.sources() {
		ws, err := src.repo.QueryWorkflows(query)
		if err != nil {
			if !wferrors.IsNotFound(err) {
				logger.L.WithError(err).WithField("source", src.name).Warn("query failed")
			}
			continue
		}
		result = append(result, ws...)
	}

	return result, nil
}

type source struct {
	name string
	repo Repository
}

func (c *Composite) sources() []source {
	return []source{
		{name: "local", repo: c.local},
		{name: "upstream", repo: c.upstream},
	}
}
