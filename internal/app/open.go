// Package app wires configuration into the workflow stores used by the
// warpflow commands.
package app

import (
	"context"
	"fmt"

	"github.com/chazuruo/warpflow/internal/config"
	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/gitrepo"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// Options adjusts how Open builds the stores.
type Options struct {
	// Cloner replaces the git binary for the upstream clone.
	Cloner store.Cloner
}

// Open builds the composite repository described by cfg: the local
// directory store, then the upstream git store (cloned unless
// upstream.enabled is false).
//
// Missing directories and failed clones are logged, not returned; Open only
// fails when cfg is invalid or ctx is done.
func Open(ctx context.Context, cfg *config.Config, opts ...Options) (*store.Composite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	cloner := o.Cloner
	if cloner == nil {
		cloner = gitrepo.Cloner{Depth: cfg.Upstream.Depth, SingleBranch: cfg.Upstream.Depth > 0}
	}

	log := logger.G(ctx)

	local := store.OpenDirectory(ctx, cfg.Local.Path)
	if err := ctx.Err(); err != nil {
		return nil, wferrors.Wrap(err, "open local workflows")
	}

	upstream := store.NewGit(ctx, store.GitOptions{
		URL:     cfg.Upstream.URL,
		Branch:  cfg.Upstream.Branch,
		Path:    cfg.Upstream.Path,
		Cloner:  cloner,
		Offline: !cfg.Upstream.Enabled,
	})
	if err := ctx.Err(); err != nil {
		return nil, wferrors.Wrap(err, "open upstream workflows")
	}

	log.WithField("local", local.Root()).
		WithField("upstream", upstream.Root()).
		Debug("opened workflow stores")

	return store.NewComposite(local, upstream), nil
}
