package app

import (
	"context"

	"github.com/chazuruo/warpflow/internal/gitrepo"
	"github.com/chazuruo/warpflow/internal/logger"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// StatusOutput contains the information displayed by the status command.
type StatusOutput struct {
	ConfigPath string         `json:"config_path,omitempty"`
	Local      SourceStatus   `json:"local"`
	Upstream   UpstreamStatus `json:"upstream"`
}

// SourceStatus describes one loaded workflow source.
type SourceStatus struct {
	Path      string `json:"path"`
	Workflows int    `json:"workflows"`
}

// UpstreamStatus describes the upstream clone.
type UpstreamStatus struct {
	SourceStatus
	URL    string `json:"url"`
	Branch string `json:"branch,omitempty"`
	// Cloned is false when the clone directory is not a git work tree.
	Cloned bool   `json:"cloned"`
	Head   string `json:"head,omitempty"`
	// Modified lists files changed in the clone since it was checked out.
	Modified []string `json:"modified,omitempty"`
	// Remote is the clone's origin URL as git reports it.
	Remote string `json:"remote,omitempty"`
	// RemoteMismatch is set when Remote differs from URL, meaning the clone
	// was made from another repository and upstream.url has no effect.
	RemoteMismatch bool `json:"remote_mismatch,omitempty"`
}

// Status reports what each source of repo has loaded and the state of the
// upstream clone.
func Status(ctx context.Context, configPath string, repo *store.Composite) (*StatusOutput, error) {
	out := &StatusOutput{ConfigPath: configPath}

	local, err := repo.Local().GetWorkflows()
	if err != nil {
		return nil, err
	}
	out.Local = SourceStatus{Path: repo.Local().Root(), Workflows: len(local)}

	upstream := repo.Upstream()
	ws, err := upstream.GetWorkflows()
	if err != nil {
		return nil, err
	}
	out.Upstream = UpstreamStatus{
		SourceStatus: SourceStatus{Path: upstream.Root(), Workflows: len(ws)},
		URL:          upstream.URL(),
		Branch:       upstream.Branch(),
	}

	clone := gitrepo.New(upstream.Root())
	defer clone.Close()
	if !clone.IsInitialized(ctx) {
		return out, nil
	}

	st, err := clone.Status(ctx)
	if err != nil {
		return nil, err
	}
	out.Upstream.Cloned = true
	out.Upstream.Head = st.Head
	if st.Branch != "" && st.Branch != "(detached)" {
		out.Upstream.Branch = st.Branch
	}
	for _, e := range st.Entries {
		out.Upstream.Modified = append(out.Upstream.Modified, e.Path)
	}

	remote, err := clone.RemoteURL(ctx, "origin")
	if err != nil {
		logger.G(ctx).WithError(err).WithField("path", upstream.Root()).Debug("clone has no origin remote")
		return out, nil
	}
	out.Upstream.Remote = remote
	out.Upstream.RemoteMismatch = remote != upstream.URL()

	return out, nil
}
