package store

import (
	"context"

	"github.com/chazuruo/warpflow/internal/workflows"
)

// Repository defines the operations every workflow source supports.
//
// Workflows are passed and returned by value; implementations hand out
// copies so callers cannot modify the stored collection. Implementations
// are not safe for concurrent use.
type Repository interface {
	// Refresh reloads the collection from its backing store.
	Refresh(ctx context.Context) error

	// GetWorkflow returns the first workflow whose name equals name.
	GetWorkflow(name string) (workflows.Workflow, error)

	// GetWorkflows returns every workflow in the collection.
	GetWorkflows() ([]workflows.Workflow, error)

	// SaveWorkflow adds wf to the in-memory collection.
	SaveWorkflow(wf workflows.Workflow) error

	// DeleteWorkflow removes every workflow named name.
	DeleteWorkflow(name string) error

	// QueryWorkflows returns the workflows matching query.
	QueryWorkflows(query string) ([]workflows.Workflow, error)
}

var (
	_ Repository = (*DirectoryStore)(nil)
	_ Repository = (*GitStore)(nil)
	_ Repository = (*Composite)(nil)
)
