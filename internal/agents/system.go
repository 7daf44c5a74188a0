package agents

import (
	"context"

	"github.com/agentdeck/agentdeck/pkg/pagination"
)

// System defines the interface for agent storage and retrieval operations.
type System interface {
	List(ctx context.Context, filters Filters) ([]Agent, error)
	ByCollection(ctx context.Context, collectionID int64) ([]Agent, error)
	Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Agent], error)
	Find(ctx context.Context, id int64) (*Agent, error)
	Create(ctx context.Context, cmd CreateCommand) (*Agent, error)
	Reassign(ctx context.Context, id int64, collectionID *int64) (*Agent, error)
	Delete(ctx context.Context, id int64) error
}
