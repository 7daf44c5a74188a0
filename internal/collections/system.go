package collections

import "context"

// System defines the interface for collection storage and retrieval
// operations.
type System interface {
	List(ctx context.Context) ([]Collection, error)
	Find(ctx context.Context, id int64) (*Collection, error)
	CreateOrReplace(ctx context.Context, cmd CreateCommand) (*Collection, bool, error)
	Delete(ctx context.Context, id int64) error
}
