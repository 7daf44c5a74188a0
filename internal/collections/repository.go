package collections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agentdeck/agentdeck/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a new collections repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "collections"),
	}
}

const listQuery = `
	SELECT c.id, c.name, c.description, c.color, c.created_at, COUNT(a.id)
	FROM collections c
	LEFT JOIN agents a ON a.collection_id = c.id
	GROUP BY c.id
	ORDER BY c.id DESC`

func (r *repo) List(ctx context.Context) ([]Collection, error) {
	collections, err := repository.QueryMany(ctx, r.db, listQuery, nil, scanCollectionWithCount)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	return collections, nil
}

const findQuery = `
	SELECT c.id, c.name, c.description, c.color, c.created_at, COUNT(a.id)
	FROM collections c
	LEFT JOIN agents a ON a.collection_id = c.id
	WHERE c.id = $1
	GROUP BY c.id`

func (r *repo) Find(ctx context.Context, id int64) (*Collection, error) {
	c, err := repository.QueryOne(ctx, r.db, findQuery, []any{id}, scanCollectionWithCount)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

const byNameQuery = `
	SELECT c.id, c.name, c.description, c.color, c.created_at
	FROM collections c
	WHERE c.name = $1`

const insertQuery = `
	INSERT INTO collections (name, description, color)
	VALUES ($1, $2, $3)
	RETURNING id, name, description, color, created_at`

const replaceQuery = `
	UPDATE collections
	SET description = $2, color = $3
	WHERE id = $1
	RETURNING id, name, description, color, created_at`

type createResult struct {
	collection Collection
	replaced   bool
}

// CreateOrReplace creates a collection, reporting whether an existing
// collection with the same name was replaced. A conflicting name without the
// replace flag yields a ConflictError carrying the existing collection; with
// the flag set, the existing row is updated in place so its id and member
// agents survive. The unique index on name closes the check-then-insert race;
// the losing writer observes a duplicate violation and resolves it to the
// same ConflictError.
func (r *repo) CreateOrReplace(ctx context.Context, cmd CreateCommand) (*Collection, bool, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (createResult, error) {
		existing, err := repository.QueryOne(ctx, tx, byNameQuery, []any{cmd.Name}, scanCollection)
		found := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return createResult{}, err
		}

		if found && !cmd.Replace {
			return createResult{}, &ConflictError{Existing: existing}
		}

		if found {
			c, err := repository.QueryOne(ctx, tx, replaceQuery, []any{existing.ID, cmd.Description, cmd.Color}, scanCollection)
			if err != nil {
				return createResult{}, err
			}
			return createResult{collection: c, replaced: true}, nil
		}

		c, err := repository.QueryOne(ctx, tx, insertQuery, []any{cmd.Name, cmd.Description, cmd.Color}, scanCollection)
		if err != nil {
			return createResult{}, err
		}

		return createResult{collection: c, replaced: false}, nil
	})

	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, false, conflict
		}

		if errors.Is(repository.MapError(err, ErrNotFound, ErrDuplicate), ErrDuplicate) {
			return r.resolveConflict(ctx, cmd.Name)
		}

		return nil, false, fmt.Errorf("create collection: %w", err)
	}

	if result.replaced {
		r.logger.Info("collection replaced", "id", result.collection.ID, "name", result.collection.Name)
	} else {
		r.logger.Info("collection created", "id", result.collection.ID, "name", result.collection.Name)
	}

	return &result.collection, result.replaced, nil
}

// resolveConflict re-reads the collection that won a concurrent insert so the
// conflict response can include it.
func (r *repo) resolveConflict(ctx context.Context, name string) (*Collection, bool, error) {
	existing, err := repository.QueryOne(ctx, r.db, byNameQuery, []any{name}, scanCollection)
	if err != nil {
		return nil, false, ErrDuplicate
	}
	return nil, false, &ConflictError{Existing: existing}
}

// Delete removes a collection after releasing its agents, in a single
// transaction. Agents keep their configurations and become unassigned.
func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx, "UPDATE agents SET collection_id = NULL WHERE collection_id = $1", id); err != nil {
			return struct{}{}, err
		}

		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM collections WHERE id = $1", id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("collection deleted", "id", id)
	return nil
}
