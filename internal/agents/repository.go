package agents

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agentdeck/agentdeck/pkg/pagination"
	"github.com/agentdeck/agentdeck/pkg/query"
	"github.com/agentdeck/agentdeck/pkg/repository"
)

// listLimit caps unpaginated list results at the most recent entries.
const listLimit = 50

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new agents repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "agents"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Agent, error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	q, args := qb.BuildList(listLimit)
	agents, err := repository.QueryMany(ctx, r.db, q, args, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	return agents, nil
}

func (r *repo) ByCollection(ctx context.Context, collectionID int64) ([]Agent, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC",
		projection.Columns(),
		projection.Table(),
		projection.Column("CollectionID"),
		projection.Column("ID"),
	)

	agents, err := repository.QueryMany(ctx, r.db, q, []any{collectionID}, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query collection agents: %w", err)
	}
	return agents, nil
}

func (r *repo) Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Agent], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count agents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	agents, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}

	result := pagination.NewPageResult(agents, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Agent, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAgent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Agent, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tools := cmd.Tools
	if tools == nil {
		tools = []string{}
	}
	toolsJSON, err := json.Marshal(tools)
	if err != nil {
		return nil, fmt.Errorf("marshal tools: %w", err)
	}

	q := `
		INSERT INTO agents (name, description, prompt, tools, collection_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, prompt, tools, collection_id, created_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Description, cmd.Prompt, toolsJSON, cmd.CollectionID}, scanAgent)
	})

	if err != nil {
		return nil, fmt.Errorf("insert agent: %w", err)
	}

	r.logger.Info("agent created", "id", a.ID, "title", a.Name)
	return &a, nil
}

func (r *repo) Reassign(ctx context.Context, id int64, collectionID *int64) (*Agent, error) {
	q := `
		UPDATE agents
		SET collection_id = $1
		WHERE id = $2
		RETURNING id, name, description, prompt, tools, collection_id, created_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		if collectionID != nil {
			var exists bool
			check := "SELECT EXISTS (SELECT 1 FROM collections WHERE id = $1)"
			if err := tx.QueryRowContext(ctx, check, *collectionID).Scan(&exists); err != nil {
				return Agent{}, err
			}
			if !exists {
				return Agent{}, ErrCollectionNotFound
			}
		}

		return repository.QueryOne(ctx, tx, q, []any{collectionID, id}, scanAgent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if a.CollectionID != nil {
		r.logger.Info("agent reassigned", "id", a.ID, "collection_id", *a.CollectionID)
	} else {
		r.logger.Info("agent unassigned", "id", a.ID)
	}
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM agents WHERE id = $1", id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent deleted", "id", id)
	return nil
}
