package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/agentdeck/agentdeck/pkg/repository"
)

type seeder struct {
	db     *sql.DB
	logger *slog.Logger
}

func newSeeder(db *sql.DB, logger *slog.Logger) *seeder {
	return &seeder{
		db:     db,
		logger: logger.With("system", "seed"),
	}
}

// Run seeds collections first, then agents referencing them by name. The
// whole seed runs in one transaction.
func (s *seeder) Run(ctx context.Context) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		ids, err := s.seedCollections(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, s.seedAgents(ctx, tx, ids)
	})
	return err
}

func (s *seeder) seedCollections(ctx context.Context, tx *sql.Tx) (map[string]int64, error) {
	ids := make(map[string]int64, len(seedCollections))

	for _, c := range seedCollections {
		var id int64
		err := tx.QueryRowContext(ctx, "SELECT id FROM collections WHERE name = $1", c.Name).Scan(&id)
		if err == nil {
			ids[c.Name] = id
			s.logger.Info("collection exists", "name", c.Name)
			continue
		}
		if err != sql.ErrNoRows {
			return nil, err
		}

		err = tx.QueryRowContext(ctx,
			"INSERT INTO collections (name, description, color) VALUES ($1, $2, $3) RETURNING id",
			c.Name, c.Description, c.Color,
		).Scan(&id)
		if err != nil {
			return nil, err
		}

		ids[c.Name] = id
		s.logger.Info("collection seeded", "name", c.Name, "id", id)
	}

	return ids, nil
}

func (s *seeder) seedAgents(ctx context.Context, tx *sql.Tx, collectionIDs map[string]int64) error {
	for _, a := range seedAgents {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM agents WHERE name = $1)", a.Title,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Info("agent exists", "title", a.Title)
			continue
		}

		tools, err := json.Marshal(a.Tools)
		if err != nil {
			return err
		}

		var collectionID *int64
		if a.Collection != "" {
			if id, ok := collectionIDs[a.Collection]; ok {
				collectionID = &id
			}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO agents (name, description, prompt, tools, collection_id) VALUES ($1, $2, $3, $4, $5)",
			a.Title, a.Description, a.Prompt, tools, collectionID,
		)
		if err != nil {
			return err
		}

		s.logger.Info("agent seeded", "title", a.Title)
	}

	return nil
}
