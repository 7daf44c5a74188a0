// Package database manages the PostgreSQL connection pool and schema
// migrations for the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/agentdeck/agentdeck/internal/lifecycle"
	"github.com/agentdeck/agentdeck/pkg/database"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// System provides access to the database connection and manages its
// lifecycle.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Connection() *sql.DB
}

type system struct {
	db     *sql.DB
	cfg    *database.Config
	logger *slog.Logger
}

// New opens the connection pool with the configured limits. The connection is
// not verified until Start.
func New(cfg *database.Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &system{
		db:     db,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

// Connection returns the shared connection pool.
func (s *system) Connection() *sql.DB {
	return s.db
}

// Start verifies connectivity, applies pending migrations, and registers the
// pool for shutdown.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	s.logger.Info("database connected", "host", s.cfg.Host, "name", s.cfg.Name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	})

	return nil
}
