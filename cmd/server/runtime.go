package main

import (
	"fmt"
	"log/slog"

	"github.com/agentdeck/agentdeck/internal/config"
	"github.com/agentdeck/agentdeck/internal/database"
	"github.com/agentdeck/agentdeck/internal/lifecycle"
	"github.com/agentdeck/agentdeck/pkg/logging"
)

// Runtime holds the shared infrastructure every domain system depends on.
type Runtime struct {
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle *lifecycle.Coordinator
	Database  database.System
}

// NewRuntime builds the runtime from configuration: logger, lifecycle
// coordinator, and database pool.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return &Runtime{
		Config:    cfg,
		Logger:    logger,
		Lifecycle: lifecycle.New(),
		Database:  db,
	}, nil
}
