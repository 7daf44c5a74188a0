// Command seed populates the database with a starter catalog of collections
// and agents for local development. Seeding is idempotent: existing names are
// left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/agentdeck/agentdeck/internal/config"
	"github.com/agentdeck/agentdeck/internal/database"
	"github.com/agentdeck/agentdeck/internal/lifecycle"
	"github.com/agentdeck/agentdeck/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return err
	}

	lc := lifecycle.New()
	if err := db.Start(lc); err != nil {
		return err
	}
	defer lc.Shutdown(cfg.ShutdownTimeoutDuration())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeder := newSeeder(db.Connection(), logger)
	if err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}
