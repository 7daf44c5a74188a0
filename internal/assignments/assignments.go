// Package assignments implements bulk reassignment of agents into a
// collection. Items are processed concurrently and failures are reported
// per item rather than aborting the batch.
package assignments

import (
	"context"
	"log/slog"
	"sync"

	"github.com/agentdeck/agentdeck/internal/agents"
)

// Result reports the outcome of a single assignment within a batch.
type Result struct {
	AgentID int64
	Agent   *agents.Agent
	Err     error
}

// System defines the interface for bulk assignment operations.
type System interface {
	BulkAssign(ctx context.Context, collectionID int64, agentIDs []int64) []Result
}

type workflow struct {
	agents agents.System
	logger *slog.Logger
}

// New creates a bulk assignment workflow backed by the agents system.
func New(agentSys agents.System, logger *slog.Logger) System {
	return &workflow{
		agents: agentSys,
		logger: logger.With("system", "assignments"),
	}
}

// BulkAssign moves every listed agent into the target collection. Assignments
// run concurrently; each result lands at the index of its agent id so output
// order matches input order. Reassigning an agent already in the target
// collection is a no-op success.
func (w *workflow) BulkAssign(ctx context.Context, collectionID int64, agentIDs []int64) []Result {
	results := make([]Result, len(agentIDs))

	var wg sync.WaitGroup
	for i, id := range agentIDs {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()

			agent, err := w.agents.Reassign(ctx, id, &collectionID)
			results[i] = Result{AgentID: id, Agent: agent, Err: err}
		}(i, id)
	}
	wg.Wait()

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
		}
	}

	w.logger.Info("bulk assignment complete",
		"collection_id", collectionID,
		"total", len(agentIDs),
		"failed", failures,
	)

	return results
}
