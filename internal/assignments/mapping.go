package assignments

import (
	"strconv"

	"github.com/agentdeck/agentdeck/internal/agents"
)

// BulkRequest is the POST /api/collections/{id}/agents request body.
type BulkRequest struct {
	AgentIDs []string `json:"agentIds"`
}

// ToAgentIDs parses the wire agent ids. Any unparseable id fails the whole
// request before work starts.
func (r BulkRequest) ToAgentIDs() ([]int64, error) {
	ids := make([]int64, len(r.AgentIDs))
	for i, s := range r.AgentIDs {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, agents.ErrValidation
		}
		ids[i] = id
	}
	return ids, nil
}

// ResultResource is the wire representation of a single assignment outcome.
type ResultResource struct {
	ID      string           `json:"id"`
	Success bool             `json:"success"`
	Agent   *agents.Resource `json:"agent,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// BulkResource is the wire representation of a completed batch.
type BulkResource struct {
	Assigned int              `json:"assigned"`
	Failed   int              `json:"failed"`
	Results  []ResultResource `json:"results"`
}

// ToResource maps batch results to the wire representation.
func ToResource(results []Result) BulkResource {
	out := BulkResource{
		Results: make([]ResultResource, len(results)),
	}

	for i, r := range results {
		rr := ResultResource{
			ID:      strconv.FormatInt(r.AgentID, 10),
			Success: r.Err == nil,
		}

		if r.Err != nil {
			rr.Error = r.Err.Error()
			out.Failed++
		} else {
			out.Assigned++
			if r.Agent != nil {
				agent := agents.ToResource(*r.Agent)
				rr.Agent = &agent
			}
		}

		out.Results[i] = rr
	}

	return out
}
