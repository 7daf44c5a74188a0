package agents

import (
	"database/sql"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/agentdeck/agentdeck/pkg/query"
	"github.com/agentdeck/agentdeck/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agents", "a").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("prompt", "Prompt").
	Project("tools", "Tools").
	Project("collection_id", "CollectionID").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "ID", Descending: true}

func scanAgent(s repository.Scanner) (Agent, error) {
	var (
		a            Agent
		toolsJSON    []byte
		collectionID sql.NullInt64
	)

	err := s.Scan(&a.ID, &a.Name, &a.Description, &a.Prompt, &toolsJSON, &collectionID, &a.CreatedAt)
	if err != nil {
		return a, err
	}

	if len(toolsJSON) > 0 {
		if err := json.Unmarshal(toolsJSON, &a.Tools); err != nil {
			return a, err
		}
	}
	if collectionID.Valid {
		a.CollectionID = &collectionID.Int64
	}

	return a, nil
}

// Filters contains optional filtering criteria for agent queries.
type Filters struct {
	CollectionID *int64
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var filters Filters

	if v := values.Get("collectionId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filters, ErrValidation
		}
		filters.CollectionID = &id
	}

	return filters, nil
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.CollectionID != nil {
		b.WhereEquals("CollectionID", *f.CollectionID)
	}
	return b
}

// Resource is the wire representation of an Agent. Database identifiers are
// coerced to decimal strings and the stored name column surfaces as "title".
type Resource struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Prompt       string   `json:"prompt"`
	Tools        []string `json:"tools"`
	CollectionID *string  `json:"collectionId,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// ToResource maps an Agent to its wire representation.
func ToResource(a Agent) Resource {
	r := Resource{
		ID:          strconv.FormatInt(a.ID, 10),
		Title:       a.Name,
		Description: a.Description,
		Prompt:      a.Prompt,
		Tools:       a.Tools,
	}

	if r.Tools == nil {
		r.Tools = []string{}
	}
	if a.CollectionID != nil {
		id := strconv.FormatInt(*a.CollectionID, 10)
		r.CollectionID = &id
	}
	if !a.CreatedAt.IsZero() {
		r.CreatedAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}

	return r
}

// ToResources maps a slice of Agents to wire representations. Nil input maps
// to an empty array so list endpoints never serialize null.
func ToResources(agents []Agent) []Resource {
	resources := make([]Resource, len(agents))
	for i, a := range agents {
		resources[i] = ToResource(a)
	}
	return resources
}
