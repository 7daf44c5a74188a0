package collections

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/pkg/repository"
)

// color is nullable in the schema; rows without one take the default.
func scanCollection(s repository.Scanner) (Collection, error) {
	var c Collection
	var color sql.NullString
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &color, &c.CreatedAt); err != nil {
		return c, err
	}
	c.Color = storedColor(color)
	return c, nil
}

func scanCollectionWithCount(s repository.Scanner) (Collection, error) {
	var c Collection
	var color sql.NullString
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &color, &c.CreatedAt, &c.AgentCount); err != nil {
		return c, err
	}
	c.Color = storedColor(color)
	return c, nil
}

func storedColor(color sql.NullString) string {
	if color.Valid && color.String != "" {
		return color.String
	}
	return DefaultColor
}

// Resource is the wire representation of a Collection. Identifiers are coerced
// to decimal strings; agentCount and agents only appear on the endpoints that
// compute them.
type Resource struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
	AgentCount  *int              `json:"agentCount,omitempty"`
	Agents      []agents.Resource `json:"agents,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
}

// ToResource maps a Collection to its wire representation.
func ToResource(c Collection) Resource {
	r := Resource{
		ID:          strconv.FormatInt(c.ID, 10),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}

	if r.Color == "" {
		r.Color = DefaultColor
	}
	if !c.CreatedAt.IsZero() {
		r.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}

	return r
}

// WithCount returns a copy of the resource carrying the agent count.
func (r Resource) WithCount(count int) Resource {
	r.AgentCount = &count
	return r
}

// WithAgents returns a copy of the resource carrying the member agents.
func (r Resource) WithAgents(members []agents.Agent) Resource {
	r.Agents = agents.ToResources(members)
	return r
}

// ToResources maps a slice of Collections to wire representations, attaching
// each collection's agent count. Nil input maps to an empty array.
func ToResources(collections []Collection) []Resource {
	resources := make([]Resource, len(collections))
	for i, c := range collections {
		resources[i] = ToResource(c).WithCount(c.AgentCount)
	}
	return resources
}
