// Package agents provides the domain system for managing stored agent
// configurations: title, description, prompt, tool list, and collection
// membership.
package agents

import (
	"fmt"
	"strings"
	"time"
)

// Agent represents an agent configuration stored in the database.
// The stored name column surfaces as "title" on the wire; see mapping.go.
type Agent struct {
	ID           int64
	Name         string
	Description  string
	Prompt       string
	Tools        []string
	CollectionID *int64
	CreatedAt    time.Time
}

// CreateCommand contains the data required to create a new agent.
type CreateCommand struct {
	Name         string
	Description  string
	Prompt       string
	Tools        []string
	CollectionID *int64
}

// Normalize trims whitespace from the text fields and collapses the tool list
// to a deduplicated set.
func (c *CreateCommand) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Prompt = strings.TrimSpace(c.Prompt)
	c.Tools = dedupeTools(c.Tools)
}

// Validate checks that all required fields are present and that every tool
// identifier is part of the catalog.
func (c *CreateCommand) Validate() error {
	if c.Name == "" || c.Description == "" || c.Prompt == "" {
		return ErrValidation
	}

	for _, tool := range c.Tools {
		if !ValidTool(tool) {
			return fmt.Errorf("%w: %s", ErrUnknownTool, tool)
		}
	}
	return nil
}
