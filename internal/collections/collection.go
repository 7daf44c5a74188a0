package collections

import (
	"strings"
	"time"
)

// DefaultColor is applied when a collection is created without an explicit
// display color.
const DefaultColor = "#3b82f6"

// Collection is a named grouping of agents with a display color.
type Collection struct {
	ID          int64
	Name        string
	Description string
	Color       string
	AgentCount  int
	CreatedAt   time.Time
}

// CreateCommand carries the fields for creating or replacing a collection.
type CreateCommand struct {
	Name        string
	Description string
	Color       string
	Replace     bool
}

// Normalize trims whitespace and applies the default color.
func (c *CreateCommand) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Color = strings.TrimSpace(c.Color)

	if c.Color == "" {
		c.Color = DefaultColor
	}
}

// Validate ensures required fields are present.
func (c CreateCommand) Validate() error {
	if c.Name == "" || c.Description == "" {
		return ErrValidation
	}
	return nil
}
