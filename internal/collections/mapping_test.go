package collections_test

import (
	"testing"
	"time"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/internal/collections"
)

func TestToResource(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	resource := collections.ToResource(collections.Collection{
		ID:          4,
		Name:        "Research",
		Description: "Research agents",
		Color:       "#10b981",
		CreatedAt:   created,
	})

	if resource.ID != "4" {
		t.Errorf("ID = %q, want decimal string 4", resource.ID)
	}
	if resource.Color != "#10b981" {
		t.Errorf("Color = %q, want stored color", resource.Color)
	}
	if resource.CreatedAt != "2026-08-01T09:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339 UTC", resource.CreatedAt)
	}
	if resource.AgentCount != nil {
		t.Errorf("AgentCount = %v, want omitted without WithCount", resource.AgentCount)
	}
}

func TestToResource_ColorFallback(t *testing.T) {
	resource := collections.ToResource(collections.Collection{ID: 1, Name: "Research"})

	if resource.Color != collections.DefaultColor {
		t.Errorf("Color = %q, want default %q", resource.Color, collections.DefaultColor)
	}
}

func TestResource_WithCount(t *testing.T) {
	resource := collections.ToResource(collections.Collection{ID: 1, Name: "Research"}).WithCount(0)

	if resource.AgentCount == nil || *resource.AgentCount != 0 {
		t.Errorf("AgentCount = %v, want explicit 0", resource.AgentCount)
	}
}

func TestResource_WithAgents(t *testing.T) {
	resource := collections.ToResource(collections.Collection{ID: 1, Name: "Research"}).
		WithAgents([]agents.Agent{{ID: 2, Name: "Scout"}})

	if len(resource.Agents) != 1 {
		t.Fatalf("Agents has %d entries, want 1", len(resource.Agents))
	}
	if resource.Agents[0].Title != "Scout" {
		t.Errorf("Agents[0].Title = %q, want Scout", resource.Agents[0].Title)
	}
}

func TestToResources_AttachesCounts(t *testing.T) {
	resources := collections.ToResources([]collections.Collection{
		{ID: 1, Name: "Research", AgentCount: 3},
	})

	if len(resources) != 1 {
		t.Fatalf("got %d resources, want 1", len(resources))
	}
	if resources[0].AgentCount == nil || *resources[0].AgentCount != 3 {
		t.Errorf("AgentCount = %v, want 3", resources[0].AgentCount)
	}
}
