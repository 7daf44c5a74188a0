package main

import (
	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/internal/assignments"
	"github.com/agentdeck/agentdeck/internal/collections"
)

// Domain holds the domain systems built on top of the runtime.
type Domain struct {
	Agents      agents.System
	Collections collections.System
	Assignments assignments.System
}

// NewDomain constructs the domain systems against the runtime's database
// connection.
func NewDomain(rt *Runtime) *Domain {
	agentSys := agents.New(rt.Database.Connection(), rt.Logger, rt.Config.Pagination)

	return &Domain{
		Agents:      agentSys,
		Collections: collections.New(rt.Database.Connection(), rt.Logger),
		Assignments: assignments.New(agentSys, rt.Logger),
	}
}
