package assignments

import "github.com/agentdeck/agentdeck/pkg/openapi"

// spec holds OpenAPI operation definitions for bulk assignment.
type spec struct {
	BulkAssign *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the assignment endpoints.
var Spec = spec{
	BulkAssign: &openapi.Operation{
		Summary:     "Bulk assign agents",
		Description: "Moves a batch of agents into the collection, reporting per-item outcomes",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Collection id"),
		},
		RequestBody: openapi.RequestBodyJSON("BulkAssignRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Batch results", "BulkAssignResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas referenced by the assignment
// endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"BulkAssignRequest": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"agentIds": {Type: "array", Description: "Agent ids to move into the collection"},
			},
			Required: []string{"agentIds"},
		},
		"BulkAssignResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"assigned": {Type: "integer"},
				"failed":   {Type: "integer"},
				"results":  {Type: "array"},
			},
			Required: []string{"assigned", "failed", "results"},
		},
		"AssignmentResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":      {Type: "string"},
				"success": {Type: "boolean"},
				"error":   {Type: "string"},
			},
			Required: []string{"id", "success"},
		},
	}
}
