package agents

import "github.com/agentdeck/agentdeck/pkg/openapi"

// spec holds OpenAPI operation definitions for the agents domain.
type spec struct {
	List     *openapi.Operation
	Find     *openapi.Operation
	Create   *openapi.Operation
	Search   *openapi.Operation
	Reassign *openapi.Operation
	Delete   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all agent endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List agents",
		Description: "Returns the 50 most recently created agents, optionally filtered by collection",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("collectionId", "string", "Filter by collection id", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("List of agents", "AgentList"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get agent by ID",
		Description: "Retrieves a single agent configuration",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Agent id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent configuration", "Agent"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create agent",
		Description: "Validates and stores a new agent configuration",
		RequestBody: openapi.RequestBodyJSON("CreateAgentRequest", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Agent created", "Agent"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search agents",
		Description: "Search agents with pagination and sorting via POST body",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("collectionId", "string", "Filter by collection id", false),
		},
		RequestBody: openapi.RequestBodyJSON("PageRequest", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated search results", "AgentPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Reassign: &openapi.Operation{
		Summary:     "Reassign agent",
		Description: "Moves the agent to another collection, or clears the assignment when collectionId is null",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Agent id"),
		},
		RequestBody: openapi.RequestBodyJSON("ReassignAgentRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent updated", "Agent"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete agent",
		Description: "Removes an agent configuration",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Agent id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent deleted", "Message"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by the agent endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	agent := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Property{
			"id":           {Type: "string", Example: "1"},
			"title":        {Type: "string"},
			"description":  {Type: "string"},
			"prompt":       {Type: "string"},
			"tools":        {Type: "array", Description: "Tool identifiers from the catalog"},
			"collectionId": {Type: "string"},
			"createdAt":    {Type: "string", Format: "date-time"},
		},
		Required: []string{"id", "title", "description", "prompt", "tools"},
	}

	return map[string]*openapi.Schema{
		"Agent": agent,
		"AgentList": {
			Type:  "array",
			Items: openapi.SchemaRef("Agent"),
		},
		"AgentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array"},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"CreateAgentRequest": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"title":        {Type: "string"},
				"description":  {Type: "string"},
				"prompt":       {Type: "string"},
				"tools":        {Type: "array", Description: "Tool identifiers from the catalog"},
				"collectionId": {Type: "string"},
			},
			Required: []string{"title", "description", "prompt"},
		},
		"ReassignAgentRequest": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"collectionId": {Type: "string", Description: "Target collection id, null to unassign"},
			},
		},
		"Tool": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"value": {Type: "string"},
				"label": {Type: "string"},
			},
		},
	}
}
