package collections

import "github.com/agentdeck/agentdeck/pkg/openapi"

// spec holds OpenAPI operation definitions for the collections domain.
type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all collection endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List collections",
		Description: "Returns all collections with their agent counts, newest first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("List of collections", "CollectionList"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get collection by ID",
		Description: "Retrieves a collection along with its member agents",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Collection id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection with members", "Collection"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create collection",
		Description: "Creates a collection; a name conflict responds 409 unless replaceExisting is set, in which case the existing collection is overwritten in place",
		RequestBody: openapi.RequestBodyJSON("CreateCollectionRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Existing collection replaced", "Collection"),
			201: openapi.ResponseJSON("Collection created", "Collection"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseJSON("Name conflict", "CollectionConflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete collection",
		Description: "Removes a collection; member agents are kept and become unassigned",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Collection id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection deleted", "Message"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by the collection
// endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Collection": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":          {Type: "string", Example: "1"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"color":       {Type: "string", Example: DefaultColor},
				"agentCount":  {Type: "integer"},
				"agents":      {Type: "array", Description: "Member agents, present on detail reads"},
				"createdAt":   {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "name", "description", "color"},
		},
		"CollectionList": {
			Type:  "array",
			Items: openapi.SchemaRef("Collection"),
		},
		"CreateCollectionRequest": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"name":            {Type: "string"},
				"description":     {Type: "string"},
				"color":           {Type: "string", Description: "Hex display color, defaults to " + DefaultColor},
				"replaceExisting": {Type: "boolean", Description: "Overwrite an existing collection with the same name"},
			},
			Required: []string{"name", "description"},
		},
		"CollectionConflict": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"error": {Type: "string"},
			},
			Required: []string{"error", "existingCollection"},
		},
	}
}
