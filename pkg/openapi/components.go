package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents creates a Components pre-populated with the shared schemas and
// error responses every domain references.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Property{
					"page":      {Type: "integer", Description: "Page number (1-indexed)"},
					"page_size": {Type: "integer", Description: "Results per page"},
					"search":    {Type: "string", Description: "Search query"},
				},
			},
			"Message": {
				Type: "object",
				Properties: map[string]*Property{
					"success": {Type: "boolean"},
					"message": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {Description: "Invalid request payload or parameters"},
			"NotFound":   {Description: "Resource does not exist"},
			"Conflict":   {Description: "Resource conflicts with existing state"},
		},
	}
}

// AddSchemas merges additional schemas into the components without
// overwriting existing entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		if _, ok := c.Schemas[name]; !ok {
			c.Schemas[name] = schema
		}
	}
}

// AddResponses merges additional responses into the components without
// overwriting existing entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		if _, ok := c.Responses[name]; !ok {
			c.Responses[name] = response
		}
	}
}
