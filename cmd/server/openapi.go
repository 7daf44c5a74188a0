package main

import (
	"strings"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/internal/assignments"
	"github.com/agentdeck/agentdeck/internal/collections"
	"github.com/agentdeck/agentdeck/internal/config"
	"github.com/agentdeck/agentdeck/pkg/openapi"
	"github.com/agentdeck/agentdeck/pkg/routes"
)

// generateSpec walks the registered routes and assembles the OpenAPI 3.1
// document served at /api/openapi.json.
func generateSpec(cfg *config.Config, sys routes.System) *openapi.Spec {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:       cfg.OpenAPI.Title,
			Version:     cfg.Version,
			Description: cfg.OpenAPI.Description,
		},
		Paths:      map[string]*openapi.PathItem{},
		Components: openapi.NewComponents(),
	}

	spec.Components.AddSchemas(agents.Spec.Schemas())
	spec.Components.AddSchemas(collections.Spec.Schemas())
	spec.Components.AddSchemas(assignments.Spec.Schemas())
	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"ToolList": {
			Type:  "array",
			Items: openapi.SchemaRef("Tool"),
		},
	})

	for _, route := range sys.Routes() {
		addOperation(spec, "", route, nil)
	}
	for _, group := range sys.Groups() {
		addGroup(spec, "", group)
	}

	return spec
}

func addGroup(spec *openapi.Spec, parentPrefix string, group routes.Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		addOperation(spec, prefix, route, group.Tags)
	}
	for _, child := range group.Children {
		addGroup(spec, prefix, child)
	}
}

func addOperation(spec *openapi.Spec, prefix string, route routes.Route, tags []string) {
	if route.OpenAPI == nil {
		return
	}

	path := prefix + route.Pattern
	item, ok := spec.Paths[path]
	if !ok {
		item = &openapi.PathItem{}
		spec.Paths[path] = item
	}

	op := route.OpenAPI
	if len(op.Tags) == 0 {
		op.Tags = tags
	}

	switch strings.ToUpper(route.Method) {
	case "GET":
		item.Get = op
	case "POST":
		item.Post = op
	case "PUT":
		item.Put = op
	case "PATCH":
		item.Patch = op
	case "DELETE":
		item.Delete = op
	}
}
