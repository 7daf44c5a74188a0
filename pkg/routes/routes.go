// Package routes provides HTTP route registration and handler building.
// Domain handlers describe their endpoints as groups; the registrar builds
// the final multiplexer from everything registered.
package routes

import (
	"net/http"

	"github.com/agentdeck/agentdeck/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
