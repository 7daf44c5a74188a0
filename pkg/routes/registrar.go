package routes

import (
	"log/slog"
	"net/http"
)

type registrar struct {
	routes []Route
	groups []Group
	logger *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) System {
	return &registrar{
		logger: logger,
		groups: []Group{},
		routes: []Route{},
	}
}

func (r *registrar) Groups() []Group {
	return r.groups
}

func (r *registrar) Routes() []Route {
	return r.routes
}

// RegisterRoute adds a route to the route system.
func (r *registrar) RegisterRoute(route Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *registrar) RegisterGroup(group Group) {
	r.groups = append(r.groups, group)
}

// Build constructs an http.Handler from all registered routes and groups.
func (r *registrar) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range r.routes {
		r.register(mux, "", route)
	}

	for _, group := range r.groups {
		r.registerGroup(mux, "", group)
	}

	return mux
}

func (r *registrar) registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		r.register(mux, fullPrefix, route)
	}
	for _, child := range group.Children {
		r.registerGroup(mux, fullPrefix, child)
	}
}

func (r *registrar) register(mux *http.ServeMux, prefix string, route Route) {
	pattern := route.Method + " " + prefix + route.Pattern
	mux.HandleFunc(pattern, route.Handler)
	r.logger.Debug("route registered", "pattern", pattern)
}
