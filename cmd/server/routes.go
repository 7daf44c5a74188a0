package main

import (
	"net/http"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/internal/assignments"
	"github.com/agentdeck/agentdeck/internal/collections"
	"github.com/agentdeck/agentdeck/internal/lifecycle"
	"github.com/agentdeck/agentdeck/pkg/handlers"
	"github.com/agentdeck/agentdeck/pkg/openapi"
	"github.com/agentdeck/agentdeck/pkg/routes"
)

// registerRoutes builds the route system from the domain handlers plus the
// service-level endpoints: the tool catalog, health probes, and the generated
// OpenAPI document.
func registerRoutes(rt *Runtime, d *Domain) routes.System {
	sys := routes.New(rt.Logger)

	sys.RegisterGroup(agents.NewHandler(d.Agents, rt.Logger, rt.Config.Pagination).Routes())
	sys.RegisterGroup(collections.NewHandler(d.Collections, d.Agents, rt.Logger).Routes())
	sys.RegisterGroup(assignments.NewHandler(d.Assignments, rt.Logger).Routes())

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/api/tools",
		Handler: toolsHandler,
		OpenAPI: toolsSpec,
	})

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handlers.RespondMessage(w, http.StatusOK, "ok")
		},
	})

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: readyHandler(rt.Lifecycle),
	})

	spec := generateSpec(rt.Config, sys)
	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/api/openapi.json",
		Handler: specHandler(spec),
	})

	return sys
}

var toolsSpec = &openapi.Operation{
	Summary:     "List tools",
	Description: "Returns the fixed catalog of tools agents may reference",
	Tags:        []string{"Tools"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Tool catalog", "ToolList"),
	},
}

func toolsHandler(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, agents.Catalog)
}

// readyHandler reports 503 until every startup hook has completed.
func readyHandler(checker lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]bool{"ready": false})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ready": true})
	}
}

func specHandler(spec *openapi.Spec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := openapi.MarshalJSON(spec)
		if err != nil {
			http.Error(w, "failed to serialize specification", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
