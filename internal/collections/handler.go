package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/pkg/handlers"
	"github.com/agentdeck/agentdeck/pkg/routes"
)

// Handler provides HTTP handlers for collection endpoints.
type Handler struct {
	sys    System
	agents agents.System
	logger *slog.Logger
}

// NewHandler creates a new collections HTTP handler. The agents system is used
// to expand a collection's members on detail reads.
func NewHandler(sys System, agentSys agents.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		agents: agentSys,
		logger: logger,
	}
}

// Routes returns the route group configuration for collection endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/collections",
		Tags:        []string{"Collections"},
		Description: "Named agent collections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

// List handles GET /api/collections to retrieve all collections with their
// agent counts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToResources(collections))
}

// Find handles GET /api/collections/{id} to retrieve a collection along with
// its member agents.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	collection, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	members, err := h.agents.ByCollection(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	resource := ToResource(*collection).
		WithCount(collection.AgentCount).
		WithAgents(members)

	handlers.RespondJSON(w, http.StatusOK, resource)
}

// conflictResponse is the 409 body for a name collision, carrying the
// collection that currently holds the name.
type conflictResponse struct {
	Error              string   `json:"error"`
	ExistingCollection Resource `json:"existingCollection"`
}

// Create handles POST /api/collections. A name collision without the
// replaceExisting flag responds 409 with the existing collection; with the
// flag set the existing collection is overwritten in place, keeping its id
// and member agents.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	collection, replaced, err := h.sys.CreateOrReplace(r.Context(), cmd)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			h.logger.Warn("collection name conflict", "name", cmd.Name)
			handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
				Error:              "Collection with this name already exists",
				ExistingCollection: ToResource(conflict.Existing),
			})
			return
		}

		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}

	handlers.RespondJSON(w, status, ToResource(*collection).WithCount(collection.AgentCount))
}

// Delete handles DELETE /api/collections/{id}. Member agents survive and
// become unassigned.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, "Collection deleted successfully")
}

func parsePathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid collection id")
	}
	return id, nil
}
