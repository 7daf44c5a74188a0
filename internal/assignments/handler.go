package assignments

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/pkg/handlers"
	"github.com/agentdeck/agentdeck/pkg/routes"
)

// Handler provides the HTTP handler for bulk assignment.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new assignments HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for assignment endpoints. The
// group shares the /api/collections prefix with the collections handler.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/collections",
		Tags:        []string{"Collections"},
		Description: "Bulk agent assignment",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{id}/agents", Handler: h.BulkAssign, OpenAPI: Spec.BulkAssign},
		},
	}
}

// BulkAssign handles POST /api/collections/{id}/agents to move a batch of
// agents into the collection. The batch always completes; per-item outcomes
// are reported in the response.
func (h *Handler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	collectionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid collection id"))
		return
	}

	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	ids, err := req.ToAgentIDs()
	if err != nil {
		handlers.RespondError(w, h.logger, agents.MapHTTPStatus(err), err)
		return
	}

	results := h.sys.BulkAssign(r.Context(), collectionID, ids)
	handlers.RespondJSON(w, http.StatusOK, ToResource(results))
}
