package agents_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agentdeck/agentdeck/internal/agents"
	"github.com/agentdeck/agentdeck/pkg/pagination"
)

type fakeSystem struct {
	agents  map[int64]agents.Agent
	nextID  int64
	fail    error
	lastCmd *agents.CreateCommand
}

func newFakeSystem(seed ...agents.Agent) *fakeSystem {
	sys := &fakeSystem{agents: map[int64]agents.Agent{}, nextID: 1}
	for _, a := range seed {
		sys.agents[a.ID] = a
		if a.ID >= sys.nextID {
			sys.nextID = a.ID + 1
		}
	}
	return sys
}

func (f *fakeSystem) List(ctx context.Context, filters agents.Filters) ([]agents.Agent, error) {
	if f.fail != nil {
		return nil, f.fail
	}

	var result []agents.Agent
	for _, a := range f.agents {
		if filters.CollectionID != nil {
			if a.CollectionID == nil || *a.CollectionID != *filters.CollectionID {
				continue
			}
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeSystem) ByCollection(ctx context.Context, collectionID int64) ([]agents.Agent, error) {
	return f.List(ctx, agents.Filters{CollectionID: &collectionID})
}

func (f *fakeSystem) Search(ctx context.Context, page pagination.PageRequest, filters agents.Filters) (*pagination.PageResult[agents.Agent], error) {
	if f.fail != nil {
		return nil, f.fail
	}

	data, _ := f.List(ctx, filters)
	result := pagination.NewPageResult(data, len(data), 1, 20)
	return &result, nil
}

func (f *fakeSystem) Find(ctx context.Context, id int64) (*agents.Agent, error) {
	if f.fail != nil {
		return nil, f.fail
	}

	a, ok := f.agents[id]
	if !ok {
		return nil, agents.ErrNotFound
	}
	return &a, nil
}

func (f *fakeSystem) Create(ctx context.Context, cmd agents.CreateCommand) (*agents.Agent, error) {
	if f.fail != nil {
		return nil, f.fail
	}

	f.lastCmd = &cmd
	a := agents.Agent{
		ID:           f.nextID,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Prompt:       cmd.Prompt,
		Tools:        cmd.Tools,
		CollectionID: cmd.CollectionID,
	}
	f.agents[a.ID] = a
	f.nextID++
	return &a, nil
}

func (f *fakeSystem) Reassign(ctx context.Context, id int64, collectionID *int64) (*agents.Agent, error) {
	if f.fail != nil {
		return nil, f.fail
	}

	a, ok := f.agents[id]
	if !ok {
		return nil, agents.ErrNotFound
	}
	a.CollectionID = collectionID
	f.agents[id] = a
	return &a, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id int64) error {
	if f.fail != nil {
		return f.fail
	}

	if _, ok := f.agents[id]; !ok {
		return agents.ErrNotFound
	}
	delete(f.agents, id)
	return nil
}

func newTestHandler(sys agents.System) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := agents.NewHandler(sys, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})

	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
	}
	return mux
}

func TestHandler_List(t *testing.T) {
	handler := newTestHandler(newFakeSystem(agents.Agent{ID: 1, Name: "Scout"}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("got %d agents, want 1", len(body))
	}
	if body[0]["title"] != "Scout" {
		t.Errorf("title = %v, want Scout", body[0]["title"])
	}
}

func TestHandler_List_InvalidCollectionFilter(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents?collectionId=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Find_NotFound(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_Find_InvalidID(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Create(t *testing.T) {
	sys := newFakeSystem()
	handler := newTestHandler(sys)

	body := `{"title":"Scout","description":"Finds sources","prompt":"You research.","tools":["exa_search"],"collectionId":"2"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agents", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var resource map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resource); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resource["id"] != "1" {
		t.Errorf("id = %v, want decimal string 1", resource["id"])
	}
	if resource["collectionId"] != "2" {
		t.Errorf("collectionId = %v, want 2", resource["collectionId"])
	}
	if sys.lastCmd == nil || sys.lastCmd.Name != "Scout" {
		t.Error("create command did not reach the system")
	}
}

func TestHandler_Create_UnknownTool(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	body := `{"title":"Scout","description":"d","prompt":"p","tools":["time_travel"]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agents", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	body := `{"title":"Scout"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agents", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Reassign(t *testing.T) {
	sys := newFakeSystem(agents.Agent{ID: 1, Name: "Scout"})
	handler := newTestHandler(sys)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/agents/1", strings.NewReader(`{"collectionId":"7"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resource map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resource)
	if resource["collectionId"] != "7" {
		t.Errorf("collectionId = %v, want 7", resource["collectionId"])
	}
}

func TestHandler_Reassign_Unassign(t *testing.T) {
	collectionID := int64(3)
	sys := newFakeSystem(agents.Agent{ID: 1, Name: "Scout", CollectionID: &collectionID})
	handler := newTestHandler(sys)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/agents/1", strings.NewReader(`{"collectionId":null}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resource map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resource)
	if _, present := resource["collectionId"]; present {
		t.Errorf("collectionId = %v, want omitted after unassign", resource["collectionId"])
	}
}

func TestHandler_Delete(t *testing.T) {
	sys := newFakeSystem(agents.Agent{ID: 1, Name: "Scout"})
	handler := newTestHandler(sys)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/agents/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success || body.Message != "Agent deleted successfully" {
		t.Errorf("body = %+v, want success message", body)
	}
	if len(sys.agents) != 0 {
		t.Error("agent not removed from system")
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	handler := newTestHandler(newFakeSystem())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/agents/9", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_Search(t *testing.T) {
	handler := newTestHandler(newFakeSystem(agents.Agent{ID: 1, Name: "Scout"}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agents/search", strings.NewReader(`{"page":1,"page_size":20}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if result.Total != 1 || len(result.Data) != 1 {
		t.Errorf("result = %+v, want one agent", result)
	}
}
