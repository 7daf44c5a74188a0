package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentdeck/agentdeck/internal/middleware"
)

func TestTrimSlash_Redirects(t *testing.T) {
	handler := middleware.TrimSlash()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/agents/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("status = %d, want 301", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/api/agents" {
		t.Errorf("Location = %q, want /api/agents", got)
	}
}

func TestTrimSlash_PreservesQuery(t *testing.T) {
	handler := middleware.TrimSlash()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/agents/?collectionId=1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Location"); got != "/api/agents?collectionId=1" {
		t.Errorf("Location = %q, want query preserved", got)
	}
}

func TestTrimSlash_RootUntouched(t *testing.T) {
	handler := middleware.TrimSlash()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for root path", rec.Code)
	}
}

func TestApply_Order(t *testing.T) {
	var order []string
	mw := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stack := middleware.New()
	stack.Use(mw("outer"))
	stack.Use(mw("inner"))

	handler := stack.Apply(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}
