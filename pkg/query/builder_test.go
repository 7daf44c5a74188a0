package query_test

import (
	"strings"
	"testing"

	"github.com/agentdeck/agentdeck/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "agents", "a").
		Project("id", "ID").
		Project("name", "Name").
		Project("description", "Description")
}

func defaultSort() query.SortField {
	return query.SortField{Field: "ID", Descending: true}
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.agents a"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildList(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildList(50)

	if !strings.Contains(sql, "SELECT a.id, a.name, a.description FROM public.agents a") {
		t.Errorf("BuildList() missing select clause, got %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY a.id DESC") {
		t.Errorf("BuildList() missing default order by, got %q", sql)
	}
	if !strings.Contains(sql, "LIMIT 50") {
		t.Errorf("BuildList() missing limit, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildList() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, _ := b.BuildPage(3, 20)

	if !strings.Contains(sql, "LIMIT 20 OFFSET 40") {
		t.Errorf("BuildPage() wrong limit/offset, got %q", sql)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildSingle("ID", int64(7))

	if !strings.Contains(sql, "WHERE a.id = $1") {
		t.Errorf("BuildSingle() missing where clause, got %q", sql)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("BuildSingle() args = %v, want [7]", args)
	}
}

func TestBuilder_WhereEquals_ParameterNumbering(t *testing.T) {
	search := "scout"
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereContains("Name", &search).
		WhereEquals("ID", int64(3))

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "a.name ILIKE $1") {
		t.Errorf("BuildCount() missing first condition, got %q", sql)
	}
	if !strings.Contains(sql, "a.id = $2") {
		t.Errorf("BuildCount() missing second condition, got %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("BuildCount() conditions not joined with AND, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("BuildCount() args = %v, want 2 entries", args)
	}
	if args[0] != "%scout%" {
		t.Errorf("BuildCount() args[0] = %v, want %%scout%%", args[0])
	}
}

func TestBuilder_WhereContains_NilIgnored(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereContains("Name", nil)

	sql, args := b.BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("BuildCount() should have no where clause, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_WhereSearch_MultipleFields(t *testing.T) {
	search := "research"
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereSearch(&search, "Name", "Description")

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "(a.name ILIKE $1 OR a.description ILIKE $2)") {
		t.Errorf("BuildCount() missing search clause, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("BuildCount() args = %v, want 2 entries", args)
	}
}

func TestBuilder_WhereNull(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereNull("Description", true)

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "a.description IS NULL") {
		t.Errorf("BuildCount() missing null clause, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_OrderByFields_OverridesDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		OrderByFields([]query.SortField{
			{Field: "Name"},
			{Field: "ID", Descending: true},
		})

	sql, _ := b.BuildList(10)

	if !strings.Contains(sql, "ORDER BY a.name ASC, a.id DESC") {
		t.Errorf("BuildList() wrong order by, got %q", sql)
	}
}

func TestBuilder_UnknownFieldPassesThrough(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("missing_col", 1)

	sql, _ := b.BuildCount()

	if !strings.Contains(sql, "missing_col = $1") {
		t.Errorf("BuildCount() unknown field should pass through, got %q", sql)
	}
}
