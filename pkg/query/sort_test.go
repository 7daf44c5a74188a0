package query_test

import (
	"testing"

	"github.com/agentdeck/agentdeck/pkg/query"
)

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name,-created_at")

	if len(fields) != 2 {
		t.Fatalf("ParseSortFields() returned %d fields, want 2", len(fields))
	}
	if fields[0].Field != "name" || fields[0].Descending {
		t.Errorf("ParseSortFields()[0] = %+v, want ascending name", fields[0])
	}
	if fields[1].Field != "created_at" || !fields[1].Descending {
		t.Errorf("ParseSortFields()[1] = %+v, want descending created_at", fields[1])
	}
}

func TestParseSortFields_Empty(t *testing.T) {
	if fields := query.ParseSortFields(""); fields != nil {
		t.Errorf("ParseSortFields(\"\") = %v, want nil", fields)
	}
	if fields := query.ParseSortFields(" , "); fields != nil {
		t.Errorf("ParseSortFields(blank parts) = %v, want nil", fields)
	}
}
