package agents_test

import (
	"errors"
	"testing"

	"github.com/agentdeck/agentdeck/internal/agents"
)

func strPtr(s string) *string { return &s }

func TestCreateRequest_ToCommand(t *testing.T) {
	req := agents.CreateRequest{
		Title:        " Scout ",
		Description:  "Finds sources",
		Prompt:       "You research.",
		Tools:        []string{"exa_search"},
		CollectionID: strPtr("4"),
	}

	cmd, err := req.ToCommand()
	if err != nil {
		t.Fatalf("ToCommand() error = %v", err)
	}

	if cmd.Name != "Scout" {
		t.Errorf("Name = %q, want title mapped and trimmed", cmd.Name)
	}
	if cmd.CollectionID == nil || *cmd.CollectionID != 4 {
		t.Errorf("CollectionID = %v, want 4", cmd.CollectionID)
	}
}

func TestCreateRequest_ToCommand_NoCollection(t *testing.T) {
	req := agents.CreateRequest{
		Title:       "Scout",
		Description: "Finds sources",
		Prompt:      "You research.",
	}

	cmd, err := req.ToCommand()
	if err != nil {
		t.Fatalf("ToCommand() error = %v", err)
	}
	if cmd.CollectionID != nil {
		t.Errorf("CollectionID = %v, want nil", cmd.CollectionID)
	}
}

func TestCreateRequest_ToCommand_InvalidCollectionID(t *testing.T) {
	req := agents.CreateRequest{
		Title:        "Scout",
		Description:  "Finds sources",
		Prompt:       "You research.",
		CollectionID: strPtr("four"),
	}

	if _, err := req.ToCommand(); !errors.Is(err, agents.ErrValidation) {
		t.Errorf("ToCommand() = %v, want ErrValidation", err)
	}
}

func TestCreateRequest_ToCommand_MissingFields(t *testing.T) {
	req := agents.CreateRequest{Title: "Scout"}

	if _, err := req.ToCommand(); !errors.Is(err, agents.ErrValidation) {
		t.Errorf("ToCommand() = %v, want ErrValidation", err)
	}
}

func TestReassignRequest_ToCollectionID(t *testing.T) {
	id, err := agents.ReassignRequest{CollectionID: strPtr("9")}.ToCollectionID()
	if err != nil {
		t.Fatalf("ToCollectionID() error = %v", err)
	}
	if id == nil || *id != 9 {
		t.Errorf("ToCollectionID() = %v, want 9", id)
	}
}

func TestReassignRequest_ToCollectionID_Null(t *testing.T) {
	id, err := agents.ReassignRequest{}.ToCollectionID()
	if err != nil {
		t.Fatalf("ToCollectionID() error = %v", err)
	}
	if id != nil {
		t.Errorf("ToCollectionID() = %v, want nil for unassign", id)
	}
}

func TestReassignRequest_ToCollectionID_Invalid(t *testing.T) {
	_, err := agents.ReassignRequest{CollectionID: strPtr("nine")}.ToCollectionID()
	if !errors.Is(err, agents.ErrValidation) {
		t.Errorf("ToCollectionID() = %v, want ErrValidation", err)
	}
}
