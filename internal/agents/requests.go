package agents

import "strconv"

// CreateRequest is the POST /api/agents request body.
type CreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Prompt       string   `json:"prompt"`
	Tools        []string `json:"tools"`
	CollectionID *string  `json:"collectionId"`
}

// ToCommand converts the wire request into a normalized, validated
// CreateCommand.
func (r CreateRequest) ToCommand() (CreateCommand, error) {
	cmd := CreateCommand{
		Name:        r.Title,
		Description: r.Description,
		Prompt:      r.Prompt,
		Tools:       r.Tools,
	}

	collectionID, err := parseWireID(r.CollectionID)
	if err != nil {
		return cmd, err
	}
	cmd.CollectionID = collectionID

	cmd.Normalize()
	return cmd, cmd.Validate()
}

// ReassignRequest is the PATCH /api/agents/{id} request body. A null
// collectionId clears the assignment.
type ReassignRequest struct {
	CollectionID *string `json:"collectionId"`
}

// ToCollectionID parses the wire collection id, nil meaning unassign.
func (r ReassignRequest) ToCollectionID() (*int64, error) {
	return parseWireID(r.CollectionID)
}

func parseWireID(s *string) (*int64, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, ErrValidation
	}
	return &id, nil
}
