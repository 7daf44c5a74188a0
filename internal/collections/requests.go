package collections

// CreateRequest is the POST /api/collections request body. Setting
// replaceExisting resolves a name conflict by overwriting the existing
// collection in place.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Replace     bool   `json:"replaceExisting"`
}

// ToCommand converts the wire request into a normalized, validated
// CreateCommand.
func (r CreateRequest) ToCommand() (CreateCommand, error) {
	cmd := CreateCommand{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Replace:     r.Replace,
	}

	cmd.Normalize()
	return cmd, cmd.Validate()
}
