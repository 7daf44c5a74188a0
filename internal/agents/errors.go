package agents

import (
	"errors"
	"net/http"
)

// Domain errors for agent operations.
var (
	ErrNotFound           = errors.New("agent not found")
	ErrValidation         = errors.New("missing required fields")
	ErrDuplicate          = errors.New("agent already exists")
	ErrUnknownTool        = errors.New("unknown tool")
	ErrCollectionNotFound = errors.New("collection not found")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCollectionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrUnknownTool) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
