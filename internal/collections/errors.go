package collections

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound   = errors.New("collection not found")
	ErrValidation = errors.New("missing required fields")
	ErrDuplicate  = errors.New("collection name already exists")
)

// ConflictError reports a name collision along with the collection that
// currently holds the name, so clients can offer a replace workflow.
type ConflictError struct {
	Existing Collection
}

func (e *ConflictError) Error() string {
	return ErrDuplicate.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicate
}

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
