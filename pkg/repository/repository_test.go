package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/agentdeck/agentdeck/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("record already exists")
)

func TestMapError_Nil(t *testing.T) {
	if err := repository.MapError(nil, errNotFound, errDuplicate); err != nil {
		t.Errorf("MapError(nil) = %v, want nil", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	err := repository.MapError(sql.ErrNoRows, errNotFound, errDuplicate)
	if !errors.Is(err, errNotFound) {
		t.Errorf("MapError(sql.ErrNoRows) = %v, want %v", err, errNotFound)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	wrapped := fmt.Errorf("query agent: %w", sql.ErrNoRows)
	err := repository.MapError(wrapped, errNotFound, errDuplicate)
	if !errors.Is(err, errNotFound) {
		t.Errorf("MapError(wrapped no rows) = %v, want %v", err, errNotFound)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	err := repository.MapError(pgErr, errNotFound, errDuplicate)
	if !errors.Is(err, errDuplicate) {
		t.Errorf("MapError(unique violation) = %v, want %v", err, errDuplicate)
	}
}

func TestMapError_OtherPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	err := repository.MapError(pgErr, errNotFound, errDuplicate)
	if !errors.Is(err, pgErr) {
		t.Errorf("MapError(fk violation) = %v, want original error", err)
	}
}

func TestMapError_Passthrough(t *testing.T) {
	original := errors.New("connection reset")
	err := repository.MapError(original, errNotFound, errDuplicate)
	if err != original {
		t.Errorf("MapError(other) = %v, want original error", err)
	}
}
