package store

import (
	"context"
	"errors"

	"github.com/viant/unspecified/vector"
)

// ErrNotFound is returned when no column has the requested id.
var ErrNotFound = errors.New("store: column not found")

// Column is a named vector.
type Column struct {
	// ID is the logical identifier of the column; it must be non-empty.
	ID string

	// Vector holds the column values and attributes.
	Vector *vector.Vector
}

// Store defines the column persistence API.
type Store interface {
	// Put inserts or replaces columns and returns their IDs.
	Put(ctx context.Context, columns []Column) ([]string, error)

	// Get loads the column with the given ID. The returned vector is a new
	// value; attribute identity from the writer is not preserved.
	Get(ctx context.Context, id string) (*vector.Vector, error)

	// List returns up to limit columns in insertion order; limit <= 0 lists all.
	List(ctx context.Context, limit int) ([]Column, error)

	// Unspecified returns the IDs of stored columns that are unspecified
	// sentinels, evaluated in SQL.
	Unspecified(ctx context.Context) ([]string, error)

	// Remove deletes the column with the given ID.
	Remove(ctx context.Context, id string) error
}
