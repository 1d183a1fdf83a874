package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viant/unspecified/vector"
)

// SQLiteStore implements Store on a SQLite database opened with
// engine.Open, which also provides the uns_is SQL function used by
// Unspecified.
type SQLiteStore struct {
	db     *sql.DB
	config *Config
}

// New creates a SQLite-backed Store. It validates the options and ensures the
// columns table exists.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db, cfg.Table); err != nil {
		return nil, fmt.Errorf("store: ensure schema %s: %w", cfg.Table, err)
	}
	return &SQLiteStore{db: db, config: cfg}, nil
}

// Put encodes and upserts columns in a single transaction.
func (s *SQLiteStore) Put(ctx context.Context, columns []Column) ([]string, error) {
	if len(columns) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
INSERT INTO %s(id, kind, length, payload) VALUES(?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  kind = excluded.kind,
  length = excluded.length,
  payload = excluded.payload`, s.config.Table))
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.ID == "" {
			return nil, fmt.Errorf("store: Column.ID must be set")
		}
		if c.Vector == nil {
			return nil, fmt.Errorf("store: column %s has no vector", c.ID)
		}
		payload, err := vector.Encode(c.Vector)
		if err != nil {
			return nil, fmt.Errorf("store: encode column %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Vector.Kind().String(), c.Vector.Len(), payload); err != nil {
			return nil, err
		}
		ids = append(ids, c.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	s.config.Logger.Debug("store: columns written", "table", s.config.Table, "count", len(ids))
	return ids, nil
}

// Get loads and decodes a single column.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*vector.Vector, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT payload FROM %s WHERE id = ?`, s.config.Table), id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	v, err := vector.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("store: decode column %s: %w", id, err)
	}
	s.config.Logger.Debug("store: column read", "table", s.config.Table, "id", id, "length", v.Len())
	return v, nil
}

// List returns columns ordered by rowid.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Column, error) {
	query := fmt.Sprintf(`SELECT id, payload FROM %s ORDER BY rowid`, s.config.Table)
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Column
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		v, err := vector.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("store: decode column %s: %w", id, err)
		}
		out = append(out, Column{ID: id, Vector: v})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.config.Logger.Debug("store: columns listed", "table", s.config.Table, "count", len(out))
	return out, nil
}

// Unspecified selects sentinel columns with the uns_is SQL function.
func (s *SQLiteStore) Unspecified(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE uns_is(payload) = 1 ORDER BY rowid`, s.config.Table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.config.Logger.Debug("store: unspecified columns selected", "table", s.config.Table, "count", len(ids))
	return ids, nil
}

// Remove deletes a column by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: Remove called with empty id")
	}
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.config.Table), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.config.Logger.Debug("store: column removed", "table", s.config.Table, "id", id)
	return nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
