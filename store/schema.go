package store

import (
	"context"
	"database/sql"
	"fmt"
)

const columnsSchema = `
CREATE TABLE IF NOT EXISTS %s (
    id      TEXT PRIMARY KEY,
    kind    TEXT NOT NULL,
    length  INTEGER NOT NULL,
    payload BLOB NOT NULL
);
`

// EnsureSchema creates the columns table in the provided database if it does
// not already exist. table must be a trusted identifier.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(columnsSchema, table))
	return err
}
