package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const memoryDSN = ":memory:"

// Open registers this module's SQL functions and opens a SQLite database
// using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:"; the pool is then limited to one connection
// since every SQLite connection to :memory: gets its own database.
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterFunctions(nil); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == memoryDSN {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
