// Package store persists vectors in SQLite and re-materializes them. It
// includes:
//   - Column model and Store interface
//   - SQLiteStore: encoded vectors keyed by column id
//   - Schema helpers to create the columns table
//   - Config validation and functional options
//
// Vectors read back from a store carry freshly decoded attributes, so
// sentinels are recognized by class name rather than tag identity.
package store
