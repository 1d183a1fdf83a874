package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/unspecified/vector"
)

// TestOpen checks the connection pool limit chosen for each DSN and that the
// uns_* functions are callable on a database returned by Open without a
// separate RegisterFunctions call.
func TestOpen(t *testing.T) {
	testCases := []struct {
		description string
		dsn         string
		maxOpen     int
	}{
		{description: "in-memory pinned to one connection", dsn: ":memory:", maxOpen: 1},
		{description: "file keeps default pool", dsn: filepath.Join(t.TempDir(), "uns.sqlite"), maxOpen: 0},
	}
	payload, err := vector.Encode(vector.NewLogicalN(5, vector.NA))
	require.NoError(t, err)

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			db, err := Open(testCase.dsn)
			require.NoError(t, err)
			defer db.Close()
			assert.Equal(t, testCase.maxOpen, db.Stats().MaxOpenConnections)

			var length int64
			require.NoError(t, db.QueryRow(`SELECT uns_len(?)`, payload).Scan(&length))
			assert.Equal(t, int64(5), length)
		})
	}
}

// TestOpenInMemory_SharedDatabase verifies that a temp table created on the
// pinned :memory: connection is visible to later statements.
func TestOpenInMemory_SharedDatabase(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE payloads(payload BLOB)`)
	require.NoError(t, err)
	for _, n := range []int{0, 2, 7} {
		payload, err := vector.Encode(vector.NewLogicalN(n, vector.NA))
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO payloads(payload) VALUES (?)`, payload)
		require.NoError(t, err)
	}

	var total int64
	require.NoError(t, db.QueryRow(`SELECT SUM(uns_len(payload)) FROM payloads`).Scan(&total))
	assert.Equal(t, int64(9), total)
}
