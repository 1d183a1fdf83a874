package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/unspecified/unspecified"
	"github.com/viant/unspecified/vector"
	sqlite "modernc.org/sqlite"
)

// RegisterFunctions registers uns_is and uns_len with the driver so they are
// available on new connections opened after this call:
//
//	uns_is(payload)  -> 1 when the encoded vector is an unspecified sentinel, else 0
//	uns_len(payload) -> number of elements of the encoded vector
//
// Both return NULL for a NULL payload. Existing open connections will not see
// new functions. The default unspecified registry must be initialized before
// the functions are evaluated.
func RegisterFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("uns_is", 1, unsIsImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("uns_len", 1, unsLenImpl)
	return nil
}

func asVector(name string, args []driver.Value) (*vector.Vector, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
	}
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.Decode(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T; want BLOB", name, args[0])
	}
}

func unsIsImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, err := asVector("uns_is", args)
	if err != nil || v == nil {
		return nil, err
	}
	if !unspecified.Default.Initialized() {
		return nil, fmt.Errorf("uns_is: %w", unspecified.ErrUninitialized)
	}
	if unspecified.Is(v) {
		return int64(1), nil
	}
	return int64(0), nil
}

func unsLenImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, err := asVector("uns_len", args)
	if err != nil || v == nil {
		return nil, err
	}
	return int64(v.Len()), nil
}
