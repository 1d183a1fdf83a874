package vector

import "errors"

var (
	// ErrImmutable is returned when mutating a vector marked immutable.
	ErrImmutable = errors.New("vector: vector is immutable")

	// ErrIndexOutOfRange is returned for element access past the vector end.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrKind is returned when an operation does not match the vector kind.
	ErrKind = errors.New("vector: kind mismatch")

	// ErrInvalidEncoding is returned by Decode for malformed payloads.
	ErrInvalidEncoding = errors.New("vector: invalid encoding")
)
