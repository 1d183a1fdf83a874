package unspecified

import "errors"

var (
	// ErrInvalidLength is returned when a sentinel of negative length is requested.
	ErrInvalidLength = errors.New("unspecified: invalid length")

	// ErrUninitialized is the panic value raised when the registry is read
	// before Initialize. It signals a startup ordering bug.
	ErrUninitialized = errors.New("unspecified: registry used before Initialize")
)
