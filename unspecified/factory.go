package unspecified

import (
	"fmt"

	"github.com/viant/unspecified/vector"
)

// Factory builds sentinel vectors stamped with a registry's canonical tag.
type Factory struct {
	registry *Registry
}

// NewFactory returns a factory bound to registry.
func NewFactory(registry *Registry) *Factory {
	return &Factory{registry: registry}
}

// New returns a sentinel of length n: an immutable logical vector of NA values
// carrying the canonical tag by reference and the object flag. Use Clone for
// a writable copy; the clone no longer holds the tag itself.
//
// For n == 0 the registry's shared empty sentinel is returned instead of a
// fresh allocation; callers should only rely on value equality for that case.
func (f *Factory) New(n int) (*vector.Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if n == 0 {
		return f.registry.Empty(), nil
	}
	return stamp(f.registry.Tag(), n), nil
}

func stamp(tag *vector.Attributes, n int) *vector.Vector {
	out := vector.NewLogicalN(n, vector.NA)
	// out is fresh and mutable; these cannot fail.
	_ = out.SetAttributes(tag)
	_ = out.SetObject(true)
	out.MarkImmutable()
	return out
}

// New builds a sentinel of length n from the Default registry.
func New(n int) (*vector.Vector, error) {
	return NewFactory(Default).New(n)
}
