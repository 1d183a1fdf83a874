package vector

import "slices"

// Attributes is an immutable set of vector metadata. A single *Attributes may
// be shared by many vectors; pointer identity is meaningful to callers that
// compare against a well-known instance.
type Attributes struct {
	class []string
	dim   []int
	names []string
}

// AttributeOption configures Attributes at construction time.
type AttributeOption func(*Attributes)

// WithClass sets the class names, most specific first.
func WithClass(class ...string) AttributeOption {
	return func(a *Attributes) { a.class = slices.Clone(class) }
}

// WithDim sets the dimensions of a matrix or array shaped vector.
func WithDim(dim ...int) AttributeOption {
	return func(a *Attributes) { a.dim = slices.Clone(dim) }
}

// WithNames sets the element names.
func WithNames(names ...string) AttributeOption {
	return func(a *Attributes) { a.names = slices.Clone(names) }
}

// NewAttributes builds a new attribute set. Every call returns a distinct
// pointer, even for equal options.
func NewAttributes(opts ...AttributeOption) *Attributes {
	a := &Attributes{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Attributes) clone() *Attributes {
	if a == nil {
		return nil
	}
	return &Attributes{
		class: slices.Clone(a.class),
		dim:   slices.Clone(a.dim),
		names: slices.Clone(a.names),
	}
}

// Class returns a copy of the class names.
func (a *Attributes) Class() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.class)
}

// Dim returns a copy of the dimensions.
func (a *Attributes) Dim() []int {
	if a == nil {
		return nil
	}
	return slices.Clone(a.dim)
}

// Names returns a copy of the element names.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.names)
}

// Inherits reports whether class is one of the attribute class names.
func (a *Attributes) Inherits(class string) bool {
	if a == nil {
		return false
	}
	return slices.Contains(a.class, class)
}

// HasDim reports whether shape metadata is present.
func (a *Attributes) HasDim() bool {
	return a != nil && len(a.dim) > 0
}

// IsEmpty reports whether no attribute is set.
func (a *Attributes) IsEmpty() bool {
	return a == nil || (len(a.class) == 0 && len(a.dim) == 0 && len(a.names) == 0)
}

// Equal compares attribute values, not identity. A nil set equals an empty one.
func (a *Attributes) Equal(b *Attributes) bool {
	if a == b {
		return true
	}
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return slices.Equal(a.class, b.class) &&
		slices.Equal(a.dim, b.dim) &&
		slices.Equal(a.names, b.names)
}
