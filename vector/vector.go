package vector

import (
	"fmt"
	"slices"
)

// Vector is a typed vector with optional attributes and an object flag.
// Exactly one of the element slices is in use, selected by kind.
type Vector struct {
	kind       Kind
	logicals   []Logical
	integers   []int32
	doubles    []float64
	characters []string

	attrs    *Attributes
	object   bool
	readOnly bool
}

// NewLogical returns a logical vector holding a copy of values.
func NewLogical(values ...Logical) *Vector {
	return &Vector{kind: KindLogical, logicals: cloneOrEmpty(values)}
}

// NewLogicalN returns a logical vector of length n filled with fill.
func NewLogicalN(n int, fill Logical) *Vector {
	if n < 0 {
		n = 0
	}
	data := make([]Logical, n)
	if fill != False {
		for i := range data {
			data[i] = fill
		}
	}
	return &Vector{kind: KindLogical, logicals: data}
}

// NewInteger returns an integer vector holding a copy of values.
func NewInteger(values ...int32) *Vector {
	return &Vector{kind: KindInteger, integers: cloneOrEmpty(values)}
}

// NewDouble returns a double vector holding a copy of values.
func NewDouble(values ...float64) *Vector {
	return &Vector{kind: KindDouble, doubles: cloneOrEmpty(values)}
}

// NewCharacter returns a character vector holding a copy of values.
func NewCharacter(values ...string) *Vector {
	return &Vector{kind: KindCharacter, characters: cloneOrEmpty(values)}
}

func cloneOrEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return slices.Clone(values)
}

// Kind returns the element type. A nil vector has no valid kind.
func (v *Vector) Kind() Kind {
	if v == nil {
		return 0
	}
	return v.kind
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindLogical:
		return len(v.logicals)
	case KindInteger:
		return len(v.integers)
	case KindDouble:
		return len(v.doubles)
	case KindCharacter:
		return len(v.characters)
	}
	return 0
}

// Attributes returns the attached attribute set (possibly nil).
func (v *Vector) Attributes() *Attributes {
	if v == nil {
		return nil
	}
	return v.attrs
}

// IsObject reports whether the vector is flagged as classified.
func (v *Vector) IsObject() bool { return v != nil && v.object }

// Logicals returns the backing logical elements, nil for other kinds.
func (v *Vector) Logicals() []Logical {
	if v == nil || v.kind != KindLogical {
		return nil
	}
	return v.logicals
}

// Integers returns the backing integer elements, nil for other kinds.
func (v *Vector) Integers() []int32 {
	if v == nil || v.kind != KindInteger {
		return nil
	}
	return v.integers
}

// Doubles returns the backing double elements, nil for other kinds.
func (v *Vector) Doubles() []float64 {
	if v == nil || v.kind != KindDouble {
		return nil
	}
	return v.doubles
}

// Characters returns the backing character elements, nil for other kinds.
func (v *Vector) Characters() []string {
	if v == nil || v.kind != KindCharacter {
		return nil
	}
	return v.characters
}

// MarkImmutable flags the vector read-only. It cannot be undone. A nil
// vector is left alone.
func (v *Vector) MarkImmutable() {
	if v != nil {
		v.readOnly = true
	}
}

// Immutable reports whether MarkImmutable was called.
func (v *Vector) Immutable() bool { return v != nil && v.readOnly }

// SetAttributes attaches attrs by reference. Passing nil detaches them.
func (v *Vector) SetAttributes(attrs *Attributes) error {
	if v.readOnly {
		return ErrImmutable
	}
	v.attrs = attrs
	return nil
}

// SetObject sets the classified flag.
func (v *Vector) SetObject(object bool) error {
	if v.readOnly {
		return ErrImmutable
	}
	v.object = object
	return nil
}

// SetLogical assigns the i-th element of a logical vector.
func (v *Vector) SetLogical(i int, value Logical) error {
	if v.readOnly {
		return ErrImmutable
	}
	if v.kind != KindLogical {
		return fmt.Errorf("%w: SetLogical on %s vector", ErrKind, v.kind)
	}
	if i < 0 || i >= len(v.logicals) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(v.logicals))
	}
	v.logicals[i] = value
	return nil
}

// FillLogical assigns value to every element of a logical vector.
func (v *Vector) FillLogical(value Logical) error {
	if v.readOnly {
		return ErrImmutable
	}
	if v.kind != KindLogical {
		return fmt.Errorf("%w: FillLogical on %s vector", ErrKind, v.kind)
	}
	for i := range v.logicals {
		v.logicals[i] = value
	}
	return nil
}

// Clone returns a mutable deep copy. The copy gets a value-equal but distinct
// *Attributes, so it never shares identity with a well-known attribute set.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	return &Vector{
		kind:       v.kind,
		logicals:   slices.Clone(v.logicals),
		integers:   slices.Clone(v.integers),
		doubles:    slices.Clone(v.doubles),
		characters: slices.Clone(v.characters),
		attrs:      v.attrs.clone(),
		object:     v.object,
	}
}

// Equal reports value equality: same kind, elements, object flag and
// attribute values. Attribute identity and the read-only mark are ignored.
func (v *Vector) Equal(o *Vector) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if v.kind != o.kind || v.object != o.object || !v.attrs.Equal(o.attrs) {
		return false
	}
	switch v.kind {
	case KindLogical:
		return slices.Equal(v.logicals, o.logicals)
	case KindInteger:
		return slices.Equal(v.integers, o.integers)
	case KindDouble:
		return slices.Equal(v.doubles, o.doubles)
	case KindCharacter:
		return slices.Equal(v.characters, o.characters)
	}
	return true
}

// Ensure Vector satisfies the Value interface.
var _ Value = (*Vector)(nil)
