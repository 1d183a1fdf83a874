package vector

import (
	"fmt"
	"math"
)

// Kind identifies the element type of a vector.
type Kind uint8

const (
	// KindLogical holds tri-state booleans (False, True, NA).
	KindLogical Kind = iota + 1
	// KindInteger holds int32 values.
	KindInteger
	// KindDouble holds float64 values.
	KindDouble
	// KindCharacter holds strings.
	KindCharacter
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindLogical:
		return "logical"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindCharacter:
		return "character"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool { return k >= KindLogical && k <= KindCharacter }

// Logical is a tri-state boolean element. NA marks an absent value.
type Logical int32

const (
	False Logical = 0
	True  Logical = 1
	// NA is the absent marker. It shares its bit pattern with the smallest
	// int32 so encoded logical and integer payloads line up.
	NA Logical = math.MinInt32
)

// String returns "TRUE", "FALSE" or "NA".
func (l Logical) String() string {
	switch l {
	case NA:
		return "NA"
	case False:
		return "FALSE"
	default:
		return "TRUE"
	}
}

// Value is the read-only view of a vector-like value. Producers outside this
// module (e.g. a table conversion pipeline holding its own column types) can
// implement it to have their values classified.
type Value interface {
	// Kind returns the element type.
	Kind() Kind

	// Len returns the number of elements.
	Len() int

	// Attributes returns the attached attribute set, or nil when the value
	// carries no attributes. Implementations must return the same pointer
	// they were given; identity checks depend on it.
	Attributes() *Attributes

	// IsObject reports whether the value is flagged as a classified value.
	IsObject() bool

	// Logicals returns the logical elements for KindLogical values and nil
	// otherwise. Callers must not modify the returned slice.
	Logicals() []Logical
}
