package unspecified

import "github.com/viant/unspecified/vector"

// Tier names the detection step that produced a verdict.
type Tier uint8

const (
	// TierType rejects nil and non-logical values.
	TierType Tier = iota + 1
	// TierIdentity accepts values carrying the canonical tag pointer.
	TierIdentity
	// TierClass decides values whose attributes name ClassName.
	TierClass
	// TierObject rejects values flagged as some other classified type.
	TierObject
	// TierDim rejects values with shape metadata.
	TierDim
	// TierEmpty rejects zero-length values lacking sentinel metadata.
	TierEmpty
	// TierScan decides by checking every element for NA.
	TierScan
)

var tierNames = [...]string{
	TierType:     "type",
	TierIdentity: "identity",
	TierClass:    "class",
	TierObject:   "object",
	TierDim:      "dim",
	TierEmpty:    "empty",
	TierScan:     "scan",
}

func (t Tier) String() string {
	if int(t) < len(tierNames) && tierNames[t] != "" {
		return tierNames[t]
	}
	return "unknown"
}

// Verdict is the outcome of classifying a value.
type Verdict struct {
	Sentinel bool
	Tier     Tier
}

// Detector recognizes sentinel vectors. It holds no mutable state.
type Detector struct {
	registry *Registry
}

// NewDetector returns a detector comparing against registry's tag.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// Is reports whether x is a sentinel vector.
func (d *Detector) Is(x vector.Value) bool {
	return d.Classify(x).Sentinel
}

// Classify runs the detection tiers in order and returns the first
// conclusive verdict:
//
//  1. non-logical values are not sentinels;
//  2. the canonical tag pointer identifies sentinels in O(1);
//  3. other attributes: ClassName accepts when every element is NA, an
//     object flag or dim rejects;
//  4. otherwise every element must be NA, and an empty value is rejected
//     because it carries no evidence either way.
//
// Attributes that trigger none of the step 3 checks (names only, say) fall
// through to the scan.
func (d *Detector) Classify(x vector.Value) Verdict {
	if !isLogical(x) {
		return Verdict{Tier: TierType}
	}
	attrs := x.Attributes()
	if attrs == d.registry.Tag() {
		return Verdict{Sentinel: true, Tier: TierIdentity}
	}
	if attrs != nil {
		if v, ok := classifyAttributes(x, attrs); ok {
			return v
		}
	}
	return scan(x)
}

func isLogical(x vector.Value) bool {
	return x != nil && x.Kind() == vector.KindLogical
}

// classifyAttributes covers sentinels re-materialized with a fresh attribute
// identity, e.g. after decoding. A value claiming ClassName must still hold
// only NA elements.
func classifyAttributes(x vector.Value, attrs *vector.Attributes) (Verdict, bool) {
	switch {
	case attrs.Inherits(ClassName):
		return Verdict{Sentinel: allNA(x.Logicals()), Tier: TierClass}, true
	case x.IsObject():
		return Verdict{Tier: TierObject}, true
	case attrs.HasDim():
		return Verdict{Tier: TierDim}, true
	}
	return Verdict{}, false
}

func scan(x vector.Value) Verdict {
	values := x.Logicals()
	if len(values) == 0 {
		return Verdict{Tier: TierEmpty}
	}
	return Verdict{Sentinel: allNA(values), Tier: TierScan}
}

func allNA(values []vector.Logical) bool {
	for _, v := range values {
		if v != vector.NA {
			return false
		}
	}
	return true
}

// Is reports whether x is a sentinel according to the Default registry.
func Is(x vector.Value) bool {
	return NewDetector(Default).Is(x)
}

// Classify classifies x against the Default registry.
func Classify(x vector.Value) Verdict {
	return NewDetector(Default).Classify(x)
}
