package unspecified

import (
	"log/slog"

	"github.com/viant/unspecified/vector"
)

// ClassName is the class carried by every sentinel vector. It is the only
// signal that survives when a sentinel is re-materialized outside the process
// that created it.
const ClassName = "vctrs_unspecified"

var logger = slog.Default()

// SetLogger replaces the logger used for registry lifecycle events. Passing
// nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Registry owns the canonical sentinel tag and the canonical empty sentinel.
// Both are created once by Initialize and never change afterwards, so a
// Registry can be read concurrently once initialized. Initialize itself is
// not synchronized: the host calls it from its serial startup path.
type Registry struct {
	tag         *vector.Attributes
	empty       *vector.Vector
	initialized bool
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// NewRegistry returns an uninitialized registry. Most callers use Default;
// separate registries model sentinels minted by another process, which share
// ClassName but not tag identity.
func NewRegistry() *Registry { return &Registry{} }

// Initialize creates the canonical tag and the immutable empty sentinel.
// Calling it again keeps the existing instances.
func (r *Registry) Initialize() {
	if r.initialized {
		logger.Warn("unspecified: registry already initialized, keeping existing tag")
		return
	}
	tag := vector.NewAttributes(vector.WithClass(ClassName))
	empty := stamp(tag, 0)

	r.tag = tag
	r.empty = empty
	r.initialized = true
	logger.Debug("unspecified: registry initialized", "class", ClassName)
}

// Initialized reports whether Initialize has run.
func (r *Registry) Initialized() bool { return r.initialized }

// Tag returns the canonical tag shared by every sentinel this registry's
// factories produce. It panics with ErrUninitialized before Initialize.
func (r *Registry) Tag() *vector.Attributes {
	r.mustBeInitialized()
	return r.tag
}

// Empty returns the canonical zero-length sentinel. The returned vector is
// immutable. It panics with ErrUninitialized before Initialize.
func (r *Registry) Empty() *vector.Vector {
	r.mustBeInitialized()
	return r.empty
}

func (r *Registry) mustBeInitialized() {
	if !r.initialized {
		panic(ErrUninitialized)
	}
}

// Initialize initializes the Default registry.
func Initialize() { Default.Initialize() }

// Tag returns the Default registry tag.
func Tag() *vector.Attributes { return Default.Tag() }

// Empty returns the Default registry empty sentinel.
func Empty() *vector.Vector { return Default.Empty() }
