// Package unspecified provides the "unspecified" sentinel vector: a logical
// vector of NA values tagged with a canonical class, meaning a field was
// deliberately not supplied (as opposed to supplied but missing).
//
// A Registry owns the canonical tag and a shared empty sentinel, a Factory
// stamps new sentinels with that tag, and a Detector recognizes sentinels in
// tiers: element type, tag identity, class name and flags, and finally a
// content scan for values that arrive without metadata.
//
// Initialize must run once during startup before any other call:
//
//	unspecified.Initialize()
//	placeholder, _ := unspecified.New(3)
//	unspecified.Is(placeholder) // true
package unspecified
