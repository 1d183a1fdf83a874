// Package vector defines the vector-like values classified by this module.
// It includes:
//   - Kind and Logical element types (with the NA absent marker)
//   - Attributes: immutable class/dim/names metadata shared by pointer
//   - Vector: a typed vector with attributes and an object flag
//   - Value: the read-only interface detectors accept
//   - Binary encoding used to move vectors across process boundaries
package vector
