// Package calibstore is the versioned, file-backed calibration data
// store: one YAML file per hardware profile plus a "latest" alias,
// written atomically (temp file + rename) so a concurrent reader
// never observes a partial write. A lookup layer on top combines a
// stored per-operation constant factor with a claimed complexity
// class's scaling function to estimate running time at an arbitrary
// input size.
//
// The teacher repo is zero-I/O, so this package is grounded on the
// *shape* of its staged validation functions (tsp's validate.go:
// check structure, then check values, returning the first violation)
// applied to "validate a Record before writing it" instead of
// "validate a graph before searching it."
package calibstore
