// Package refine implements the five-stage refinement pipeline that
// turns a theorem-analyzer result into a verified, confidence-scored
// solution: initial-solution extraction, slack optimization,
// perturbation expansion at theorem-case boundaries, numerical
// induction verification, and confidence aggregation. Stages run in a
// fixed order; Engine.Verify orchestrates all five, while
// Engine.VerifyBound runs only induction verification and confidence
// scoring against a caller-supplied candidate and bound direction.
//
// Grounded on the teacher's tsp/bb.go engine-struct-over-closures
// shape: one Engine holds the recurrence's configuration and
// immutable inputs, with each stage a plain method rather than a
// pluggable strategy registry.
package refine
