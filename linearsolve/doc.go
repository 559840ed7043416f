// Package linearsolve solves the characteristic polynomial of a linear
// recurrence x^k − Σ aᵢ·x^(k−i) = 0: closed form for order 1 and 2,
// companion-matrix eigenvalues via gonum/mat for order >= 3. Roots
// within rootClusterTol of each other cluster into one
// CharacteristicRoot with a summed multiplicity; the dominant root (or
// tied set of roots) by magnitude drives the asymptotic solution
// expression.
//
// The companion-matrix path is grounded on the teacher's dense-matrix
// decomposition plumbing (matrix/ops/eigen.go, matrix/ops/qr.go) —
// allocate a working copy, stage the computation, return a sentinel-
// wrapped error — adapted from symmetric Jacobi rotation (which only
// applies to symmetric matrices) to gonum's general eigendecomposition,
// since a companion matrix is never symmetric.
package linearsolve
