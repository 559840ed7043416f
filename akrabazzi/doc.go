// Package akrabazzi implements the two numerical pieces the theorem
// applicability analyzer needs once a divide recurrence has more than
// one term or fails Master's single-term shape: the critical-exponent
// solver for Σ aᵢ·bᵢ^p = 1 (Newton-Raphson with a Brent-bracketing
// fallback), and the integral evaluator for
// ∫₁ⁿ g(u)/u^(p+1) du with a closed-form table covering the classified
// shapes of g and a symbolic fallback for anything else.
//
// Iteration style (fixed cap, explicit tolerance constants, documented
// convergence check) follows the teacher's Jacobi eigen-rotation loop
// in matrix/ops/eigen.go, transplanted from 2x2 plane rotations to
// 1-D root-finding.
package akrabazzi
