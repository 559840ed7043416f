// Package recurrence models the three recurrence shapes the theorem
// applicability analyzer consumes: divide-and-conquer recurrences
// (Σ aᵢ·T(bᵢ·n) + g(n)), linear recurrences (Σ aᵢ·T(n−i) + f(n)), and
// mutual-recursion systems (a strongly-connected cycle of components,
// each reducing its argument by subtraction or by scale), which fold
// to a single equivalent relation before being handed to the same
// analyzer.
//
// This package also owns the two recursion-builder composition rules
// from the expression algebra's composition table (linear recursion ->
// order-1 LinearRecurrence, divide recursion -> DivideRecurrence) —
// they live here rather than in package expr to avoid expr importing
// recurrence for g(n)/f(n) while recurrence imports expr right back.
package recurrence
