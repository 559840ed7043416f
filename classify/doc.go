// Package classify provides the Form classifier, the asymptotic
// comparator, and the expression simplifier used throughout the
// theorem applicability analyzer and the refinement engine.
//
// Classify walks an expr.Expression with a visitor-free recursive type
// switch (spec.md §9 favors exhaustive type-switch dispatch over a full
// Visitor for this kind of "combine children's results" computation)
// and reports the dominant Form plus its shape parameters, memoized by
// a structural hash of the expression and its free-variable set (see
// classifyMemoKey) since Simplify's recursive rewrite reclassifies the
// same subtrees repeatedly. Compare
// totally orders two Classifications under the asymptotic order
// constant < logarithmic < polynomial-or-polylog (by degree, then log
// exponent) < exponential (by base) < factorial. Simplify rewrites a
// tree to its canonical dominant-term form:
// same-shape additive terms are combined, poly-log multiplications are
// merged, O(1) multiplicative identity collapses, and the tests in
// classify_test.go assert idempotence (Simplify(Simplify(e)) ==
// Simplify(e) structurally).
package classify
