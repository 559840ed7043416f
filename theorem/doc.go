// Package theorem is the applicability analyzer that turns a validated
// recurrence into a TheoremApplicability result: Master's Theorem (all
// three cases, with a regularity check for case 3), Akra-Bazzi, the
// linear characteristic-polynomial method, or a structured
// not-applicable result with suggestions. Strategies are tried in the
// fixed order Master -> Akra-Bazzi -> Linear -> not-applicable; the
// first applicable strategy wins and numerical failures fall through
// to the next one rather than surfacing as errors.
//
// Structured as a dedicated dispatcher over the recurrence package's
// two input shapes (divide-form, subtraction-form), in the style of
// the teacher's tsp package: a small engine function with explicit
// staged fallbacks rather than a registry of pluggable strategies.
package theorem
