// Package methodtable models the library method table external
// interface (spec.md §6): a keyed mapping from (type name, method
// name) to an attributed complexity, consumed by the core but
// populated and maintained outside it. The core never constructs a
// Table itself — analyze.go wires one in from an external source the
// same way it wires in a FrontEnd.
//
// AttributedComplexity pairs an expr.Expression with the Source that
// backs the claim (spec.md §3's "Attributed complexity"): how the
// figure was obtained, whether it's an upper bound, amortized, or
// worst-case, and a confidence in [0,1]. ReviewRequired flags entries
// whose Source.Kind is not itself authoritative enough to trust
// without a human look — inferred, heuristic, and unknown sources,
// by default.
package methodtable
