package errs

import (
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Taxonomy entries, one Kind per spec.md §7 category.
var (
	// InputInvalid: malformed recurrence (empty terms, non-positive
	// coefficient, scale outside (0,1)), or an unknown variable passed
	// to Evaluate.
	InputInvalid = goerrors.NewKind("complexo: input invalid: %s")

	// NumericalFailure: Newton divergence, Brent bracket not found,
	// companion-matrix decomposition non-convergence, or overflow
	// during evaluation. Recovered locally; see doc.go.
	NumericalFailure = goerrors.NewKind("complexo: numerical failure: %s")

	// TheoremInapplicable: no strategy (Master/Akra-Bazzi/Linear)
	// applies to the given recurrence. Not a failure — callers receive
	// a structured not-applicable result, not this error, in the
	// normal analyzer path; the Kind exists for callers that want to
	// treat "no strategy" as an error at their own boundary.
	TheoremInapplicable = goerrors.NewKind("complexo: no applicable theorem: %s")

	// VerificationFailure: induction ratios drifted or violated the
	// requested bound direction.
	VerificationFailure = goerrors.NewKind("complexo: verification failed: %s")

	// BenchmarkInstability: coefficient of variation too high, or
	// non-monotone timings across increasing input sizes.
	BenchmarkInstability = goerrors.NewKind("complexo: benchmark unstable: %s")

	// PersistenceFailure: calibration-store I/O error. The wrapped
	// cause (via github.com/pkg/errors) is preserved and retrievable
	// with pkgerrors.Cause.
	PersistenceFailure = goerrors.NewKind("complexo: persistence failure: %s")

	// Cancelled: cooperative cancellation observed between iterations
	// of a long-running operation.
	Cancelled = goerrors.NewKind("complexo: cancelled: %s")
)
