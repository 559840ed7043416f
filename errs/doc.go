// Package errs defines the error taxonomy shared by every core package:
// InputInvalid, NumericalFailure, TheoremInapplicable, VerificationFailure,
// BenchmarkInstability, PersistenceFailure, and Cancelled.
//
// Each taxonomy entry is a gopkg.in/src-d/go-errors.v1 Kind — the same
// library the go-mysql-server lineage uses for its own SQL error kinds.
// A Kind is constructed once at package init with a format string and
// instantiated per call site with Kind.New(args...); callers match with
// Kind.Is(err) (equivalently errors.Is against the Kind's sentinel).
//
// Propagation policy (spec.md §7): NumericalFailure is returned by the
// akrabazzi and linearsolve solvers and recovered by theorem.Analyze,
// which tries the next strategy or returns a NotApplicable result
// instead of an error. TheoremInapplicable is part of the taxonomy but
// no package returns it: an inapplicable recurrence is reported as a
// NotApplicable result. The errors that reach a caller are InputInvalid
// (malformed caller input), PersistenceFailure (store I/O), and
// Cancelled (cooperative cancellation).
package errs
