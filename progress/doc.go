// Package progress defines the callback interface the core reports
// phase and milestone events through, plus the stock implementations:
// Null (discard), Console (logrus), Composite (fan-out), Buffered
// (record for later inspection), and Tracing (opentracing spans).
//
// Grounded on the wrap-an-interface-with-multiple-callback-methods
// shape used for audit trails elsewhere in the pack (an AuditMethod
// interface with Authentication/Authorization/Query, wrapped by a
// logging implementation) — here generalized from "one auth event"
// to the eight progress callbacks spec.md's Progress interface names.
// Every implementation must be non-throwing and fast: no callback
// returns an error, and none should block on anything slower than an
// in-memory append or a buffered log write.
package progress
