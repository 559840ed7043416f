package progress

// Progress receives phase and milestone callbacks from a long-running
// operation (recurrence analysis, refinement, calibration). Every
// method must return quickly and must never panic — a misbehaving
// Progress implementation must not be able to derail the operation
// reporting to it.
type Progress interface {
	// PhaseStart reports that a named phase of work has begun.
	PhaseStart(phase string)
	// PhaseComplete reports that a named phase of work has finished.
	PhaseComplete(phase string)
	// RecurrenceDetected reports a recurrence relation found during
	// static analysis, described in human-readable form.
	RecurrenceDetected(description string)
	// RecurrenceSolved reports a recurrence relation's resolved
	// asymptotic form, described in human-readable form.
	RecurrenceSolved(description string)
	// MethodAnalyzed reports that a library or user method has been
	// attributed a complexity.
	MethodAnalyzed(typeName, methodName string)
	// IntermediateResult reports a named partial or diagnostic value
	// worth surfacing before the operation completes.
	IntermediateResult(label string, value any)
	// Warning reports a non-fatal condition (e.g. a numerical
	// fallback, a benchmark instability note).
	Warning(message string)
	// Percentage reports overall progress in [0, 100].
	Percentage(pct float64)
}
