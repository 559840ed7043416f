package progress

// Composite fans every callback out to each wrapped Progress in
// order. A panicking member would take down the whole chain, but per
// the package contract every Progress implementation must be
// non-throwing, so Composite does not add its own recover.
type Composite []Progress

var _ Progress = Composite(nil)

func (c Composite) PhaseStart(phase string) {
	for _, p := range c {
		p.PhaseStart(phase)
	}
}

func (c Composite) PhaseComplete(phase string) {
	for _, p := range c {
		p.PhaseComplete(phase)
	}
}

func (c Composite) RecurrenceDetected(description string) {
	for _, p := range c {
		p.RecurrenceDetected(description)
	}
}

func (c Composite) RecurrenceSolved(description string) {
	for _, p := range c {
		p.RecurrenceSolved(description)
	}
}

func (c Composite) MethodAnalyzed(typeName, methodName string) {
	for _, p := range c {
		p.MethodAnalyzed(typeName, methodName)
	}
}

func (c Composite) IntermediateResult(label string, value any) {
	for _, p := range c {
		p.IntermediateResult(label, value)
	}
}

func (c Composite) Warning(message string) {
	for _, p := range c {
		p.Warning(message)
	}
}

func (c Composite) Percentage(pct float64) {
	for _, p := range c {
		p.Percentage(pct)
	}
}
