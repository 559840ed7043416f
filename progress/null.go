package progress

// Null discards every callback. It is the default Progress for
// callers that don't want reporting overhead.
type Null struct{}

var _ Progress = Null{}

func (Null) PhaseStart(string)             {}
func (Null) PhaseComplete(string)          {}
func (Null) RecurrenceDetected(string)     {}
func (Null) RecurrenceSolved(string)       {}
func (Null) MethodAnalyzed(string, string) {}
func (Null) IntermediateResult(string, any) {}
func (Null) Warning(string)                {}
func (Null) Percentage(float64)            {}
