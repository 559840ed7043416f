package progress

import "sync"

// Event is one recorded Progress callback, tagged by Kind.
type Event struct {
	Kind        string
	Phase       string
	Description string
	TypeName    string
	MethodName  string
	Label       string
	Value       any
	Message     string
	Percent     float64
}

// Buffered records every callback in order, guarded by a mutex so it
// is safe to share across concurrent callers. Intended for tests and
// for IDE-style surfaces that replay progress after the fact rather
// than streaming it.
type Buffered struct {
	mu     sync.Mutex
	events []Event
}

var _ Progress = (*Buffered)(nil)

// Events returns a copy of the recorded events so far.
func (b *Buffered) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

func (b *Buffered) record(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *Buffered) PhaseStart(phase string) {
	b.record(Event{Kind: "phase_start", Phase: phase})
}

func (b *Buffered) PhaseComplete(phase string) {
	b.record(Event{Kind: "phase_complete", Phase: phase})
}

func (b *Buffered) RecurrenceDetected(description string) {
	b.record(Event{Kind: "recurrence_detected", Description: description})
}

func (b *Buffered) RecurrenceSolved(description string) {
	b.record(Event{Kind: "recurrence_solved", Description: description})
}

func (b *Buffered) MethodAnalyzed(typeName, methodName string) {
	b.record(Event{Kind: "method_analyzed", TypeName: typeName, MethodName: methodName})
}

func (b *Buffered) IntermediateResult(label string, value any) {
	b.record(Event{Kind: "intermediate_result", Label: label, Value: value})
}

func (b *Buffered) Warning(message string) {
	b.record(Event{Kind: "warning", Message: message})
}

func (b *Buffered) Percentage(pct float64) {
	b.record(Event{Kind: "percentage", Percent: pct})
}
