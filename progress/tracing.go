package progress

import (
	"sync"

	"github.com/opentracing/opentracing-go"
)

// Tracing opens one opentracing span per PhaseStart/PhaseComplete
// pair and logs every other callback as a KV event on an open phase's
// span (an arbitrary one when several phases are open); when no phase
// is open, the event is dropped.
type Tracing struct {
	Tracer opentracing.Tracer

	mu    sync.Mutex
	spans map[string]opentracing.Span
}

var _ Progress = (*Tracing)(nil)

// NewTracing returns a Tracing progress reporter backed by the given
// tracer, or the opentracing global tracer if nil.
func NewTracing(tracer opentracing.Tracer) *Tracing {
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}
	return &Tracing{Tracer: tracer, spans: make(map[string]opentracing.Span)}
}

func (t *Tracing) PhaseStart(phase string) {
	span := t.Tracer.StartSpan(phase)
	t.mu.Lock()
	t.spans[phase] = span
	t.mu.Unlock()
}

func (t *Tracing) PhaseComplete(phase string) {
	t.mu.Lock()
	span, ok := t.spans[phase]
	delete(t.spans, phase)
	t.mu.Unlock()
	if ok {
		span.Finish()
	}
}

func (t *Tracing) logKV(keyvals ...interface{}) {
	t.mu.Lock()
	var active opentracing.Span
	for _, s := range t.spans {
		active = s
		break
	}
	t.mu.Unlock()
	if active != nil {
		active.LogKV(keyvals...)
	}
}

func (t *Tracing) RecurrenceDetected(description string) {
	t.logKV("event", "recurrence_detected", "description", description)
}

func (t *Tracing) RecurrenceSolved(description string) {
	t.logKV("event", "recurrence_solved", "description", description)
}

func (t *Tracing) MethodAnalyzed(typeName, methodName string) {
	t.logKV("event", "method_analyzed", "type", typeName, "method", methodName)
}

func (t *Tracing) IntermediateResult(label string, value any) {
	t.logKV("event", "intermediate_result", label, value)
}

func (t *Tracing) Warning(message string) {
	t.logKV("event", "warning", "message", message)
}

func (t *Tracing) Percentage(pct float64) {
	t.logKV("event", "percentage", "percent", pct)
}
