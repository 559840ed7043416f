package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complexo-io/complexo/progress"
)

func TestBufferedRecordsEventsInOrder(t *testing.T) {
	b := &progress.Buffered{}
	b.PhaseStart("analyze")
	b.Warning("fallback to linear solver")
	b.PhaseComplete("analyze")

	events := b.Events()
	if assert.Len(t, events, 3) {
		assert.Equal(t, "phase_start", events[0].Kind)
		assert.Equal(t, "analyze", events[0].Phase)
		assert.Equal(t, "warning", events[1].Kind)
		assert.Equal(t, "fallback to linear solver", events[1].Message)
		assert.Equal(t, "phase_complete", events[2].Kind)
	}
}

func TestCompositeFansOutToEveryMember(t *testing.T) {
	a := &progress.Buffered{}
	b := &progress.Buffered{}
	composite := progress.Composite{a, b, progress.Null{}}

	composite.PhaseStart("calibrate")
	composite.Percentage(42)

	assert.Len(t, a.Events(), 2)
	assert.Len(t, b.Events(), 2)
}

func TestNullIsSafeToCallWithoutSetup(t *testing.T) {
	var p progress.Progress = progress.Null{}
	assert.NotPanics(t, func() {
		p.PhaseStart("warmup")
		p.RecurrenceDetected("T(n) = 2T(n/2) + n")
		p.MethodAnalyzed("List", "Sort")
		p.Warning("noop")
		p.Percentage(100)
	})
}
