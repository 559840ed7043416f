package bench

import (
	"time"

	"github.com/complexo-io/complexo/progress"
)

// Option configures a Runner. NewRunner applies options over
// defaultRunner's values, so callers override only what they need; a
// zero-value Runner does not get those defaults.
type Option func(*Runner)

// WithMinIterTime sets the minimum measured duration a single
// calibration sample must reach before the runner stops inflating
// OpsPerIter. Default 100ms.
func WithMinIterTime(d time.Duration) Option {
	return func(r *Runner) { r.MinIterTime = d }
}

// WithMaxOpsCap bounds how large OpsPerIter may grow, protecting
// against a near-zero-cost action inflating the batch unboundedly.
// Default 100,000,000.
func WithMaxOpsCap(n int) Option {
	return func(r *Runner) { r.MaxOpsCap = n }
}

// WithForceGC requests a full garbage collection cycle before each
// measurement iteration, trading speed for allocation-measurement
// accuracy. Default false.
func WithForceGC(force bool) Option {
	return func(r *Runner) { r.ForceGC = force }
}

// WithProgress attaches a Progress sink. Default progress.Null{}.
func WithProgress(p progress.Progress) Option {
	return func(r *Runner) { r.Progress = p }
}

// WithInstabilityThreshold sets the coefficient-of-variation above
// which a size's result triggers a Progress.Warning. Default 0.10.
func WithInstabilityThreshold(cv float64) Option {
	return func(r *Runner) { r.InstabilityThreshold = cv }
}

func defaultRunner() *Runner {
	return &Runner{
		MinIterTime:          100 * time.Millisecond,
		MaxOpsCap:            100_000_000,
		ForceGC:              false,
		Progress:             progress.Null{},
		InstabilityThreshold: 0.10,
	}
}

// NewRunner builds a Runner with the given options applied over the
// defaults.
func NewRunner(opts ...Option) *Runner {
	r := defaultRunner()
	for _, opt := range opts {
		opt(r)
	}
	return r
}
