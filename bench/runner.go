package bench

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/complexo-io/complexo/errs"
	"github.com/complexo-io/complexo/progress"
)

// Runner executes the five-stage micro-benchmark procedure (warmup,
// calibration, measurement, outlier removal, statistics) for each
// size in a Preset. A Runner must not be shared across concurrent
// Run calls: measurement integrity requires the process to be
// otherwise idle, and a Runner holds no internal synchronization.
type Runner struct {
	MinIterTime          time.Duration
	MaxOpsCap            int
	ForceGC              bool
	Progress             progress.Progress
	InstabilityThreshold float64
}

type sample struct {
	duration time.Duration
	allocs   uint64
}

// Run measures Action against Setup's per-size state for every size
// in preset, honoring ctx between sizes and between measurement
// iterations. On cancellation, Run returns whatever sizes it already
// completed plus an errs.Cancelled error.
func (r *Runner) Run(ctx context.Context, preset Preset, setup Setup, action Action) ([]Result, error) {
	results := make([]Result, 0, len(preset.Sizes))

	for _, size := range preset.Sizes {
		if err := ctx.Err(); err != nil {
			return results, errs.Cancelled.New(fmt.Sprintf("benchmark cancelled before size %d", size))
		}

		phase := fmt.Sprintf("benchmark:size=%d", size)
		r.Progress.PhaseStart(phase)

		res, err := r.runSize(ctx, size, preset, setup, action)
		if err != nil {
			r.Progress.PhaseComplete(phase)
			return results, err
		}

		if res.CV > r.InstabilityThreshold {
			r.Progress.Warning(fmt.Sprintf("size %d: coefficient of variation %.3f exceeds threshold", size, res.CV))
		}
		results = append(results, res)
		r.Progress.PhaseComplete(phase)
	}

	return results, nil
}

func (r *Runner) runSize(ctx context.Context, size int, preset Preset, setup Setup, action Action) (Result, error) {
	state, err := setup(size)
	if err != nil {
		return Result{}, errs.InputInvalid.New(fmt.Sprintf("benchmark setup failed for size %d: %v", size, err))
	}

	for i := 0; i < preset.Warmup; i++ {
		action(state)
	}

	opsPerIter := r.calibrateOpsPerIter(state, action)

	samples := make([]sample, 0, preset.Measurements)
	for i := 0; i < preset.Measurements; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, errs.Cancelled.New(fmt.Sprintf("benchmark cancelled during measurement at size %d", size))
		}
		samples = append(samples, r.measureBatch(state, action, opsPerIter))
	}

	filtered, pruned := removeOutliers(samples)
	return summarize(size, opsPerIter, filtered, pruned), nil
}

func (r *Runner) calibrateOpsPerIter(state any, action Action) int {
	start := time.Now()
	action(state)
	elapsed := time.Since(start)

	if elapsed <= 0 {
		return r.MaxOpsCap
	}
	if elapsed >= r.MinIterTime {
		return 1
	}

	ops := int(r.MinIterTime/elapsed) + 1
	if ops > r.MaxOpsCap {
		ops = r.MaxOpsCap
	}
	if ops < 1 {
		ops = 1
	}
	return ops
}

func (r *Runner) measureBatch(state any, action Action, opsPerIter int) sample {
	if r.ForceGC {
		runtime.GC()
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < opsPerIter; i++ {
		action(state)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	allocDelta := after.TotalAlloc - before.TotalAlloc
	return sample{
		duration: elapsed / time.Duration(opsPerIter),
		allocs:   allocDelta / uint64(opsPerIter),
	}
}

// removeOutliers applies the IQR filter ([Q1-1.5·IQR, Q3+1.5·IQR]) to
// the per-op durations via gonum/stat's quantile estimator, and drops
// any sample whose duration falls outside the band.
func removeOutliers(samples []sample) ([]sample, int) {
	if len(samples) < 4 {
		return samples, 0
	}

	durations := make([]float64, len(samples))
	for i, s := range samples {
		durations[i] = float64(s.duration)
	}
	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)

	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	filtered := make([]sample, 0, len(samples))
	for _, s := range samples {
		d := float64(s.duration)
		if d >= lower && d <= upper {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return samples, 0
	}
	return filtered, len(samples) - len(filtered)
}

func summarize(size, opsPerIter int, samples []sample, pruned int) Result {
	durations := make([]float64, len(samples))
	minD, maxD := samples[0].duration, samples[0].duration
	var allocSum uint64
	for i, s := range samples {
		durations[i] = float64(s.duration)
		if s.duration < minD {
			minD = s.duration
		}
		if s.duration > maxD {
			maxD = s.duration
		}
		allocSum += s.allocs
	}

	mean, std := stat.MeanStdDev(durations, nil)
	cv := 0.0
	if mean != 0 {
		cv = std / mean
	}

	return Result{
		Size:           size,
		OpsPerIter:     opsPerIter,
		Samples:        len(samples),
		Mean:           time.Duration(mean),
		StdDev:         time.Duration(std),
		Min:            minD,
		Max:            maxD,
		CV:             cv,
		AllocBytes:     allocSum / uint64(len(samples)),
		OutliersPruned: pruned,
	}
}
