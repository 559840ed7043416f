package bench_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/bench"
	"github.com/complexo-io/complexo/errs"
)

func TestRunMeasuresEverySize(t *testing.T) {
	preset := bench.Preset{Name: "test", Sizes: []int{10, 100}, Warmup: 1, Measurements: 5}
	runner := bench.NewRunner(bench.WithMinIterTime(time.Microsecond))

	setup := func(size int) (any, error) { return size, nil }
	action := func(state any) {
		n := state.(int)
		total := 0
		for i := 0; i < n; i++ {
			total += i
		}
		_ = total
	}

	results, err := runner.Run(context.Background(), preset, setup, action)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Greater(t, res.OpsPerIter, 0)
		assert.GreaterOrEqual(t, res.Samples, 1)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	preset := bench.Preset{Name: "test", Sizes: []int{1, 2, 3}, Warmup: 0, Measurements: 3}
	runner := bench.NewRunner(bench.WithMinIterTime(time.Microsecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runner.Run(ctx, preset, func(int) (any, error) { return nil, nil }, func(any) {})
	assert.Error(t, err)
	assert.Empty(t, results)
}

func TestRunPropagatesSetupFailureAsInputInvalid(t *testing.T) {
	preset := bench.Preset{Name: "test", Sizes: []int{5}, Warmup: 0, Measurements: 1}
	runner := bench.NewRunner()

	_, err := runner.Run(context.Background(), preset, func(int) (any, error) {
		return nil, assert.AnError
	}, func(any) {})
	require.Error(t, err)
	assert.True(t, errs.InputInvalid.Is(err))
}

func TestPresetsScaleSizeAndDepth(t *testing.T) {
	assert.Len(t, bench.Quick().Sizes, 3)
	assert.Len(t, bench.Standard().Sizes, 6)
	assert.Len(t, bench.Thorough().Sizes, 10)
	assert.Less(t, bench.Quick().Measurements, bench.Thorough().Measurements)
}
