// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/bagchain/montecarlo"
	"github.com/stretchr/testify/require"
)

// exactMean and exactVariance of sum(A) after three swaps: the distribution
// is [23,43,84,43,23]/216 over values 2..10, so E=6 and E[X²]=41.
const (
	exactMean     = 6.0
	exactVariance = 5.0
)

// TestRunTrials_CalibratedScenario: 500000 trials land within ±0.02 of 6.
func TestRunTrials_CalibratedScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("500000 trials")
	}
	est, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 500000,
		montecarlo.WithSeed(20240601), montecarlo.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, 500000, est.Trials)
	require.Equal(t, 4, est.Workers)
	require.InDelta(t, exactMean, est.Mean, 0.02)
	require.InDelta(t, math.Sqrt(exactVariance/500000), est.StdErr, 0.0005)
}

// TestRunTrials_Convergence: |mean − 6| < 5·σ/√n as n grows.
func TestRunTrials_Convergence(t *testing.T) {
	sigma := math.Sqrt(exactVariance)
	for _, n := range []int{1000, 10000, 100000} {
		est, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, n,
			montecarlo.WithSeed(int64(n)+17))
		require.NoError(t, err)
		bound := 5 * sigma / math.Sqrt(float64(n))
		require.Less(t, math.Abs(est.Mean-exactMean), bound, "n=%d mean=%f", n, est.Mean)

		lo, hi := est.Interval(5)
		require.True(t, lo < exactMean && exactMean < hi, "n=%d [%f,%f]", n, lo, hi)
	}
}

// TestRunTrials_Deterministic: same seed and workers give the same estimate.
func TestRunTrials_Deterministic(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		a, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 20000,
			montecarlo.WithSeed(99), montecarlo.WithWorkers(workers))
		require.NoError(t, err)
		b, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 20000,
			montecarlo.WithSeed(99), montecarlo.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, a, b, "workers=%d", workers)
		require.Equal(t, int64(99), a.Seed)
	}
}

// TestRunTrials_WorkersClampedToTrials never spawns idle workers.
func TestRunTrials_WorkersClampedToTrials(t *testing.T) {
	est, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 1, 3,
		montecarlo.WithSeed(1), montecarlo.WithWorkers(8))
	require.NoError(t, err)
	require.Equal(t, 3, est.Workers)
	require.Equal(t, 3, est.Trials)
	require.Equal(t, 1, est.StepsPerTrial)
}

// TestRunTrials_SingleTrial has zero variance and an integral mean.
func TestRunTrials_SingleTrial(t *testing.T) {
	est, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 1, montecarlo.WithSeed(4))
	require.NoError(t, err)
	require.Zero(t, est.Variance)
	require.Zero(t, est.StdErr)
	require.Equal(t, math.Trunc(est.Mean), est.Mean)
}

// TestRunTrials_ConstantTokens: identical tokens make every trial equal.
func TestRunTrials_ConstantTokens(t *testing.T) {
	est, err := montecarlo.RunTrials(context.Background(), []int{2, 2}, []int{2, 2, 2}, 5, 1000,
		montecarlo.WithSeed(8), montecarlo.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 4.0, est.Mean)
	require.Zero(t, est.Variance)
}

// TestRunTrials_InvalidArguments covers the argument checks.
func TestRunTrials_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name          string
		a, b          []int
		steps, trials int
		opts          []montecarlo.Option
	}{
		{"zero trials", bagA, bagB, 3, 0, nil},
		{"negative trials", bagA, bagB, 3, -5, nil},
		{"zero steps", bagA, bagB, 0, 10, nil},
		{"empty A", nil, bagB, 3, 10, nil},
		{"empty B", bagA, []int{}, 3, 10, nil},
		{"zero workers", bagA, bagB, 3, 10, []montecarlo.Option{montecarlo.WithWorkers(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := montecarlo.RunTrials(ctx, tc.a, tc.b, tc.steps, tc.trials, tc.opts...)
			require.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
			require.Equal(t, montecarlo.Estimate{}, est)
		})
	}
}

// TestRunTrials_Cancelled returns the context error and no estimate.
func TestRunTrials_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est, err := montecarlo.RunTrials(ctx, bagA, bagB, 3, 100000,
		montecarlo.WithSeed(1), montecarlo.WithWorkers(4))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, montecarlo.Estimate{}, est)
}

// TestRunTrials_SeedSource: the source is used only when no seed is fixed.
func TestRunTrials_SeedSource(t *testing.T) {
	ctx := context.Background()
	fixed := func() (int64, error) { return 42, nil }

	fromSource, err := montecarlo.RunTrials(ctx, bagA, bagB, 3, 5000, montecarlo.WithSeedSource(fixed))
	require.NoError(t, err)
	fromSeed, err := montecarlo.RunTrials(ctx, bagA, bagB, 3, 5000, montecarlo.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, fromSeed, fromSource)

	boom := errors.New("no entropy")
	_, err = montecarlo.RunTrials(ctx, bagA, bagB, 3, 5000,
		montecarlo.WithSeedSource(func() (int64, error) { return 0, boom }))
	require.ErrorIs(t, err, boom)

	_, err = montecarlo.RunTrials(ctx, bagA, bagB, 3, 5000, montecarlo.WithSeedSource(nil))
	require.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
}

// TestRunTrials_EntropySeed draws a seed and reports it.
func TestRunTrials_EntropySeed(t *testing.T) {
	est, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 100)
	require.NoError(t, err)
	require.NotZero(t, est.Seed)

	again, err := montecarlo.RunTrials(context.Background(), bagA, bagB, 3, 100, montecarlo.WithSeed(est.Seed))
	require.NoError(t, err)
	require.Equal(t, est, again)
}
