// SPDX-License-Identifier: MIT

// Package montecarlo - the trial loop.
//
// Implementation:
//   - Stage 1: validate arguments and resolve the seed.
//   - Stage 2: split trials deterministically across workers; worker w runs
//     trials/W (+1 for the first trials%W workers) on its own Exchange and
//     its own stream workerRNG(seed, w).
//   - Stage 3: each worker folds sum(A) into a private integer subtotal and
//     sum of squares after every completed trial.
//   - Stage 4: after every worker returns, subtotals are added in worker
//     order on the calling goroutine and turned into mean and standard error.
//
// Cancellation:
//   - The context is checked between trials only. A cancelled run returns
//     the context error and no estimate.
package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Estimate is the outcome of RunTrials.
type Estimate struct {
	Mean          float64 // sample mean of sum(A)
	Variance      float64 // unbiased sample variance; 0 when Trials == 1
	StdErr        float64 // sqrt(Variance / Trials)
	Trials        int
	StepsPerTrial int
	Workers       int   // effective worker count
	Seed          int64 // base seed, fixed or drawn
}

// Interval returns Mean ± k·StdErr.
func (e Estimate) Interval(k float64) (lo, hi float64) {
	return e.Mean - k*e.StdErr, e.Mean + k*e.StdErr
}

// partial is one worker's private accumulator.
type partial struct {
	trials int
	sum    int64
	sumSq  int64
}

// RunTrials estimates E[sum(A)] after stepsPerTrial swaps by averaging over
// trials independent runs that start from initialA and initialB.
//
// Errors:
//   - ErrInvalidArgument for trials <= 0, stepsPerTrial <= 0, an empty
//     container or a non-positive worker count.
//   - ctx.Err() when the context is cancelled before the last trial ends.
//   - The seed source error when no seed is fixed and entropy fails.
func RunTrials(ctx context.Context, initialA, initialB []int, stepsPerTrial, trials int, opts ...Option) (Estimate, error) {
	const tag = "RunTrials"
	o := gatherOptions(opts...)
	switch {
	case trials <= 0:
		return Estimate{}, fmt.Errorf("%s: trials=%d: %w", tag, trials, ErrInvalidArgument)
	case stepsPerTrial <= 0:
		return Estimate{}, fmt.Errorf("%s: steps=%d: %w", tag, stepsPerTrial, ErrInvalidArgument)
	case o.workers <= 0:
		return Estimate{}, fmt.Errorf("%s: workers=%d: %w", tag, o.workers, ErrInvalidArgument)
	}
	// Validates the containers once; workers build their own copies.
	if _, err := NewExchange(initialA, initialB); err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", tag, err)
	}
	seed, err := o.resolveSeed()
	if err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", tag, err)
	}

	workers := min(o.workers, trials)
	partials := make([]partial, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go 1.21 loop semantics
		share := trials / workers
		if w < trials%workers {
			share++
		}
		g.Go(func() error {
			x, err := NewExchange(initialA, initialB)
			if err != nil {
				return err
			}
			return runWorker(gctx, x, workerRNG(seed, w), stepsPerTrial, share, &partials[w])
		})
	}
	if err = g.Wait(); err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", tag, err)
	}

	var total partial
	for _, p := range partials {
		total.trials += p.trials
		total.sum += p.sum
		total.sumSq += p.sumSq
	}

	return summarize(total, stepsPerTrial, workers, seed), nil
}

// runWorker runs n trials and leaves its subtotal in out. out only ever
// holds whole trials.
func runWorker(ctx context.Context, x *Exchange, rng *rand.Rand, steps, n int, out *partial) error {
	var v int64
	for t := 0; t < n; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		v = int64(x.Run(rng, steps))
		out.sum += v
		out.sumSq += v * v
		out.trials++
	}
	return nil
}

// summarize turns exact integer totals into the floating estimate.
func summarize(p partial, steps, workers int, seed int64) Estimate {
	n := float64(p.trials)
	mean := float64(p.sum) / n
	variance := 0.0
	if p.trials > 1 {
		variance = (float64(p.sumSq) - float64(p.sum)*mean) / (n - 1)
		if variance < 0 { // rounding on a constant sample
			variance = 0
		}
	}

	return Estimate{
		Mean:          mean,
		Variance:      variance,
		StdErr:        math.Sqrt(variance / n),
		Trials:        p.trials,
		StepsPerTrial: steps,
		Workers:       workers,
		Seed:          seed,
	}
}
