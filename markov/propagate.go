// SPDX-License-Identifier: MIT

// Package markov - exact propagation of a distribution through the chain.
//
// Purpose:
//   - Propagate: π_{k+1} = π_k · P, repeated a fixed number of steps.
//   - Expectation: E = Σ_i π[i]·v[i].
//   - BackwardExpectation: the same number computed as π_0 · (P^k v), an
//     independent evaluation order of the exact result.
//
// Determinism:
//   - Pure functions; inputs are never mutated; fixed loop orders in the
//     matrix kernels make repeated calls bit-identical.

package markov

import (
	"fmt"

	"github.com/katalvlaran/bagchain/matrix"
)

// Distribution is a probability vector over states.
type Distribution []float64

// Clone returns an independent copy.
func (d Distribution) Clone() Distribution {
	if d == nil {
		return nil
	}
	out := make(Distribution, len(d))
	copy(out, d)

	return out
}

// Sum returns Σ d[i].
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, v := range d {
		s += v
	}

	return s
}

// ValueMap assigns a scalar to every state.
type ValueMap []float64

// Operation tags for error wrapping.
const (
	opPropagate   = "Propagate"
	opTrajectory  = "Trajectory"
	opExpectation = "Expectation"
	opBackward    = "BackwardExpectation"
)

// Propagate returns the distribution after exactly steps transitions.
//
// Contract:
//   - len(dist) == tm.Size(), else ErrDimensionMismatch (no partial result).
//   - steps >= 0, else ErrInvalidSteps.
//   - dist must be a distribution, else ErrInvalidDistribution.
//   - steps == 0 returns a copy equal to dist.
//
// Each step is followed by a distribution check under tm.Epsilon(); a drift
// reports ErrInternalConsistency with the step number.
//
// Complexity: O(steps·n²).
func Propagate(dist Distribution, tm *TransitionMatrix, steps int) (Distribution, error) {
	var out Distribution
	err := walk(opPropagate, dist, tm, steps, func(_ int, d Distribution) {
		out = d
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Trajectory returns π_0..π_steps (steps+1 distributions). Every element is
// an independent slice.
func Trajectory(dist Distribution, tm *TransitionMatrix, steps int) ([]Distribution, error) {
	var out []Distribution
	err := walk(opTrajectory, dist, tm, steps, func(_ int, d Distribution) {
		out = append(out, d)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// walk validates inputs, then calls visit with π_0 (a copy) and each π_k.
func walk(tag string, dist Distribution, tm *TransitionMatrix, steps int, visit func(k int, d Distribution)) error {
	if tm == nil {
		return fmt.Errorf("%s: %w", tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(dist, tm.Size()); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if steps < 0 {
		return fmt.Errorf("%s: steps=%d: %w", tag, steps, ErrInvalidSteps)
	}
	if err := matrix.ValidateProbabilityVector(dist, tm.eps); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, ErrInvalidDistribution, err)
	}

	cur := dist.Clone()
	visit(0, cur)
	for k := 1; k <= steps; k++ {
		next, err := matrix.VecMat(cur, tm.p)
		if err != nil {
			return fmt.Errorf("%s: step %d: %w", tag, k, err)
		}
		if err = matrix.ValidateProbabilityVector(next, tm.eps); err != nil {
			return fmt.Errorf("%s: step %d: %w: %w", tag, k, ErrInternalConsistency, err)
		}
		cur = next
		visit(k, cur)
	}

	return nil
}

// Expectation returns Σ dist[i]·values[i].
//
// Errors: ErrDimensionMismatch when the lengths differ.
func Expectation(dist Distribution, values ValueMap) (float64, error) {
	e, err := matrix.Dot(dist, values)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opExpectation, err)
	}

	return e, nil
}

// BackwardExpectation computes dist · (P^steps · values) by iterating
// v ← P·v, which never forms an intermediate distribution. It must agree with
// Expectation(Propagate(dist, tm, steps), values) up to rounding.
func BackwardExpectation(dist Distribution, tm *TransitionMatrix, values ValueMap, steps int) (float64, error) {
	if tm == nil {
		return 0, fmt.Errorf("%s: %w", opBackward, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(values, tm.Size()); err != nil {
		return 0, fmt.Errorf("%s: %w", opBackward, err)
	}
	if steps < 0 {
		return 0, fmt.Errorf("%s: steps=%d: %w", opBackward, steps, ErrInvalidSteps)
	}

	v := []float64(values)
	var err error
	for k := 0; k < steps; k++ {
		if v, err = matrix.MatVec(tm.p, v); err != nil {
			return 0, fmt.Errorf("%s: step %d: %w", opBackward, k+1, err)
		}
	}

	return Expectation(dist, v)
}
