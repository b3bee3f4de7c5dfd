// SPDX-License-Identifier: MIT

// Package markov - transition matrix derived from the swap combinatorics.
//
// Purpose:
//   - Build the one-step transition matrix of the exchange process from the
//     physical rule instead of a literal table: container A exposes |A|
//     equally likely pick positions, container B exposes |B|, so every swap
//     has |A|·|B| equally likely outcomes. Entry (s, t) is the number of
//     outcomes that move A from s to t, divided by |A|·|B|.
//   - Accept a supplied literal table too, under the same row-stochastic
//     checks, so hand-typed fractions can be compared with the derivation.
//
// Invariants (checked at construction, violations → ErrConfiguration):
//   - square, finite, entries in [0,1], every row sums to 1 within eps;
//   - derived entries lie on the 1/(|A|·|B|) lattice.
//
// Immutability:
//   - TransitionMatrix never exposes its backing *matrix.Dense; Row and Dense
//     return copies.

package markov

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/bagchain/matrix"
)

// TransitionMatrix is an immutable row-stochastic n×n matrix.
type TransitionMatrix struct {
	p      *matrix.Dense
	counts [][]int // outcome counts per (s,t); nil for supplied tables
	denom  int     // outcomes per step; 0 for supplied tables
	eps    float64 // tolerance used for every stochastic check on this matrix
}

// DeriveTransitionMatrix builds the transition matrix of ss from the swap rule.
//
// Implementation:
//   - Stage 1: for each state s, B = pool − A(s).
//   - Stage 2: for each (i, j) in |A|×|B|, swap A[i] with B[j], canonicalise
//     the new A and count one outcome toward its state.
//   - Stage 3: entry = count / (|A|·|B|); verify lattice and row sums.
//
// Errors:
//   - ErrConfiguration (wrapping the matrix sentinel) when a check fails.
//
// Complexity:
//   - O(n·|A|·|B|·|A| log |A|) time, O(n²) space.
func DeriveTransitionMatrix(ss *StateSpace, opts ...matrix.Option) (*TransitionMatrix, error) {
	const tag = "DeriveTransitionMatrix"
	if ss == nil || ss.Size() == 0 {
		return nil, fmt.Errorf("%s: empty state space: %w", tag, ErrConfiguration)
	}
	n := ss.Size()
	denom := ss.SizeA() * ss.SizeB()

	counts := make([][]int, n)
	next := make([]int, ss.SizeA())
	var s, i, j int
	for s = 0; s < n; s++ {
		counts[s] = make([]int, n)
		a := ss.states[s]
		b := multisetDiff(ss.pool, a)
		for i = range a {
			for j = range b {
				copy(next, a)
				next[i] = b[j]
				slices.Sort(next)
				t, ok := ss.index[stateKey(next)]
				if !ok {
					// Unreachable: a swap preserves the pool multiset.
					return nil, fmt.Errorf("%s: swap (%d,%d) from %s: %w",
						tag, i, j, ss.Label(State(s)), ErrUnknownState)
				}
				counts[s][t]++
			}
		}
	}

	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", tag, ErrConfiguration, err)
	}
	var t int
	for s = 0; s < n; s++ {
		for t = 0; t < n; t++ {
			if err = p.Set(s, t, float64(counts[s][t])/float64(denom)); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", tag, ErrConfiguration, err)
			}
		}
	}

	tm := &TransitionMatrix{
		p:      p,
		counts: counts,
		denom:  denom,
		eps:    matrix.NewMatrixOptions(opts...).Epsilon(),
	}
	if err = tm.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if !tm.OnLattice(denom) {
		return nil, fmt.Errorf("%s: entries off the 1/%d lattice: %w", tag, denom, ErrConfiguration)
	}

	return tm, nil
}

// NewTransitionMatrix wraps a supplied table after the row-stochastic checks.
// The rows are copied.
//
// Errors:
//   - ErrConfiguration wrapping matrix.ErrInvalidDimensions, ErrRaggedRows,
//     ErrNaNInf, ErrDimensionMismatch (non-square), ErrNegativeEntry,
//     ErrEntryAboveOne or ErrRowSum.
func NewTransitionMatrix(rows [][]float64, opts ...matrix.Option) (*TransitionMatrix, error) {
	const tag = "NewTransitionMatrix"
	p, err := matrix.NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", tag, ErrConfiguration, err)
	}
	tm := &TransitionMatrix{p: p, eps: matrix.NewMatrixOptions(opts...).Epsilon()}
	if err = tm.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return tm, nil
}

// check runs the canonical row-stochastic validator.
func (tm *TransitionMatrix) check() error {
	if err := matrix.ValidateRowStochastic(tm.p, tm.eps); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}

// Size returns the number of states n.
func (tm *TransitionMatrix) Size() int { return tm.p.Rows() }

// Epsilon returns the tolerance used for this matrix's checks.
func (tm *TransitionMatrix) Epsilon() float64 { return tm.eps }

// At returns P[from][to].
func (tm *TransitionMatrix) At(from, to State) (float64, error) {
	return tm.p.At(int(from), int(to))
}

// Row returns a copy of P[from].
func (tm *TransitionMatrix) Row(from State) (Distribution, error) {
	r, err := tm.p.Row(int(from))
	if err != nil {
		return nil, err
	}

	return Distribution(r), nil
}

// Dense returns an independent copy of the backing matrix.
func (tm *TransitionMatrix) Dense() *matrix.Dense {
	return tm.p.Clone().(*matrix.Dense)
}

// Rows returns the matrix as a fresh [][]float64.
func (tm *TransitionMatrix) Rows() [][]float64 {
	out := make([][]float64, tm.Size())
	for i := range out {
		out[i], _ = tm.p.Row(i) // i is in range
	}

	return out
}

// Denominator returns |A|·|B| for derived matrices and 0 for supplied ones.
func (tm *TransitionMatrix) Denominator() int { return tm.denom }

// Counts returns a copy of the outcome counts per (from, to) for derived
// matrices, or nil for supplied tables.
func (tm *TransitionMatrix) Counts() [][]int {
	if tm.counts == nil {
		return nil
	}
	out := make([][]int, len(tm.counts))
	for i, row := range tm.counts {
		out[i] = slices.Clone(row)
	}

	return out
}

// OnLattice reports whether every entry is an integer multiple of 1/denom
// within the matrix tolerance. denom <= 0 reports false.
func (tm *TransitionMatrix) OnLattice(denom int) bool {
	if denom <= 0 {
		return false
	}
	ok := true
	d := float64(denom)
	tm.p.Do(func(_, _ int, v float64) bool {
		scaled := v * d
		if math.Abs(scaled-math.Round(scaled)) > tm.eps*d {
			ok = false
		}
		return ok
	})

	return ok
}

// String renders the matrix with six decimals per entry.
func (tm *TransitionMatrix) String() string { return tm.p.Render(6) }
