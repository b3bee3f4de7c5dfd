// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bagchain/matrix"
)

// Calibrated example: A={1,5}, B={1,3,5}, three swaps.
var (
	CalibratedA = []int{1, 5}
	CalibratedB = []int{1, 3, 5}
)

// CalibratedSteps is the number of swaps in the calibrated example.
const CalibratedSteps = 3

// Model bundles a state space with the matrix, value map and initial
// distribution derived from it. All four come from the same state
// definitions, so they cannot drift apart.
type Model struct {
	Space   *StateSpace
	P       *TransitionMatrix
	Values  ValueMap
	Initial Distribution
}

// NewModel enumerates the state space of (initialA, initialB) and derives
// everything else from it.
//
// Errors: ErrConfiguration on empty containers or a failed matrix check.
func NewModel(initialA, initialB []int, opts ...matrix.Option) (*Model, error) {
	ss, err := NewStateSpace(initialA, initialB)
	if err != nil {
		return nil, fmt.Errorf("NewModel: %w", err)
	}
	tm, err := DeriveTransitionMatrix(ss, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewModel: %w", err)
	}
	m := &Model{
		Space:   ss,
		P:       tm,
		Values:  ss.Values(),
		Initial: ss.InitialDistribution(),
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// CalibratedModel returns the five-state model of A={1,5}, B={1,3,5}.
func CalibratedModel() (*Model, error) {
	return NewModel(slices.Clone(CalibratedA), slices.Clone(CalibratedB))
}

// Validate checks that the matrix, value map and initial distribution agree
// on the number of states and that the matrix and initial distribution still
// satisfy their invariants.
func (m *Model) Validate() error {
	const tag = "Model.Validate"
	if m == nil || m.P == nil || m.Space == nil {
		return fmt.Errorf("%s: incomplete model: %w", tag, ErrConfiguration)
	}
	n := m.P.Size()
	if m.Space.Size() != n || len(m.Values) != n || len(m.Initial) != n {
		return fmt.Errorf("%s: states=%d matrix=%d values=%d initial=%d: %w: %w",
			tag, m.Space.Size(), n, len(m.Values), len(m.Initial), ErrConfiguration, ErrDimensionMismatch)
	}
	if err := m.P.check(); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateProbabilityVector(m.Initial, m.P.eps); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, ErrConfiguration, err)
	}

	return nil
}

// Expected propagates the initial distribution steps times and returns the
// resulting distribution together with the expected value of container A.
func (m *Model) Expected(steps int) (Distribution, float64, error) {
	dist, err := Propagate(m.Initial, m.P, steps)
	if err != nil {
		return nil, 0, err
	}
	e, err := Expectation(dist, m.Values)
	if err != nil {
		return nil, 0, err
	}

	return dist, e, nil
}
