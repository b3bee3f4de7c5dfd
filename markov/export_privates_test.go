// SPDX-License-Identifier: MIT

package markov

import "github.com/katalvlaran/bagchain/matrix"

// NewUncheckedTransitionMatrix_TestOnly wraps rows WITHOUT the row-stochastic
// check so tests can feed a malformed matrix to the propagator.
func NewUncheckedTransitionMatrix_TestOnly(rows [][]float64) (*TransitionMatrix, error) {
	p, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	return &TransitionMatrix{p: p, eps: matrix.DefaultEpsilon}, nil
}
