// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
// Every message is prefixed with "markov: ...". Call sites wrap with an
// operation tag; callers match with errors.Is. Matrix-level sentinels
// (matrix.ErrRowSum, matrix.ErrNegativeEntry, ...) stay reachable through
// the wrap chain next to the markov sentinel.

package markov

import (
	"errors"

	"github.com/katalvlaran/bagchain/matrix"
)

var (
	// ErrConfiguration is a fatal construction-time failure: a transition row
	// does not sum to one, an entry leaves [0,1], entries are off the 1/(|A|·|B|)
	// lattice, or the containers are empty. Construction aborts.
	ErrConfiguration = errors.New("markov: invalid model configuration")

	// ErrDimensionMismatch is returned when a distribution, value map and
	// transition matrix disagree on the number of states. It is the matrix
	// sentinel itself so errors.Is works across both packages.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidDistribution marks an input vector that is not a probability
	// distribution (negative entry, non-finite entry, or sum != 1).
	ErrInvalidDistribution = errors.New("markov: invalid distribution")

	// ErrInvalidSteps is returned for a negative step count.
	ErrInvalidSteps = errors.New("markov: step count must be >= 0")

	// ErrInternalConsistency signals that a propagated distribution drifted
	// outside tolerance. It points at a malformed transition matrix, never at
	// caller input.
	ErrInternalConsistency = errors.New("markov: internal consistency fault")

	// ErrUnknownState is returned when a token multiset is not one of the
	// enumerated states.
	ErrUnknownState = errors.New("markov: unknown state")
)
