// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bagchain/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil catches untyped and typed nil.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(chain(t)))
}

// TestValidateSquareNonNil covers nil, square and rectangular inputs.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquareNonNil(chain(t)))
}

// TestValidateVecLen rejects nil and wrong lengths.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{}, 0))
}

// TestValidateRowStochastic walks the documented error priority.
func TestValidateRowStochastic(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	nan, err := matrix.NewDenseFromRows([][]float64{{math.NaN(), 1}, {0.5, 0.5}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	tests := []struct {
		name string
		m    matrix.Matrix
		eps  float64
		want error
	}{
		{"chain", chain(t), matrix.DefaultEpsilon, nil},
		{"chain via interface", hide{chain(t)}, matrix.DefaultEpsilon, nil},
		{"identity", mustDense(t, [][]float64{{1, 0}, {0, 1}}), 0, nil},
		{"nil", nil, matrix.DefaultEpsilon, matrix.ErrNilMatrix},
		{"rectangular", rect, matrix.DefaultEpsilon, matrix.ErrDimensionMismatch},
		{"NaN entry", nan, matrix.DefaultEpsilon, matrix.ErrNaNInf},
		{"NaN eps", chain(t), math.NaN(), matrix.ErrNaNInf},
		{"negative", mustDense(t, [][]float64{{-0.5, 1.5}, {0.5, 0.5}}), matrix.DefaultEpsilon, matrix.ErrNegativeEntry},
		{"above one", mustDense(t, [][]float64{{0.5, 0.5}, {1.5, -0.5}}), matrix.DefaultEpsilon, matrix.ErrEntryAboveOne},
		{"row sum", mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.4}}), matrix.DefaultEpsilon, matrix.ErrRowSum},
		{"row sum within eps", mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.4}}), 0.2, nil},
		{"negative eps is absolute", mustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.4}}), -0.2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRowStochastic(tc.m, tc.eps)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateProbabilityVector covers every rejection.
func TestValidateProbabilityVector(t *testing.T) {
	t.Parallel()

	eps := matrix.DefaultEpsilon
	require.NoError(t, matrix.ValidateProbabilityVector([]float64{0, 0, 1, 0, 0}, eps))
	require.NoError(t, matrix.ValidateProbabilityVector([]float64{0.25, 0.75}, eps))
	require.ErrorIs(t, matrix.ValidateProbabilityVector(nil, eps), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateProbabilityVector([]float64{}, eps), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateProbabilityVector([]float64{math.Inf(1)}, eps), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateProbabilityVector([]float64{-0.1, 1.1}, eps), matrix.ErrNegativeEntry)
	require.ErrorIs(t, matrix.ValidateProbabilityVector([]float64{0.3, 0.3}, eps), matrix.ErrRowSum)
}
