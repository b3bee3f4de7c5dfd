// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small, exact fixtures for the kernels (fractions of 6, so sums are exact).
//   • A wrapper that hides *Dense to force the interface fallback paths.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/bagchain/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type from the *Dense fast paths.
type hide struct{ matrix.Matrix }

// chain returns the 5x5 exchange matrix used throughout the tests.
func chain(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2.0 / 6, 4.0 / 6, 0, 0},
		{1.0 / 6, 1.0 / 6, 2.0 / 6, 2.0 / 6, 0},
		{1.0 / 6, 1.0 / 6, 2.0 / 6, 1.0 / 6, 1.0 / 6},
		{0, 2.0 / 6, 2.0 / 6, 1.0 / 6, 1.0 / 6},
		{0, 0, 4.0 / 6, 2.0 / 6, 0},
	})
	require.NoError(t, err)

	return m
}

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}
