// SPDX-License-Identifier: MIT
package markov_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bagchain/markov"
	"github.com/katalvlaran/bagchain/matrix"
	"github.com/stretchr/testify/require"
)

// literalRows is the hand-typed table the derivation must reproduce.
var literalRows = [][]float64{
	{0.0, 1.0 / 3.0, 2.0 / 3.0, 0.0, 0.0},
	{1.0 / 6.0, 1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 0.0},
	{1.0 / 6.0, 1.0 / 6.0, 1.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
	{0.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
	{0.0, 0.0, 2.0 / 3.0, 1.0 / 3.0, 0.0},
}

func calibrated(t *testing.T) *markov.Model {
	t.Helper()
	m, err := markov.CalibratedModel()
	require.NoError(t, err)

	return m
}

// TestDerive_MatchesLiteralTable cross-checks the combinatorial rule against
// the literal fractions entry by entry.
func TestDerive_MatchesLiteralTable(t *testing.T) {
	m := calibrated(t)
	lit, err := markov.NewTransitionMatrix(literalRows)
	require.NoError(t, err)

	require.Equal(t, lit.Size(), m.P.Size())
	for i := 0; i < m.P.Size(); i++ {
		for j := 0; j < m.P.Size(); j++ {
			got, err := m.P.At(markov.State(i), markov.State(j))
			require.NoError(t, err)
			want, err := lit.At(markov.State(i), markov.State(j))
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12, "P[%d][%d]", i, j)
		}
	}
	require.True(t, lit.OnLattice(6), "literal table must sit on the 1/6 lattice")
}

// TestDerive_Counts pins the outcome counts out of 6 per row.
func TestDerive_Counts(t *testing.T) {
	m := calibrated(t)
	require.Equal(t, 6, m.P.Denominator())
	require.Equal(t, [][]int{
		{0, 2, 4, 0, 0},
		{1, 1, 2, 2, 0},
		{1, 1, 2, 1, 1},
		{0, 2, 2, 1, 1},
		{0, 0, 4, 2, 0},
	}, m.P.Counts())

	// Counts returns a copy.
	c := m.P.Counts()
	c[0][0] = 99
	require.Equal(t, 0, m.P.Counts()[0][0])
}

// TestDerive_RowStochastic holds for the calibrated model and a larger one.
func TestDerive_RowStochastic(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b []int
	}{
		{"calibrated", markov.CalibratedA, markov.CalibratedB},
		{"distinct", []int{1, 2, 3}, []int{4, 5, 6, 7}},
		{"all-equal", []int{2, 2}, []int{2, 2, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := markov.NewModel(tc.a, tc.b)
			require.NoError(t, err)
			sums, err := matrix.RowSums(m.P.Dense())
			require.NoError(t, err)
			for i, s := range sums {
				require.InDelta(t, 1.0, s, 1e-9, "row %d", i)
			}
			require.True(t, m.P.OnLattice(m.P.Denominator()))
		})
	}
}

// TestNewTransitionMatrix_Rejects covers every configuration failure.
func TestNewTransitionMatrix_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]float64
		cause error
	}{
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 0}, {1}}, matrix.ErrRaggedRows},
		{"non-square", [][]float64{{0.5, 0.5, 0}, {0.5, 0.5, 0}}, matrix.ErrDimensionMismatch},
		{"row sum", [][]float64{{0.5, 0.4}, {0.5, 0.5}}, matrix.ErrRowSum},
		{"negative", [][]float64{{-0.5, 1.5}, {0.5, 0.5}}, matrix.ErrNegativeEntry},
		{"above one", [][]float64{{1.5, -0.5}, {0.5, 0.5}}, matrix.ErrEntryAboveOne},
		{"nan", [][]float64{{math.NaN(), 1}, {0.5, 0.5}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm, err := markov.NewTransitionMatrix(tc.rows)
			require.Nil(t, tm)
			require.ErrorIs(t, err, markov.ErrConfiguration)
			require.ErrorIs(t, err, tc.cause)
		})
	}
}

// TestNewTransitionMatrix_Epsilon relaxes the row-sum tolerance on request.
func TestNewTransitionMatrix_Epsilon(t *testing.T) {
	rows := [][]float64{{0.5, 0.5 + 1e-6}, {0.5, 0.5}}

	_, err := markov.NewTransitionMatrix(rows)
	require.ErrorIs(t, err, matrix.ErrRowSum)

	tm, err := markov.NewTransitionMatrix(rows, matrix.WithEpsilon(1e-5))
	require.NoError(t, err)
	require.Equal(t, 1e-5, tm.Epsilon())
	require.Nil(t, tm.Counts())
	require.Zero(t, tm.Denominator())
}

// TestTransitionMatrix_Immutable checks Row/Rows/Dense hand out copies.
func TestTransitionMatrix_Immutable(t *testing.T) {
	m := calibrated(t)

	row, err := m.P.Row(2)
	require.NoError(t, err)
	row[0] = 42

	rows := m.P.Rows()
	rows[2][1] = 42

	d := m.P.Dense()
	require.NoError(t, d.Set(2, 2, 42))

	again, err := m.P.Row(2)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.0 / 6, 1.0 / 6, 1.0 / 3, 1.0 / 6, 1.0 / 6}, []float64(again), 1e-12)

	_, err = m.P.Row(7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestTransitionMatrix_String renders six decimals.
func TestTransitionMatrix_String(t *testing.T) {
	m := calibrated(t)
	require.Contains(t, m.P.String(), "[0.000000, 0.333333, 0.666667, 0.000000, 0.000000]\n")
}
