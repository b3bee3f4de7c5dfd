// SPDX-License-Identifier: MIT
// Package matrix provides the vector kernels the chain model runs on:
// row-vector × matrix (VecMat), matrix × column-vector (MatVec), dot product
// and row sums. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product style accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opVecMat  = "VecMat"
	opMatVec  = "MatVec"
	opDot     = "Dot"
	opRowSums = "RowSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VecMat computes the row vector y = x · m, i.e. y[j] = Σ_i x[i]·m[i][j].
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows(); len(y) == m.Cols().
// Fast-path: *Dense walks each row once with flat indexing (i-outer, j-inner),
// so reads stay sequential in memory.
// Determinism: fixed i→j accumulation order; identical inputs give
// bit-identical outputs.
// Complexity: Time O(r*c), Space O(c) for y.
//
// AI-Hints:
//   - This is one step of a Markov chain when x is a distribution and m is row-stochastic.
//   - Zero x[i] rows are skipped; one-hot inputs cost O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	// Fast-path: *Dense allows flat, row-major accumulation.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xv float64
		for i = 0; i < d.r; i++ {
			xv = x[i]
			if xv == 0 { // skip rows with zero mass
				continue
			}
			base = i * d.c
			for j = 0; j < d.c; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	// Fallback: interface-based accumulation via At, same i→j order.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		if x[i] == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - With a row-stochastic m and x = values, y[i] is the one-step expected value from state i.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Dot returns Σ_i a[i]·b[i].
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (length differs).
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if a == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// RowSums returns the sum of every row of m in row order.
// Complexity: O(r*c) time, O(r) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, _ int, v float64) bool {
			sums[i] += v
			return true
		})

		return sums, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}
