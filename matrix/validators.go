// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochastic checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Row-stochastic check runs O(n²) in fixed i→j order.
//
// AI-Hints:
//  - Use ValidateRowStochastic right after building a transition table to fail fast.
//  - Use ValidateVecLen for any MatVec/VecMat-like operations to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors; the nil-argument sentinel is reused for slices.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowStochastic checks that m is square, finite, every entry lies in
// [-eps, 1+eps] and every row sums to 1 within eps.
//
// Inputs: Matrix m, tolerance eps ≥ 0 (NaN/Inf eps → ErrNaNInf).
// Errors (first violation in i→j order wins):
//   - ErrNilMatrix, ErrDimensionMismatch (structure),
//   - ErrNaNInf (entry), ErrNegativeEntry, ErrEntryAboveOne,
//   - ErrRowSum (row i, with the observed sum in the message).
//
// Complexity: O(n²) time, O(1) space.
// AI-Hints: Pair with DefaultEpsilon (1e-9) for tables built from exact fractions.
func ValidateRowStochastic(m Matrix, eps float64) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf(tag, ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	n := m.Rows()
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			case v < -eps:
				return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNegativeEntry))
			case v > 1+eps:
				return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrEntryAboveOne))
			}
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return validatorErrorf(tag, fmt.Errorf("row %d sums to %.12g: %w", i, sum, ErrRowSum))
		}
	}

	return nil
}

// ValidateProbabilityVector checks that x is non-nil, finite, has no entry
// below -eps and sums to 1 within eps.
//
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch (empty), ErrNaNInf,
// ErrNegativeEntry, ErrRowSum.
// Complexity: O(n).
func ValidateProbabilityVector(x []float64, eps float64) error {
	const tag = "ValidateProbabilityVector"
	if x == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if len(x) == 0 {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}
	if eps < 0 {
		eps = -eps
	}

	sum := ZeroSum
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, fmt.Errorf("[%d]: %w", i, ErrNaNInf))
		}
		if v < -eps {
			return validatorErrorf(tag, fmt.Errorf("[%d]=%g: %w", i, v, ErrNegativeEntry))
		}
		sum += v
	}
	if math.Abs(sum-1) > eps {
		return validatorErrorf(tag, fmt.Errorf("sum %.12g: %w", sum, ErrRowSum))
	}

	return nil
}
