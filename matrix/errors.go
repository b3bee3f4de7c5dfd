// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> stochastic violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., a row vector whose length differs from the matrix row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows is returned by NewDenseFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNegativeEntry signals an entry below -eps in a matrix or vector that
	// must hold probabilities.
	ErrNegativeEntry = errors.New("matrix: negative probability entry")

	// ErrEntryAboveOne signals an entry above 1+eps in a probability matrix.
	ErrEntryAboveOne = errors.New("matrix: probability entry above one")

	// ErrRowSum signals a row (or vector) whose sum differs from 1 by more than eps.
	ErrRowSum = errors.New("matrix: row does not sum to one")
)
