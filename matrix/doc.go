// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage and vector kernels behind the
// bag-exchange Markov model.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set/Row and a
//     finite-only numeric policy.
//   - VecMat (row vector × matrix), MatVec, Dot and RowSums kernels with
//     deterministic loop order.
//   - ValidateRowStochastic and ValidateProbabilityVector, the single source
//     of truth for "rows sum to one" and "vector is a distribution".
//
// It is not a general linear-algebra library; it carries exactly what a
// small transition matrix needs.
package matrix
