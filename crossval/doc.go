// SPDX-License-Identifier: MIT

// Package crossval closes the loop between the exact and the simulated
// pipelines: Compare sets the two numbers against each other and WriteText /
// WriteYAML render the full report (matrix, distribution, expectation,
// estimate) with six decimals.
package crossval
