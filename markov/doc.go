// SPDX-License-Identifier: MIT

// Package markov is the exact side of the bag-exchange model.
//
// Two containers hold labelled tokens; one step picks a uniform position in
// A and a uniform position in B and swaps the two tokens. The package
// enumerates the contents A can hold (StateSpace), derives the one-step
// transition matrix from the swap combinatorics (DeriveTransitionMatrix),
// and propagates a distribution through it (Propagate) to get the expected
// total of A (Expectation).
//
// Quick example (calibrated model):
//
//	m, _ := markov.CalibratedModel()        // A={1,5}, B={1,3,5}
//	dist, e, _ := m.Expected(3)             // three swaps
//	fmt.Printf("%.6f\n", e)                 // 6.000000
//
// The five states are A ∈ {1,1},{1,3},{1,5},{3,5},{5,5} with values
// 2,4,6,8,10; the matrix rows are
//
//	{1,1}: 0   2/6 4/6 0   0
//	{1,3}: 1/6 1/6 2/6 2/6 0
//	{1,5}: 1/6 1/6 2/6 1/6 1/6
//	{3,5}: 0   2/6 2/6 1/6 1/6
//	{5,5}: 0   0   4/6 2/6 0
//
// Errors are sentinels (errors.go) matched with errors.Is.
package markov
