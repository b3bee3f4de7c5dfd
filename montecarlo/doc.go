// SPDX-License-Identifier: MIT

// Package montecarlo is the simulated side of the bag-exchange model.
//
// It never looks at a transition matrix. Each trial takes fresh copies of the
// two containers, performs a fixed number of random one-for-one swaps and
// records the total of container A. RunTrials averages that total over many
// trials and reports the sample mean together with its standard error.
//
// Trials may run on several workers (WithWorkers). Every worker owns its
// containers and its *rand.Rand, derived from the base seed and the worker
// index, and keeps a private integer subtotal; the subtotals are combined
// once all workers finish. Integer accumulation makes the combined totals
// exact and independent of reduction order.
//
//	est, err := montecarlo.RunTrials(ctx, []int{1, 5}, []int{1, 3, 5}, 3, 500000,
//		montecarlo.WithSeed(7), montecarlo.WithWorkers(runtime.NumCPU()))
package montecarlo
