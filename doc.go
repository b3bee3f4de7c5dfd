// Package bagchain computes one number two independent ways and checks that
// they agree: the expected sum of bag A after a fixed number of random token
// swaps between two bags.
//
// The setup: A holds {1,5}, B holds {1,3,5}. Each step picks one token from
// each bag uniformly at random and swaps them. Because tokens are only moved,
// the state of the system is fully described by the multiset in A, which gives
// a five-state Markov chain:
//
//	state   {1,1} {1,3} {1,5} {3,5} {5,5}
//	value     2     4     6     8    10
//
// Packages:
//
//	matrix/     Dense storage, VecMat/MatVec kernels, row-stochastic validators
//	markov/     state space, derived transition matrix, exact propagation
//	montecarlo/ containers, parallel seeded trials, mean and standard error
//	crossval/   exact vs. simulated comparison and the text/YAML report
//	cmd/bagchain the CLI that runs both pipelines
//
// Quick example:
//
//	m, _ := markov.CalibratedModel()
//	_, exact, _ := m.Expected(3) // 6
//	est, _ := montecarlo.RunTrials(ctx, markov.CalibratedA, markov.CalibratedB,
//		3, 500000, montecarlo.WithSeed(42), montecarlo.WithWorkers(8))
//	c := crossval.Compare(exact, est, 0)
//	fmt.Println(c.Agree)
//
//	go install github.com/katalvlaran/bagchain/cmd/bagchain@latest
package bagchain
