// SPDX-License-Identifier: MIT

package montecarlo

import "fmt"

// DefaultWorkers runs trials sequentially on one stream.
const DefaultWorkers = 1

// Option configures RunTrials.
type Option func(*options)

type options struct {
	seed       int64
	seeded     bool
	workers    int
	seedSource func() (int64, error)
}

// WithSeed fixes the base seed. Same seed and worker count ⇒ same estimate.
// A zero seed is replaced by a fixed non-zero default.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSeedSource replaces the entropy source used when no seed is fixed.
func WithSeedSource(src func() (int64, error)) Option {
	return func(o *options) { o.seedSource = src }
}

// WithWorkers splits trials across n goroutines, each with its own stream.
// n <= 0 makes RunTrials fail with ErrInvalidArgument.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{workers: DefaultWorkers, seedSource: entropySeed}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// resolveSeed returns the fixed seed or draws one from the seed source.
func (o options) resolveSeed() (int64, error) {
	if o.seeded {
		return o.seed, nil
	}
	if o.seedSource == nil {
		return 0, fmt.Errorf("no seed source: %w", ErrInvalidArgument)
	}
	return o.seedSource()
}
