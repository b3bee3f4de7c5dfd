// SPDX-License-Identifier: MIT

package montecarlo

import (
	"fmt"
	"math/rand"
	"slices"
)

// Container is a fixed-capacity ordered holder of token values. Its length
// never changes after construction; swaps only rewrite positions.
type Container struct {
	tokens []int
}

// NewContainer copies tokens into a new Container.
func NewContainer(tokens []int) Container {
	return Container{tokens: slices.Clone(tokens)}
}

// Len returns the number of positions.
func (c *Container) Len() int { return len(c.tokens) }

// Sum returns the total token value.
func (c *Container) Sum() int {
	s := 0
	for _, t := range c.tokens {
		s += t
	}
	return s
}

// Tokens returns a copy of the current content.
func (c *Container) Tokens() []int { return slices.Clone(c.tokens) }

// Exchange holds one trial's pair of containers together with their initial
// contents. It is owned by a single worker: Reset restores the initial
// contents in place, so running many trials allocates nothing.
type Exchange struct {
	initA, initB []int
	a, b         Container
}

// NewExchange copies the initial contents; both must be non-empty.
func NewExchange(initialA, initialB []int) (*Exchange, error) {
	if len(initialA) == 0 || len(initialB) == 0 {
		return nil, fmt.Errorf("NewExchange: |A|=%d |B|=%d: %w",
			len(initialA), len(initialB), ErrInvalidArgument)
	}

	return &Exchange{
		initA: slices.Clone(initialA),
		initB: slices.Clone(initialB),
		a:     NewContainer(initialA),
		b:     NewContainer(initialB),
	}, nil
}

// Reset restores both containers to their initial contents.
func (x *Exchange) Reset() {
	copy(x.a.tokens, x.initA)
	copy(x.b.tokens, x.initB)
}

// Step picks a uniform position i in A and, independently, a uniform
// position j in B, swaps the two tokens and returns (i, j).
func (x *Exchange) Step(rng *rand.Rand) (i, j int) {
	i = rng.Intn(len(x.a.tokens))
	j = rng.Intn(len(x.b.tokens))
	x.a.tokens[i], x.b.tokens[j] = x.b.tokens[j], x.a.tokens[i]
	return i, j
}

// Run resets the exchange, performs steps swaps and returns sum(A).
func (x *Exchange) Run(rng *rand.Rand, steps int) int {
	x.Reset()
	for s := 0; s < steps; s++ {
		x.Step(rng)
	}
	return x.a.Sum()
}

// SumA returns the total of container A.
func (x *Exchange) SumA() int { return x.a.Sum() }

// SumB returns the total of container B.
func (x *Exchange) SumB() int { return x.b.Sum() }

// Total returns SumA()+SumB(); swaps never change it.
func (x *Exchange) Total() int { return x.a.Sum() + x.b.Sum() }

// A returns a copy of container A's content.
func (x *Exchange) A() []int { return x.a.Tokens() }

// B returns a copy of container B's content.
func (x *Exchange) B() []int { return x.b.Tokens() }
