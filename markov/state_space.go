// SPDX-License-Identifier: MIT

// Package markov - state-space enumeration for the two-container exchange.
//
// Purpose:
//   - Enumerate every content container A can reach under one-for-one swaps
//     with container B, starting from fixed initial contents.
//   - Give each content a stable State index and derive, from the same
//     definitions, the value map (sum of A) and the initial distribution.
//
// Determinism:
//   - States are ordered lexicographically by their sorted token tuple.
//     For A={1,5}, B={1,3,5} that is {1,1},{1,3},{1,5},{3,5},{5,5}.
//
// Complexity:
//   - O(C(n,k)·k) to enumerate, where n = |A|+|B| and k = |A|.

package markov

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// State is an index into the enumeration of StateSpace.
type State int

// StateSpace is the immutable enumeration of container-A contents.
type StateSpace struct {
	pool    []int          // all tokens of A and B, sorted
	sizeA   int            // |A|
	states  [][]int        // sorted A content per state
	index   map[string]int // canonical key -> state
	initial State          // state of the initial A content
}

// NewStateSpace enumerates the states reachable from the given initial
// containers. Inputs are copied; callers keep ownership.
//
// Errors:
//   - ErrConfiguration when either container is empty.
func NewStateSpace(initialA, initialB []int) (*StateSpace, error) {
	if len(initialA) == 0 || len(initialB) == 0 {
		return nil, fmt.Errorf("NewStateSpace: |A|=%d |B|=%d: %w",
			len(initialA), len(initialB), ErrConfiguration)
	}

	pool := make([]int, 0, len(initialA)+len(initialB))
	pool = append(pool, initialA...)
	pool = append(pool, initialB...)
	slices.Sort(pool)

	ss := &StateSpace{
		pool:  pool,
		sizeA: len(initialA),
		index: make(map[string]int),
	}
	ss.enumerate(0, make([]int, 0, ss.sizeA))

	start, err := ss.StateOf(initialA)
	if err != nil {
		// Unreachable: the initial content is a sub-multiset of the pool.
		return nil, fmt.Errorf("NewStateSpace: %w", err)
	}
	ss.initial = start

	return ss, nil
}

// enumerate emits every distinct sorted k-multiset of the pool in
// lexicographic order; equal tokens at the same depth are skipped so each
// multiset appears once.
func (ss *StateSpace) enumerate(from int, cur []int) {
	if len(cur) == ss.sizeA {
		tokens := slices.Clone(cur)
		ss.index[stateKey(tokens)] = len(ss.states)
		ss.states = append(ss.states, tokens)
		return
	}
	for i := from; i < len(ss.pool); i++ {
		if i > from && ss.pool[i] == ss.pool[i-1] {
			continue
		}
		ss.enumerate(i+1, append(cur, ss.pool[i]))
	}
}

// stateKey renders sorted tokens as "1,5".
func stateKey(sorted []int) string {
	var b strings.Builder
	for i, t := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}

	return b.String()
}

// Size returns the number of states.
func (ss *StateSpace) Size() int { return len(ss.states) }

// SizeA returns the number of tokens held by container A.
func (ss *StateSpace) SizeA() int { return ss.sizeA }

// SizeB returns the number of tokens held by container B.
func (ss *StateSpace) SizeB() int { return len(ss.pool) - ss.sizeA }

// Pool returns a copy of all tokens, sorted.
func (ss *StateSpace) Pool() []int { return slices.Clone(ss.pool) }

// Initial returns the state of the initial container-A content.
func (ss *StateSpace) Initial() State { return ss.initial }

// Tokens returns a copy of container A's sorted content in state s.
func (ss *StateSpace) Tokens(s State) ([]int, error) {
	if int(s) < 0 || int(s) >= len(ss.states) {
		return nil, fmt.Errorf("Tokens(%d): %w", s, ErrUnknownState)
	}

	return slices.Clone(ss.states[s]), nil
}

// Complement returns container B's sorted content in state s, i.e. the pool
// minus A's tokens as a multiset.
func (ss *StateSpace) Complement(s State) ([]int, error) {
	a, err := ss.Tokens(s)
	if err != nil {
		return nil, err
	}

	return multisetDiff(ss.pool, a), nil
}

// StateOf maps a container-A content (any order) to its state.
func (ss *StateSpace) StateOf(tokens []int) (State, error) {
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)
	i, ok := ss.index[stateKey(sorted)]
	if !ok {
		return 0, fmt.Errorf("StateOf(%v): %w", tokens, ErrUnknownState)
	}

	return State(i), nil
}

// Values returns the value map: the sum of container A's tokens per state.
func (ss *StateSpace) Values() ValueMap {
	vm := make(ValueMap, len(ss.states))
	for i, tokens := range ss.states {
		sum := 0
		for _, t := range tokens {
			sum += t
		}
		vm[i] = float64(sum)
	}

	return vm
}

// InitialDistribution returns the one-hot distribution on Initial().
func (ss *StateSpace) InitialDistribution() Distribution {
	d := make(Distribution, len(ss.states))
	d[ss.initial] = 1

	return d
}

// Label renders state s as "{1,5}"; unknown states render as "?".
func (ss *StateSpace) Label(s State) string {
	if int(s) < 0 || int(s) >= len(ss.states) {
		return "?"
	}

	return "{" + stateKey(ss.states[s]) + "}"
}

// multisetDiff returns a − b for sorted multisets, b ⊆ a.
func multisetDiff(a, b []int) []int {
	out := make([]int, 0, len(a)-len(b))
	j := 0
	for _, v := range a {
		if j < len(b) && b[j] == v {
			j++
			continue
		}
		out = append(out, v)
	}

	return out
}
