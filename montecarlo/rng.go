// SPDX-License-Identifier: MIT

// Package montecarlo - RNG utilities shared by the trial workers.
//
// Goals:
//   - Determinism: same (seed, workers) ⇒ identical estimate across runs.
//   - Encapsulation: one RNG factory; the only non-deterministic source is
//     entropySeed, used when the caller supplies no seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand across workers.
//   - workerRNG creates an independent stream per worker.
package montecarlo

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// defaultRNGSeed replaces a zero seed so that WithSeed(0) stays reproducible.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - SplitMix64 finalizer constants; small input changes give large,
//     well-distributed output changes, so worker streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// workerRNG returns the private stream of worker w for a run seeded with seed.
// Call during setup, never in the trial loop.
func workerRNG(seed int64, w int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(w))))
}

// entropySeed draws a non-zero seed from the operating system's CSPRNG.
func entropySeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("entropy seed: %w", err)
	}
	s := int64(binary.LittleEndian.Uint64(buf[:]))
	if s == 0 {
		s = defaultRNGSeed
	}
	return s, nil
}
