// Package rng - deterministic random sources shared by the planner, the
// negotiation loop, the scenario generator and the experiment harness.
//
// Goals:
//   - Determinism: same seed ⇒ identical negotiation trajectories.
//   - Injection: every stochastic routine takes an explicit *rand.Rand; there is
//     no process-global random state anywhere in the module.
//   - Independent streams: Derive splits one seed into per-run generators so
//     repeated runs can execute in parallel without sharing a source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel runs or workers.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// OrDefault returns r, or a DefaultSeed stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return FromSeed(0)
	}

	return r
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer (Vigna 2014 constants).
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from a parent seed and
// a stream identifier (run index, worker id). Equal inputs give equal streams.
//
// Complexity: O(1).
func Derive(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, a DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r = OrDefault(r)

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Pick returns a uniformly random index in [0, n). n must be positive.
func Pick(n int, r *rand.Rand) int {
	return OrDefault(r).Intn(n)
}
