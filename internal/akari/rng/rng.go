// Package rng provides the deterministic, byte-string-seeded random
// source used by the generator. The splitmix64 core guarantees a fixed
// seed reproduces an identical puzzle across runs and platforms, and the
// bounded draw is unbiased so the generator's uniform sampling really is
// uniform.
package rng

import (
	"hash/fnv"
	"math/bits"
)

// Source is an owned, mutable random sequence. The zero value is not
// usable; construct one with New or NewFromSeed.
type Source struct {
	state uint64
}

// NewFromSeed seeds a Source from an arbitrary byte string, the way the
// generator is handed a seed phrase by its caller. Two Sources built from
// the same seed produce identical draw sequences.
func NewFromSeed(seed []byte) *Source {
	h := fnv.New64a()
	_, _ = h.Write(seed)
	state := h.Sum64()
	if state == 0 {
		// splitmix64 degenerates if ever reseeded to exactly zero and never
		// drawn from; nudge away from it so the first draw isn't trivial.
		state = 0x9e3779b97f4a7c15
	}
	return &Source{state: state}
}

// New seeds a Source from a string, for callers that already have a
// human-readable seed phrase rather than raw bytes.
func New(seed string) *Source {
	return NewFromSeed([]byte(seed))
}

// next implements splitmix64, advancing the internal state and returning
// the next pseudo-random 64-bit word.
func (s *Source) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a pseudo-random, unbiased integer in [0, n). It panics if
// n <= 0. Unbiasedness is achieved with Lemire's rejection method rather
// than a naive modulo, so every outcome in range is equally likely
// regardless of how n divides 2^64.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	bound := uint64(n)
	hi, lo := bits.Mul64(s.next(), bound)
	if lo < bound {
		thresh := -bound % bound
		for lo < thresh {
			hi, lo = bits.Mul64(s.next(), bound)
		}
	}
	return int(hi)
}

// Shuffle permutes n elements in place using swap, via Fisher-Yates driven
// by Intn. It mirrors the stdlib math/rand.Shuffle contract.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// ShuffleInts returns a new slice containing a random permutation of
// [0, n).
func (s *Source) ShuffleInts(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	s.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

// Clone checkpoints the current sequence: the returned Source will draw
// exactly the same values as s would from this point forward, and drawing
// from one no longer affects the other.
func (s *Source) Clone() *Source {
	return &Source{state: s.state}
}
