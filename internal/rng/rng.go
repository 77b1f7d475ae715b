// Package rng provides the deterministic random source the simulation runs
// on. Every draw in a game session comes from one Source, advanced in a
// fixed, input-determined order; replaying the same seed and input sequence
// reproduces a session bit for bit.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is a seeded pseudo-random generator. It is the only mutable object
// in the simulation core and is always passed explicitly, never a global.
type Source struct {
	r *rand.Rand
}

// New creates a Source from an integer seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform integer in [lo, hi). Panics if hi <= lo.
func (s *Source) IntN(lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("rng: invalid range [%d, %d)", lo, hi))
	}
	return lo + s.r.Intn(hi-lo)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle performs a Fisher–Yates shuffle over n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// NewSeed generates a high-entropy seed using crypto/rand, for callers that
// want a fresh session rather than a replay.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
