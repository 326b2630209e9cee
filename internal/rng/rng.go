// Package rng provides the deterministic pseudo-random stream used by the
// simulation. One Source is threaded through document generation and directive
// resolution, so a fixed seed replays an identical game.
package rng

import "time"

// Source is a xorshift64* generator. Not safe for concurrent use; the engine
// is single-threaded by design.
type Source struct {
	state uint64
}

// New returns a Source seeded with the given value. A zero seed is replaced
// with the current time, since xorshift never leaves the zero state.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{state: uint64(seed)}
}

func (s *Source) Uint64() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545F4914F6CDD1D
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Range returns a uniform integer in [min, max). If min >= max it returns min.
func (s *Source) Range(min, max int) int {
	if min >= max {
		return min
	}
	return min + int(s.Uint64()%uint64(max-min))
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}
