// Package randutil constructs the deterministic random sources used for
// shuffling and equity simulation. Every randomised code path in the
// project takes a *rand.Rand built here, so a run is reproducible from
// the single int64 seed that produced it.
package randutil

import rand "math/rand/v2"

// New builds a PCG-backed *rand.Rand from one int64 seed. The two 64-bit
// words PCG requires are drawn from a splitmix64 stream started at the
// seed, which keeps adjacent seeds (42, 43, ...) statistically unrelated.
func New(seed int64) *rand.Rand {
	sm := splitmix{state: uint64(seed)}
	return rand.New(rand.NewPCG(sm.next(), sm.next()))
}

// splitmix is Sebastiano Vigna's splitmix64 generator, used here only to
// expand a single seed into PCG's two seed words.
type splitmix struct {
	state uint64
}

func (s *splitmix) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
