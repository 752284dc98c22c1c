package game

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness a room draws on for shuffles and target rolls.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a PCG-backed source seeded from the clock
func NewSource() Source {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, rand.Uint64()))
}

// NewSeededSource returns a deterministic source
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
