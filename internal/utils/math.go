package utils

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Random is the single randomness source threaded through catch resolution.
// Every decision point draws from it exactly once so seeded sessions replay identically.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRandom returns a deterministic PCG source derived from seed
func NewSeededRandom(seed int64) *rand.Rand {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}

// RandomInt returns a random integer in [min, max). An empty range returns min.
func RandomInt(r Random, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min)
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
