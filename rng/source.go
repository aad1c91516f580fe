package rng

import (
	rand "math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// NewSeeded returns a PCG generator whose stream depends only on seed.
// Both PCG state words are derived from the seed so that nearby seeds
// produce unrelated streams.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// ParseSeed maps a textual seed to a numeric one.
// Decimal integers keep their value, so "42" and 42 seed the same stream.
// Any other text is hashed.
func ParseSeed(s string) uint64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint64(n)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	return xxhash.Sum64String(s)
}

// RandomSeed returns a fresh, unpredictable seed.
func RandomSeed() uint64 {
	id := uuid.New()
	return xxhash.Sum64(id[:])
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
