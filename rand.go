package carve

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for operations that want it injectable,
// such as [JiggleShapes]. *rand.Rand satisfies it, so tests can pass a fixed
// seed and get reproducible results.
type Rand interface {
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// defaultRand backs operations invoked with a nil source.
var defaultRand Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func orDefaultRand(rng Rand) Rand {
	if rng == nil {
		return defaultRand
	}
	return rng
}

// Jitter returns a uniform random value in [-extent, extent).
func Jitter(rng Rand, extent float64) float64 {
	return (rng.Float64()*2 - 1) * extent
}
