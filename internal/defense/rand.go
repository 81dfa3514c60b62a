package defense

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by the simulation. *rand.Rand satisfies
// it; tests substitute scripted sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a value in [lo, hi). An empty range yields lo.
func between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
