package bias

import (
	"math/rand"
	"time"
)

// Rand supplies the randomness used for score jitter, highlight confidence and
// generated article details. Injectable so tests can pin exact outputs.
type Rand interface {
	// IntBetween returns a uniform integer in [lo, hi], inclusive on both ends.
	IntBetween(lo, hi int) int
	// FloatBetween returns a uniform float in [lo, hi).
	FloatBetween(lo, hi float64) float64
}

type randSource struct {
	r *rand.Rand
}

// NewRand returns a seeded Rand. A zero seed falls back to the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

func (s *randSource) FloatBetween(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// NoJitter is a Rand that adds no noise: integer draws return zero and float
// draws return the midpoint of their range.
type NoJitter struct{}

func (NoJitter) IntBetween(lo, hi int) int { return 0 }

func (NoJitter) FloatBetween(lo, hi float64) float64 { return (lo + hi) / 2 }
