package bias

import (
	"math"

	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// Modifier is a sparse set of additive per-dimension offsets layered on top of
// a source baseline. Applied after jitter, before clamping. A nil Modifier is
// a no-op.
type Modifier map[Dimension]float64

// Scorer turns a source baseline plus bounded noise and topic offsets into a
// clamped, rounded score vector.
type Scorer struct {
	rng Rand
}

// NewScorer creates a Scorer drawing jitter from rng. A nil rng gets a
// time-seeded source.
func NewScorer(rng Rand) *Scorer {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Scorer{rng: rng}
}

// Score derives a full score vector for an article from the given outlet.
// Unknown outlets start from the neutral baseline. Jitter ranges are
// asymmetric on purpose: emotional tone, framing and transparency drift
// upward more than downward.
func (s *Scorer) Score(source string, mod Modifier) models.BiasScores {
	base := ProfileFor(source)

	ideological := base.IdeologicalStance + float64(s.rng.IntBetween(-10, 10))
	factual := base.FactualGrounding + float64(s.rng.IntBetween(-15, 15))
	emotional := base.EmotionalTone + float64(s.rng.IntBetween(-10, 20))
	framing := base.FramingChoices + float64(s.rng.IntBetween(-10, 15))
	transparency := base.SourceTransparency + float64(s.rng.IntBetween(-10, 15))

	ideological += mod[IdeologicalStance]
	factual += mod[FactualGrounding]
	emotional += mod[EmotionalTone]
	framing += mod[FramingChoices]
	transparency += mod[SourceTransparency]

	ideological = clamp(ideological, -100, 100)
	factual = clamp(factual, 0, 100)
	emotional = clamp(emotional, 0, 100)
	framing = clamp(framing, 0, 100)
	transparency = clamp(transparency, 0, 100)

	return models.BiasScores{
		Overall:            round1(Overall(ideological, factual, emotional, framing, transparency)),
		IdeologicalStance:  round1(ideological),
		FactualGrounding:   round1(factual),
		FramingChoices:     round1(framing),
		EmotionalTone:      round1(emotional),
		SourceTransparency: round1(transparency),
	}
}

// Overall computes the composite bias intensity from five clamped dimensions:
// ideological distance from center, sensationalism, missing factual
// grounding, framing bias and missing transparency, equally weighted.
func Overall(ideological, factual, emotional, framing, transparency float64) float64 {
	return (math.Abs(ideological) + emotional + (100 - factual) + framing + (100 - transparency)) / 5
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
