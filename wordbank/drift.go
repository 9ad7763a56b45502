package wordbank

import (
	"math/rand/v2"

	"github.com/yohamta/donburi/features/math"
)

// DriftSource produces float-away velocities: a direction drawn uniformly
// from the square [-rangeHalf, rangeHalf]^2, normalized and scaled to speed.
type DriftSource struct {
	rng       *rand.Rand
	rangeHalf float64
	speed     float64
}

// NewDriftSource returns a source drawing from rng. A non-positive rangeHalf
// is treated as 1; only the direction of the draw matters.
func NewDriftSource(rng *rand.Rand, rangeHalf, speed float64) *DriftSource {
	if rangeHalf <= 0 {
		rangeHalf = 1
	}
	return &DriftSource{rng: rng, rangeHalf: rangeHalf, speed: speed}
}

// Next returns a vector of magnitude speed.
func (d *DriftSource) Next() math.Vec2 {
	for {
		v := math.NewVec2(d.component(), d.component())
		if v.Magnitude() == 0 {
			continue
		}
		n := v.Normalized()
		return n.MulScalar(d.speed)
	}
}

func (d *DriftSource) component() float64 {
	return (d.rng.Float64()*2 - 1) * d.rangeHalf
}

// NewRand returns a PCG generator. Passing the same seed yields the same
// sequence of words and drift vectors.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
