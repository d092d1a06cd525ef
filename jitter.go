package geometrize

import "golang.org/x/exp/rand"

// Jitter supplies the random decisions used by Shape.Mutate.
//
// Intn picks which parameter group to perturb, Offset returns the signed
// displacement applied to it. Implementations decide the distribution; a
// Jitter is not required to be safe for concurrent use.
type Jitter interface {
	Intn(n int) int
	Offset() float64
}

// GaussianJitter draws normally distributed offsets with a fixed standard
// deviation.
type GaussianJitter struct {
	rng   *rand.Rand
	sigma float64
}

// NewGaussianJitter creates a deterministic jitter seeded with seed.
// Offsets are drawn from N(0, sigma²).
func NewGaussianJitter(seed uint64, sigma float64) *GaussianJitter {
	return &GaussianJitter{
		rng:   rand.New(rand.NewSource(seed)),
		sigma: sigma,
	}
}

// Intn returns a uniform integer in [0, n).
func (g *GaussianJitter) Intn(n int) int {
	return g.rng.Intn(n)
}

// Offset returns a normally distributed displacement.
func (g *GaussianJitter) Offset() float64 {
	return g.rng.NormFloat64() * g.sigma
}
