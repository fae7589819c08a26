package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter returns the cells of the square of the given radius around center
// that come up black with probability density. Cells are visited row by row
// so the result only depends on the seed.
func (r *RNG) Scatter(center Vector, radius int64, density float64) []Vector {
	if radius < 0 || density <= 0 {
		return nil
	}
	var out []Vector
	for y := center.Y + radius; y >= center.Y-radius; y-- {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if r.Chance(density) {
				out = append(out, Vector{X: x, Y: y})
			}
		}
	}
	return out
}
