package lifex

import "math/rand/v2"

// SeedFunc decides the initial state of the cell at (x, y).
type SeedFunc func(x, y int) bool

// DeadSeed leaves every cell dead.
func DeadSeed(x, y int) bool { return false }

// RandomSeed makes each cell alive with probability 1/2, independently.
// A nil rng uses the randomly seeded package-level source, so runs are not reproducible.
func RandomSeed(rng *rand.Rand) SeedFunc {
	return DensitySeed(rng, 0.5)
}

// DensitySeed makes each cell alive with probability p.
func DensitySeed(rng *rand.Rand, p float64) SeedFunc {
	if rng == nil {
		return func(x, y int) bool { return rand.Float64() < p }
	}
	return func(x, y int) bool { return rng.Float64() < p }
}

// NewRand returns a deterministic source for seed functions.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// CellsSeed makes exactly the listed cells alive.
func CellsSeed(cells ...Cell) SeedFunc {
	live := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		live[c] = struct{}{}
	}
	return func(x, y int) bool {
		_, ok := live[Cell{X: x, Y: y}]
		return ok
	}
}
