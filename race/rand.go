package race

import "math/rand"

// Rand is the source of every random decision in a race. Inject a seeded
// source to make a race reproducible.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [min, max).
func between(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// chance reports whether an event with probability p happens.
func chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}
