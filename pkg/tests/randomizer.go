package tests

import (
	"math/rand"
)

// Randomizer is a deterministic source for tests that exercise code taking a
// func() float64, such as chart colour generation.
type Randomizer struct {
	Float64 func() float64
}

func NewRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
	}
}

// Sequence returns the given values in a loop.
func Sequence(values ...float64) func() float64 {
	i := 0

	return func() float64 {
		v := values[i%len(values)]
		i++

		return v
	}
}
