package initializers

import (
	"math/rand"
)

type uniform struct {
	lower, upper float64

	// nil uses the shared source from math/rand
	rng *rand.Rand
}

// Uniform returns an Initializer that draws each weight from a uniform distribution over
// [lower, upper), which can be set by Range. The defaults ("uniform-lower" and "uniform-upper",
// 0 and 1) can be set by SetDefault.
//
// The result of Uniform is a type that implements shellnet.Initializer.
//
// Uniform is the default Initializer
func Uniform() *uniform {
	return &uniform{lower: defaultValue["uniform-lower"], upper: defaultValue["uniform-upper"]}
}

// Range sets the Range of a Uniform Initializer, returning the same Initializer
func (u *uniform) Range(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Seed gives the Initializer its own source of random numbers, so that Networks built with the
// same seed have the same weights.
func (u *uniform) Seed(seed int64) *uniform {
	u.rng = rand.New(rand.NewSource(seed))
	return u
}

func (u *uniform) next() float64 {
	if u.rng == nil {
		return rand.Float64()
	}

	return u.rng.Float64()
}

// Set is the implementation of shellnet.Initializer
func (u *uniform) Set(ws []float64) {
	if u.lower > u.upper {
		u.lower, u.upper = u.upper, u.lower
	}

	for i := range ws {
		ws[i] = u.next()*(u.upper-u.lower) + u.lower
	}
}
