package services

import "math/rand/v2"

// Random picks uniformly in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom is safe for concurrent use by request goroutines.
func DefaultRandom() Random { return globalRandom{} }

func pick[T any](rng Random, xs []T) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	return xs[rng.IntN(len(xs))], true
}
