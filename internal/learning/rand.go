package learning

import "math/rand/v2"

// Rand is the source of randomness used by the selectors.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand uses the process-wide generator, safe for concurrent use
var DefaultRand Rand = globalRand{}

// Shuffle permutes s uniformly in place (Fisher-Yates)
func Shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
