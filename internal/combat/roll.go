package combat

import "math/rand/v2"

// Roller produces a uniform random integer in [min, max].
type Roller func(min, max int) int

func defaultRoller(min, max int) int {
	return rand.IntN(max-min+1) + min
}

// Damage jitter ranges. Expected damage is positive on both sides, but a
// single draw can be non-positive; the round cap bounds the loop instead.
const (
	playerJitterMin = -2
	playerJitterMax = 5
	enemyJitterMin  = -2
	enemyJitterMax  = 3
	spellJitterMin  = -3
	spellJitterMax  = 3
)
