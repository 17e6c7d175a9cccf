// Package beer implements the random tasting draw.
package beer

import "math/rand"

// Zhiguli is the beer the whole game is about.
const Zhiguli = "Жигули барное"

// regular are the beers drawn when the Zhiguli roll misses.
var regular = []string{
	"Крушовица",
	"Жатецкий гусь",
	"Хамовники венское",
	"Хамовники пильзенское",
	"Козел",
}

const (
	// TastingSize is how many beers a single draw produces.
	TastingSize = 6

	// zhiguliChance is the per-slot probability of rolling Zhiguli.
	zhiguliChance = 0.3

	// happyThreshold is the Zhiguli count at which the tasting counts as lucky.
	happyThreshold = 3
)

// Tasting is one drawn selection, in draw order.
type Tasting []string

// Draw rolls a tasting of TastingSize beers. Each slot is an independent
// roll: zhiguliChance for Zhiguli, otherwise uniform over the regular list.
// rnd is supplied by the caller; Draw itself is not safe for concurrent use
// of a shared *rand.Rand.
func Draw(rnd *rand.Rand) Tasting {
	tasting := make(Tasting, 0, TastingSize)
	for i := 0; i < TastingSize; i++ {
		if rnd.Float64() < zhiguliChance {
			tasting = append(tasting, Zhiguli)
		} else {
			tasting = append(tasting, regular[rnd.Intn(len(regular))])
		}
	}
	return tasting
}

// ZhiguliCount returns how many slots rolled Zhiguli.
func (t Tasting) ZhiguliCount() int {
	count := 0
	for _, b := range t {
		if b == Zhiguli {
			count++
		}
	}
	return count
}

// Happy reports whether the tasting is lucky enough for the happy photo.
func (t Tasting) Happy() bool {
	return t.ZhiguliCount() >= happyThreshold
}

// Known reports whether name is one of the beers a draw can produce.
func Known(name string) bool {
	if name == Zhiguli {
		return true
	}
	for _, b := range regular {
		if b == name {
			return true
		}
	}
	return false
}
