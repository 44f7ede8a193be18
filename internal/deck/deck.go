package deck

import (
	"math/rand"
	"time"

	"codeberg.org/snonux/cardstudy/internal/card"
)

// Source provides random indexes. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// NewSource returns a random source seeded with seed, or with the current
// time when seed is zero
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Select returns the cards of the given kind in random order. The input
// slice is never modified. No matching cards yields an empty, non-nil slice.
func Select(cards []card.Card, kind card.Kind, rng Source) []card.Card {
	subset := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if c.Kind == kind {
			subset = append(subset, c)
		}
	}
	Shuffle(subset, rng)
	return subset
}

// Shuffle permutes cards in place with Fisher-Yates, walking from the last
// index down to 1 and swapping with a uniform index in [0, i]
func Shuffle(cards []card.Card, rng Source) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
