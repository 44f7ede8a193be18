package card

// Store holds the cards loaded at startup. It is never modified after
// construction; readers get copies.
type Store struct {
	cards []Card
}

// NewStore creates a store from cards. The slice is copied.
func NewStore(cards []Card) *Store {
	s := &Store{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		s.cards = append(s.cards, c.Clone())
	}
	return s
}

// Cards returns a copy of all cards in load order
func (s *Store) Cards() []Card {
	if s == nil {
		return nil
	}
	out := make([]Card, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of cards
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cards)
}

// Count returns the number of cards of the given kind
func (s *Store) Count(kind Kind) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, c := range s.cards {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
