package session

import (
	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/deck"
	"codeberg.org/snonux/cardstudy/internal/render"
)

// State is the complete UI state of a study session
type State struct {
	Category card.Kind
	Cards    []card.Card // working subset, already shuffled
	Index    int
	Revealed bool
}

// Empty reports whether the working subset has no cards
func (st State) Empty() bool {
	return len(st.Cards) == 0
}

// Controller applies transitions against an immutable card store
type Controller struct {
	store *card.Store
	rng   deck.Source
}

// NewController creates a controller for store, drawing shuffles from rng
func NewController(store *card.Store, rng deck.Source) *Controller {
	return &Controller{store: store, rng: rng}
}

// Start returns the initial state with kind selected
func (c *Controller) Start(kind card.Kind) State {
	return c.SelectCategory(State{}, kind)
}

// SelectCategory builds a new working subset for kind and resets the
// position and reveal flag
func (c *Controller) SelectCategory(st State, kind card.Kind) State {
	return State{
		Category: kind,
		Cards:    deck.Select(c.store.Cards(), kind, c.rng),
	}
}

// Shuffle reshuffles the current category from the store
func (c *Controller) Shuffle(st State) State {
	return c.SelectCategory(st, st.Category)
}

// ToggleReveal flips the reveal flag
func (c *Controller) ToggleReveal(st State) State {
	st.Revealed = !st.Revealed
	return st
}

// Next moves to the following card, wrapping around at the end, and hides
// the English side. It does nothing on an empty subset.
func (c *Controller) Next(st State) State {
	if st.Empty() {
		return st
	}
	st.Index = (st.Index + 1) % len(st.Cards)
	st.Revealed = false
	return st
}

// Current returns the card at the current position, or nil
func (c *Controller) Current(st State) *card.Card {
	if st.Index < 0 || st.Index >= len(st.Cards) {
		return nil
	}
	cur := st.Cards[st.Index].Clone()
	return &cur
}

// View renders the current card of st
func (c *Controller) View(st State) render.View {
	return render.Render(c.Current(st), st.Revealed, st.Index, len(st.Cards))
}

// Dispatch applies a to st
func (c *Controller) Dispatch(st State, a Action) State {
	switch a {
	case ActionReveal:
		return c.ToggleReveal(st)
	case ActionNext:
		return c.Next(st)
	case ActionShuffle:
		return c.Shuffle(st)
	}
	if kind, ok := a.Category(); ok {
		return c.SelectCategory(st, kind)
	}
	return st
}
