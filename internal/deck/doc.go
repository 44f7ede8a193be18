// Package deck builds the working subset of a study session: the cards of
// one category in a uniformly random order.
package deck
