// Package render turns the current card of a study session into a View: the
// verb-group label, the highlighted Chinese and English text and the
// position counter. Every UI draws from a View and never from a Card.
package render
