// Package gui implements the fyne study window: a category selector, the
// current card with highlighted phrasal verbs, and buttons for reveal, next
// and shuffle. Space and the right arrow work as shortcuts.
package gui
