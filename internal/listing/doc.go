// Package listing prints a working subset to the terminal, one card per
// block, with phrasal verbs highlighted in colour and text wrapped to the
// terminal width.
package listing
