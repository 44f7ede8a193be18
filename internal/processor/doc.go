// Package processor wires the card store to the run modes of the command
// line tool. It loads the card source, then starts the desktop window, the
// terminal UI or the card listing, or writes an Anki export.
package processor
