// Package tui is the terminal study mode, a bubbletea program driving the
// same session state machine as the desktop window.
package tui
