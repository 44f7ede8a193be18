// Package session holds the state machine of a study session. State is a
// plain value; every transition takes the current State and returns the
// next one, so the GUI and the terminal UI share the same behaviour and
// tests can drive it without a window.
package session
