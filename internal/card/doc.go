// Package card defines the flashcard model (sentences, vocabulary and
// phrasal verbs) and loads card sources in JSON, YAML, TOML, XLSX and plain
// text form into an immutable Store. Malformed records degrade to empty
// fields instead of failing the whole load.
package card
