package card

import (
	"fmt"
	"strings"
)

// Kind is the category of a card
type Kind string

const (
	KindSentence    Kind = "sentence"
	KindVocabulary  Kind = "vocabulary"
	KindPhrasalVerb Kind = "phrasal_verb"
)

// Kinds lists the study categories in display order
var Kinds = []Kind{KindSentence, KindVocabulary, KindPhrasalVerb}

// Label returns the human readable category name
func (k Kind) Label() string {
	switch k {
	case KindSentence:
		return "Sentences"
	case KindVocabulary:
		return "Vocabulary"
	case KindPhrasalVerb:
		return "Phrasal Verbs"
	}
	return string(k)
}

// ParseKind parses a category name. The spellings used by existing data
// files ("phrasal_verbs", "phrasal-verb", "sentences", "vocab") are accepted.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch norm {
	case "sentence", "sentences":
		return KindSentence, nil
	case "vocabulary", "vocab", "word", "words":
		return KindVocabulary, nil
	case "phrasal_verb", "phrasal_verbs", "phrasalverb", "phrasalverbs":
		return KindPhrasalVerb, nil
	}
	return "", fmt.Errorf("unknown card type: %q", s)
}

// PhrasalVerbDef is one phrasal verb to highlight, in both languages
type PhrasalVerbDef struct {
	Source string // Chinese form, e.g. 放弃
	Target string // English form, e.g. give up
}

// Card is a single study item
type Card struct {
	Kind         Kind
	Source       string // Chinese text
	Target       string // English text
	VerbGroup    string // Base verb label, phrasal verb cards only
	PhrasalVerbs []PhrasalVerbDef
}

// Clone returns a copy that shares no slices with c
func (c Card) Clone() Card {
	if c.PhrasalVerbs != nil {
		defs := make([]PhrasalVerbDef, len(c.PhrasalVerbs))
		copy(defs, c.PhrasalVerbs)
		c.PhrasalVerbs = defs
	}
	return c
}

// normalize clears the fields that do not belong to the card's kind
func (c *Card) normalize() {
	if c.Kind != KindPhrasalVerb {
		c.VerbGroup = ""
		c.PhrasalVerbs = nil
	}
}
