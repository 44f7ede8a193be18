package session

import "codeberg.org/snonux/cardstudy/internal/card"

// Action is a user intent understood by the controller
type Action int

const (
	ActionNone Action = iota
	ActionReveal
	ActionNext
	ActionShuffle
	ActionCategorySentence
	ActionCategoryVocabulary
	ActionCategoryPhrasalVerb
)

func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionNext:
		return "next"
	case ActionShuffle:
		return "shuffle"
	case ActionCategorySentence:
		return "category:sentence"
	case ActionCategoryVocabulary:
		return "category:vocabulary"
	case ActionCategoryPhrasalVerb:
		return "category:phrasal_verb"
	}
	return "none"
}

// Category returns the card kind a category action selects
func (a Action) Category() (card.Kind, bool) {
	switch a {
	case ActionCategorySentence:
		return card.KindSentence, true
	case ActionCategoryVocabulary:
		return card.KindVocabulary, true
	case ActionCategoryPhrasalVerb:
		return card.KindPhrasalVerb, true
	}
	return "", false
}

// CategoryAction returns the action that selects kind
func CategoryAction(kind card.Kind) Action {
	switch kind {
	case card.KindSentence:
		return ActionCategorySentence
	case card.KindVocabulary:
		return ActionCategoryVocabulary
	case card.KindPhrasalVerb:
		return ActionCategoryPhrasalVerb
	}
	return ActionNone
}

// KeyAction maps the study shortcuts shared by all UIs. The second result
// is false when the key is not a shortcut and should be passed on.
func KeyAction(key string) (Action, bool) {
	switch key {
	case "space", "Space", " ":
		return ActionReveal, true
	case "right", "Right":
		return ActionNext, true
	}
	return ActionNone, false
}
