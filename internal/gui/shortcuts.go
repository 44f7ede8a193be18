package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/session"
)

const hotkeys = `## Study
**Space** Show/Hide English  
**→** Next card  
**s** Shuffle cards  

## Category
**1** Sentences  
**2** Vocabulary  
**3** Phrasal Verbs  

## Other
**x** Export to Anki  
**h** Show hotkeys  
**q** Quit application`

// keyAction maps a key to a study action. Letter shortcuts are on top of
// the ones shared with the terminal UI.
func keyAction(name fyne.KeyName) (session.Action, bool) {
	if action, ok := session.KeyAction(string(name)); ok {
		return action, true
	}
	switch name {
	case fyne.KeyS:
		return session.ActionShuffle, true
	case fyne.Key1:
		return session.CategoryAction(card.KindSentence), true
	case fyne.Key2:
		return session.CategoryAction(card.KindVocabulary), true
	case fyne.Key3:
		return session.CategoryAction(card.KindPhrasalVerb), true
	}
	return session.ActionNone, false
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		a.handleKey(ev.Name)
	})
}

// handleKey applies the shortcut for name and reports whether it was one
func (a *Application) handleKey(name fyne.KeyName) bool {
	switch name {
	case fyne.KeyH:
		a.onShowHotkeys()
		return true
	case fyne.KeyX:
		a.onExport()
		return true
	case fyne.KeyQ:
		a.window.Close()
		return true
	}

	action, ok := keyAction(name)
	if !ok {
		return false
	}
	if kind, isCategory := action.Category(); isCategory {
		// Keep the radio group in sync; its callback applies the action
		a.categoryRadio.SetSelected(kind.Label())
		return true
	}
	a.apply(action)
	return true
}

func (a *Application) onShowHotkeys() {
	content := widget.NewRichTextFromMarkdown(hotkeys)
	dialog.ShowCustom("Hotkeys", "Close", content, a.window)
}
