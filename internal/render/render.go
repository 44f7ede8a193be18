package render

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/highlight"
)

// EmptyMessage is shown in place of a card when the working subset is empty
const EmptyMessage = "No cards available."

// Text is one side of a card split into plain and highlighted runs
type Text struct {
	Segments []highlight.Segment
	Language highlight.Language
}

func plainText(s string, l highlight.Language) Text {
	if s == "" {
		return Text{Language: l}
	}
	return Text{Segments: []highlight.Segment{{Text: s}}, Language: l}
}

// String returns the text with highlighted runs wrapped in the language marker
func (t Text) String() string {
	return highlight.Annotate(t.Segments, t.Language.Marker())
}

// HTML is String with the text escaped for an HTML sink
func (t Text) HTML() string {
	return highlight.AnnotateHTML(t.Segments, t.Language.Marker())
}

// Plain returns the text without markup
func (t Text) Plain() string {
	return highlight.Plain(t.Segments)
}

// Marked reports whether any run is highlighted
func (t Text) Marked() bool {
	for _, seg := range t.Segments {
		if seg.Marked {
			return true
		}
	}
	return false
}

// View is everything a UI needs to draw one card
type View struct {
	VerbGroup string // "Verb: GIVE", or empty
	Primary   Text   // Chinese side
	Secondary Text   // English side, always computed
	Revealed  bool
	Counter   string // "3/10"
	Empty     bool
}

// VisibleSecondary returns the English side when revealed and empty text
// otherwise
func (v View) VisibleSecondary() Text {
	if !v.Revealed {
		return Text{Language: v.Secondary.Language}
	}
	return v.Secondary
}

// Render builds the view of c at position index (zero based) of total. A
// nil card renders the empty placeholder with a 0/0 counter.
func Render(c *card.Card, revealed bool, index, total int) View {
	if c == nil {
		return View{
			Primary:   plainText(EmptyMessage, highlight.Source),
			Secondary: Text{Language: highlight.Target},
			Counter:   "0/0",
			Empty:     true,
		}
	}

	v := View{
		Revealed: revealed,
		Counter:  fmt.Sprintf("%d/%d", index+1, total),
	}

	if c.Kind == card.KindPhrasalVerb {
		if c.VerbGroup != "" {
			v.VerbGroup = "Verb: " + strings.ToUpper(c.VerbGroup)
		}
		v.Primary = Text{
			Segments: highlight.Segments(c.Source, c.PhrasalVerbs, highlight.Source),
			Language: highlight.Source,
		}
		v.Secondary = Text{
			Segments: highlight.Segments(c.Target, c.PhrasalVerbs, highlight.Target),
			Language: highlight.Target,
		}
		return v
	}

	v.Primary = plainText(c.Source, highlight.Source)
	v.Secondary = plainText(c.Target, highlight.Target)
	return v
}
