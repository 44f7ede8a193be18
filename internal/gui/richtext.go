package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/cardstudy/internal/highlight"
	"codeberg.org/snonux/cardstudy/internal/render"
)

// highlightColor is the theme colour of highlighted phrases per language
func highlightColor(l highlight.Language) fyne.ThemeColorName {
	if l == highlight.Source {
		return theme.ColorNamePrimary
	}
	return theme.ColorNameSuccess
}

// richSegments converts rendered text to inline rich text segments, with
// phrasal verbs bold and coloured
func richSegments(t render.Text, size fyne.ThemeSizeName) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		style := widget.RichTextStyle{
			Inline:   true,
			SizeName: size,
		}
		if seg.Marked {
			style.ColorName = highlightColor(t.Language)
			style.TextStyle = fyne.TextStyle{Bold: true}
		}
		segments = append(segments, &widget.TextSegment{Text: seg.Text, Style: style})
	}
	return segments
}
