package listing

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/highlight"
	"codeberg.org/snonux/cardstudy/internal/render"
)

const defaultWidth = 80

// Printer writes rendered cards to a terminal
type Printer struct {
	out   io.Writer
	width int

	label  *color.Color
	source *color.Color
	target *color.Color
}

// NewPrinter creates a printer for out, wrapping at the width of stdout
// when it is a terminal
func NewPrinter(out io.Writer) *Printer {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return NewPrinterWidth(out, width)
}

// NewPrinterWidth creates a printer wrapping at width columns
func NewPrinterWidth(out io.Writer, width int) *Printer {
	if width < 10 {
		width = defaultWidth
	}
	return &Printer{
		out:    out,
		width:  width,
		label:  color.New(color.FgCyan),
		source: color.New(color.FgYellow, color.Bold),
		target: color.New(color.FgGreen, color.Bold),
	}
}

// PrintCards prints every card of the subset with its translation
func (p *Printer) PrintCards(cards []card.Card) error {
	if len(cards) == 0 {
		return p.PrintView(render.Render(nil, false, 0, 0))
	}
	for i := range cards {
		if err := p.PrintView(render.Render(&cards[i], true, i, len(cards))); err != nil {
			return err
		}
	}
	return nil
}

// PrintView prints one card followed by a blank line
func (p *Printer) PrintView(v render.View) error {
	var b strings.Builder

	header := "[" + v.Counter + "]"
	if v.VerbGroup != "" {
		header += " " + v.VerbGroup
	}
	b.WriteString(p.label.Sprint(header))
	b.WriteString("\n")

	for _, line := range p.wrap(v.Primary) {
		b.WriteString("  " + line + "\n")
	}
	if secondary := v.VisibleSecondary(); len(secondary.Segments) > 0 {
		for _, line := range p.wrap(secondary) {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Printer) colorFor(l highlight.Language) *color.Color {
	if l == highlight.Source {
		return p.source
	}
	return p.target
}

// piece is part of a word, either highlighted or plain
type piece struct {
	text   string
	marked bool
}

// words splits segments at whitespace, keeping pieces of a word together
// when a highlight ends inside it ("up," in "give up,")
func words(segments []highlight.Segment) [][]piece {
	var out [][]piece
	var cur []piece

	for _, seg := range segments {
		start := 0
		for i, r := range seg.Text {
			if !unicode.IsSpace(r) {
				continue
			}
			if i > start {
				cur = append(cur, piece{seg.Text[start:i], seg.Marked})
			}
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			start = i + len(string(r))
		}
		if start < len(seg.Text) {
			cur = append(cur, piece{seg.Text[start:], seg.Marked})
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// wrap lays out t in lines of at most width-2 visible columns. A word
// longer than a line gets a line of its own.
func (p *Printer) wrap(t render.Text) []string {
	c := p.colorFor(t.Language)
	limit := p.width - 2

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range words(t.Segments) {
		w := 0
		var rendered strings.Builder
		for _, pc := range word {
			w += runewidth.StringWidth(pc.text)
			if pc.marked {
				rendered.WriteString(c.Sprint(pc.text))
			} else {
				rendered.WriteString(pc.text)
			}
		}

		switch {
		case lineWidth == 0:
			// First word on the line, always add it
		case lineWidth+1+w <= limit:
			line.WriteString(" ")
			lineWidth++
		default:
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(rendered.String())
		lineWidth += w
	}

	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Summary prints how many cards of each kind the store holds
func Summary(out io.Writer, store *card.Store) error {
	for _, kind := range card.Kinds {
		if _, err := fmt.Fprintf(out, "%-14s %d\n", kind.Label()+":", store.Count(kind)); err != nil {
			return err
		}
	}
	return nil
}
