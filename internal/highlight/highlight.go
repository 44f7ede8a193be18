package highlight

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/cardstudy/internal/card"
)

// Language selects which side of a card is being highlighted
type Language int

const (
	// Source is the Chinese side, matched literally
	Source Language = iota
	// Target is the English side, matched with verb inflections
	Target
)

// Marker is the markup wrapped around a highlighted phrase
type Marker struct {
	Open  string
	Close string
}

var (
	SourceMarker = Marker{Open: `<span class="phrasal-verb">`, Close: `</span>`}
	TargetMarker = Marker{Open: `<span class="phrasal-verb-en">`, Close: `</span>`}
)

// Marker returns the markup used for l
func (l Language) Marker() Marker {
	if l == Source {
		return SourceMarker
	}
	return TargetMarker
}

func (l Language) String() string {
	if l == Source {
		return "source"
	}
	return "target"
}

// phrase returns the side of def that belongs to l
func (l Language) phrase(def card.PhrasalVerbDef) string {
	if l == Source {
		return def.Source
	}
	return def.Target
}

// Segment is a run of text that is either highlighted or plain
type Segment struct {
	Text   string
	Marked bool
}

// Pass wraps every occurrence of one phrase
type Pass struct {
	Phrase string

	re     *regexp.Regexp
	accept func(match string) bool
}

// Plan builds the passes for defs in the order they are applied: longest
// phrase first, ties keeping their definition order. Definitions with an
// empty phrase for l produce no pass. Source phrases are matched exactly as
// written; target phrases are trimmed before they are split into verb and
// particle.
func Plan(defs []card.PhrasalVerbDef, l Language) []Pass {
	phrases := make([]string, 0, len(defs))
	for _, def := range defs {
		p := l.phrase(def)
		if l == Target {
			p = strings.TrimSpace(p)
		}
		if p != "" {
			phrases = append(phrases, p)
		}
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return utf8.RuneCountInString(phrases[i]) > utf8.RuneCountInString(phrases[j])
	})

	passes := make([]Pass, 0, len(phrases))
	for _, p := range phrases {
		if l == Source {
			passes = append(passes, literalPass(p))
		} else {
			passes = append(passes, inflectedPass(p))
		}
	}
	return passes
}

func literalPass(phrase string) Pass {
	return Pass{
		Phrase: phrase,
		re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase)),
	}
}

// inflectedPass matches "verb particle" with any known form of the verb,
// or a single word followed by any lowercase suffix
func inflectedPass(phrase string) Pass {
	parts := strings.Fields(phrase)
	verb := strings.ToLower(parts[0])

	if len(parts) == 1 {
		return Pass{
			Phrase: phrase,
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(verb) + `[a-z]*\b`),
			accept: func(match string) bool {
				return strings.HasPrefix(strings.ToLower(match), verb)
			},
		}
	}

	forms := verbForms(verb)
	quoted := make([]string, len(forms))
	for i, f := range forms {
		quoted[i] = regexp.QuoteMeta(f)
	}
	particle := regexp.QuoteMeta(strings.Join(parts[1:], " "))

	return Pass{
		Phrase: phrase,
		re:     regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\s+` + particle + `\b`),
	}
}

// Apply returns a new segment list with every match of the pass in the
// plain segments split out as a marked segment. Marked segments are kept
// as they are.
func (p Pass) Apply(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Marked {
			out = append(out, seg)
			continue
		}

		last := 0
		for _, loc := range p.re.FindAllStringIndex(seg.Text, -1) {
			match := seg.Text[loc[0]:loc[1]]
			if loc[0] == loc[1] || (p.accept != nil && !p.accept(match)) {
				continue
			}
			if loc[0] > last {
				out = append(out, Segment{Text: seg.Text[last:loc[0]]})
			}
			out = append(out, Segment{Text: match, Marked: true})
			last = loc[1]
		}
		if last < len(seg.Text) {
			out = append(out, Segment{Text: seg.Text[last:]})
		}
	}
	return out
}

// Segments splits text into plain and highlighted runs
func Segments(text string, defs []card.PhrasalVerbDef, l Language) []Segment {
	var segments []Segment
	if text != "" {
		segments = []Segment{{Text: text}}
	}
	for _, pass := range Plan(defs, l) {
		segments = pass.Apply(segments)
	}
	return segments
}

// Highlight returns text with every phrasal verb of defs wrapped in the
// marker for l. The input is returned unchanged when defs is empty.
func Highlight(text string, defs []card.PhrasalVerbDef, l Language) string {
	if len(defs) == 0 {
		return text
	}
	return Annotate(Segments(text, defs, l), l.Marker())
}

// Annotate joins segments, wrapping the marked ones in m
func Annotate(segments []Segment, m Marker) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Marked {
			b.WriteString(m.Open)
			b.WriteString(seg.Text)
			b.WriteString(m.Close)
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// AnnotateHTML is Annotate with the segment text HTML-escaped
func AnnotateHTML(segments []Segment, m Marker) string {
	escaped := make([]Segment, len(segments))
	for i, seg := range segments {
		escaped[i] = Segment{Text: html.EscapeString(seg.Text), Marked: seg.Marked}
	}
	return Annotate(escaped, m)
}

// Plain joins segments without any markup
func Plain(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Strip removes the markers for l from annotated text. Only a Close that
// ends an Open is removed, so markup that was already part of the text
// survives.
func Strip(annotated string, l Language) string {
	m := l.Marker()

	var b strings.Builder
	rest := annotated
	for {
		i := strings.Index(rest, m.Open)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		rest = rest[i+len(m.Open):]

		j := strings.Index(rest, m.Close)
		if j < 0 {
			break
		}
		b.WriteString(rest[:j])
		rest = rest[j+len(m.Close):]
	}
	b.WriteString(rest)
	return b.String()
}
