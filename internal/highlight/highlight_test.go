package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"codeberg.org/snonux/cardstudy/internal/card"
)

const (
	en  = `<span class="phrasal-verb-en">`
	zh  = `<span class="phrasal-verb">`
	end = `</span>`
)

var giveUp = []card.PhrasalVerbDef{{Source: "放弃", Target: "give up"}}

func TestHighlightTargetInflections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"base form", "I need to give up smoking.", "I need to " + en + "give up" + end + " smoking."},
		{"past tense", "She gave up last year.", "She " + en + "gave up" + end + " last year."},
		{"gerund capitalised", "Giving up is hard.", en + "Giving up" + end + " is hard."},
		{"third person", "He gives up too easily.", "He " + en + "gives up" + end + " too easily."},
		{"participle", "They have given up.", "They have " + en + "given up" + end + "."},
		{"upper case", "NEVER GIVE UP!", "NEVER " + en + "GIVE UP" + end + "!"},
		{"extra whitespace", "give \t up", en + "give \t up" + end},
		{"particle must be a whole word", "He kept giving upstairs neighbours cake.", "He kept giving upstairs neighbours cake."},
		{"verb must be a whole word", "forgive up", "forgive up"},
		{"every occurrence", "give up, gave up", en + "give up" + end + ", " + en + "gave up" + end},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.text, giveUp, Target); got != tt.want {
				t.Errorf("Highlight(%q) =\n  %q\nwant\n  %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHighlightSourceLiteral(t *testing.T) {
	got := Highlight("他决定放弃吸烟。", giveUp, Source)
	want := "他决定" + zh + "放弃" + end + "吸烟。"
	if got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightSourceEscapesMetacharacters(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Source: "放.弃"}}

	if got := Highlight("放x弃", defs, Source); got != "放x弃" {
		t.Errorf("metacharacter matched as regexp: %q", got)
	}
	if got := Highlight("放.弃", defs, Source); got != zh+"放.弃"+end {
		t.Errorf("literal phrase not matched: %q", got)
	}
}

func TestHighlightSourceCaseInsensitive(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Source: "ok"}}
	if got := Highlight("好的，OK。", defs, Source); got != "好的，"+zh+"OK"+end+"。" {
		t.Errorf("Highlight() = %q", got)
	}
}

func TestHighlightIrregularTakeOff(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Source: "起飞", Target: "take off"}}

	for _, form := range []string{"take off", "took off", "taking off", "takes off", "taken off"} {
		t.Run(form, func(t *testing.T) {
			text := "The plane " + form + " now."
			want := "The plane " + en + form + end + " now."
			if got := Highlight(text, defs, Target); got != want {
				t.Errorf("Highlight(%q) = %q, want %q", text, got, want)
			}
		})
	}

	t.Run("take offer", func(t *testing.T) {
		text := "I will take offer B."
		if got := Highlight(text, defs, Target); got != text {
			t.Errorf("Highlight(%q) = %q, want unchanged", text, got)
		}
	})

	t.Run("regular form not used for irregular verb", func(t *testing.T) {
		text := "It taked off."
		if got := Highlight(text, defs, Target); got != text {
			t.Errorf("Highlight(%q) = %q, want unchanged", text, got)
		}
	})
}

func TestHighlightRegularVerbForms(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "switch off"}}

	tests := []struct {
		text string
		want string
	}{
		{"switch off the light", en + "switch off" + end + " the light"},
		{"she switched off", "she " + en + "switched off" + end},
		{"switching off now", en + "switching off" + end + " now"},
		{"he switches off", "he " + en + "switches off" + end},
		{"switch it off", "switch it off"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Highlight(tt.text, defs, Target); got != tt.want {
				t.Errorf("Highlight(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHighlightMultiWordParticle(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "look forward to"}}
	text := "We are looking forward to it."
	want := "We are " + en + "looking forward to" + end + " it."
	if got := Highlight(text, defs, Target); got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightSingleWord(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "Procrastinate"}}

	tests := []struct {
		text string
		want string
	}{
		{"Stop it, Procrastinate!", "Stop it, " + en + "Procrastinate" + end + "!"},
		{"She procrastinated", "She " + en + "procrastinated" + end},
		{"He procrastinates", "He " + en + "procrastinates" + end},
		{"unprocrastinate", "unprocrastinate"},
		{"procrastin", "procrastin"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Highlight(tt.text, defs, Target); got != tt.want {
				t.Errorf("Highlight(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHighlightEmptyDefs(t *testing.T) {
	text := `<b>raw</b> text & more`
	if got := Highlight(text, nil, Target); got != text {
		t.Errorf("Highlight(nil defs) = %q, want unchanged", got)
	}
	if got := Highlight(text, []card.PhrasalVerbDef{}, Source); got != text {
		t.Errorf("Highlight(empty defs) = %q, want unchanged", got)
	}
}

func TestHighlightMalformedDefsMatchNothing(t *testing.T) {
	defs := []card.PhrasalVerbDef{{}, {Source: "  ", Target: "   "}}
	text := "give up 放弃"

	if got := Highlight(text, defs, Target); got != text {
		t.Errorf("Highlight(target) = %q, want unchanged", got)
	}
	if got := Highlight(text, defs, Source); got != text {
		t.Errorf("Highlight(source) = %q, want unchanged", got)
	}
}

func TestHighlightSourcePhraseIsNotTrimmed(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Source: " 放弃"}}

	if got := Highlight("他放弃了", defs, Source); got != "他放弃了" {
		t.Errorf("Highlight() = %q, want unchanged", got)
	}
	if got, want := Highlight("他 放弃了", defs, Source), "他"+zh+" 放弃"+end+"了"; got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightTargetPhraseIsTrimmed(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "  give up "}}

	if got, want := Highlight("She gave up.", defs, Target), "She "+en+"gave up"+end+"."; got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestStripKeepsExistingMarkup(t *testing.T) {
	annotated := "a</span> " + en + "gave up" + end + " b" + end
	if got, want := Strip(annotated, Target), "a</span> gave up b</span>"; got != want {
		t.Errorf("Strip() = %q, want %q", got, want)
	}
}

func TestHighlightLongerPhraseWins(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "up"}, {Target: "pick up"}}

	text := "Please pick up the box and look up."
	want := "Please " + en + "pick up" + end + " the box and look " + en + "up" + end + "."
	got := Highlight(text, defs, Target)
	if got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
	if strings.Contains(got, en+en) || strings.Count(got, en) != 2 {
		t.Errorf("phrase wrapped twice: %q", got)
	}

	// With the object between verb and particle only the short phrase applies
	text = "pick it up"
	want = "pick it " + en + "up" + end
	if got := Highlight(text, defs, Target); got != want {
		t.Errorf("Highlight(%q) = %q, want %q", text, got, want)
	}
}

func TestHighlightOverlappingPhrasesNeverNest(t *testing.T) {
	// "on and" is longer and claims the first "on"; "go on" then has no
	// unmarked "on" right after "go" and must not reach into the marker
	defs := []card.PhrasalVerbDef{{Target: "go on"}, {Target: "on and"}}
	text := "go on and on"
	want := "go " + en + "on and" + end + " on"

	if got := Highlight(text, defs, Target); got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightDoesNotMatchInsideMarkers(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "give up"}, {Target: "class"}}
	text := "The class gave up."
	want := "The " + en + "class" + end + " " + en + "gave up" + end + "."

	if got := Highlight(text, defs, Target); got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		defs []card.PhrasalVerbDef
		lang Language
	}{
		{"I need to give up smoking, but giving up is hard.", giveUp, Target},
		{"他决定放弃吸烟。放弃很难。", giveUp, Source},
		{"Please pick up the box and look up.", []card.PhrasalVerbDef{{Target: "up"}, {Target: "pick up"}}, Target},
		{"nothing to see here", giveUp, Target},
		{"<b>bold</b></span> and she gave up", giveUp, Target},
		{"</span>他放弃了", giveUp, Source},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			once := Highlight(tt.text, tt.defs, tt.lang)
			stripped := Strip(once, tt.lang)
			if stripped != tt.text {
				t.Fatalf("Strip(Highlight()) = %q, want original %q", stripped, tt.text)
			}
			if again := Highlight(stripped, tt.defs, tt.lang); again != once {
				t.Errorf("second pass = %q, want %q", again, once)
			}
		})
	}
}

func TestHighlightDoesNotMutateDefs(t *testing.T) {
	defs := []card.PhrasalVerbDef{{Target: "up"}, {Target: "pick up"}}
	before := append([]card.PhrasalVerbDef(nil), defs...)

	Highlight("pick up", defs, Target)

	if diff := cmp.Diff(before, defs); diff != "" {
		t.Errorf("defs reordered (-want +got):\n%s", diff)
	}
}

func TestPlanOrder(t *testing.T) {
	defs := []card.PhrasalVerbDef{
		{Source: "出", Target: "go out"},
		{Source: "放弃", Target: "give up"},
		{Source: "拿起来", Target: "pick up"},
		{Source: "", Target: "look forward to"},
	}

	var target []string
	for _, p := range Plan(defs, Target) {
		target = append(target, p.Phrase)
	}
	if diff := cmp.Diff([]string{"look forward to", "give up", "pick up", "go out"}, target); diff != "" {
		t.Errorf("target plan mismatch (-want +got):\n%s", diff)
	}

	var source []string
	for _, p := range Plan(defs, Source) {
		source = append(source, p.Phrase)
	}
	if diff := cmp.Diff([]string{"拿起来", "放弃", "出"}, source); diff != "" {
		t.Errorf("source plan mismatch (-want +got):\n%s", diff)
	}
}

func TestSegments(t *testing.T) {
	got := Segments("He gave up & left.", giveUp, Target)
	want := []Segment{
		{Text: "He "},
		{Text: "gave up", Marked: true},
		{Text: " & left."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Segments() mismatch (-want +got):\n%s", diff)
	}

	if Plain(got) != "He gave up & left." {
		t.Errorf("Plain() = %q", Plain(got))
	}
	if html := AnnotateHTML(got, TargetMarker); html != "He "+en+"gave up"+end+" &amp; left." {
		t.Errorf("AnnotateHTML() = %q", html)
	}
	if segs := Segments("", giveUp, Target); len(segs) != 0 {
		t.Error("Segments(\"\") should be empty")
	}
}

func TestVerbForms(t *testing.T) {
	if diff := cmp.Diff([]string{"go", "goes", "went", "gone", "going"}, verbForms("go")); diff != "" {
		t.Errorf("irregular forms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sign", "signs", "signed", "signing", "signes"}, verbForms("sign")); diff != "" {
		t.Errorf("regular forms mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageMarker(t *testing.T) {
	if Source.Marker() != SourceMarker || Target.Marker() != TargetMarker {
		t.Error("Language.Marker() returned the wrong marker")
	}
	if Source.Marker() == Target.Marker() {
		t.Error("source and target markers must differ")
	}
}
