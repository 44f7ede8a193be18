package processor

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/cli"
	"codeberg.org/snonux/cardstudy/internal/render"
	"codeberg.org/snonux/cardstudy/internal/testutil"
)

// newTestProcessor returns a processor writing to a buffer with a
// deterministic shuffle and the output directory in a temp dir
func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer) {
	t.Helper()

	flags := cli.NewFlags()
	flags.OutputDir = filepath.Join(t.TempDir(), "export")
	p := NewProcessor(flags, nil)

	var buf bytes.Buffer
	p.out = &buf
	p.rng = testutil.LastSource{}
	return p, &buf
}

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func loadSample(t *testing.T, p *Processor) {
	t.Helper()
	path := testutil.CreateDeckFile(t, "data.json", testutil.SampleDeckJSON)
	if err := p.LoadCards(path); err != nil {
		t.Fatalf("LoadCards() error = %v", err)
	}
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.logger == nil || p.rng == nil {
		t.Error("logger and rng must be initialized")
	}
	if p.Store().Len() != 0 {
		t.Errorf("Store().Len() = %d, want 0 before loading", p.Store().Len())
	}
}

func TestLoadCards(t *testing.T) {
	p, _ := newTestProcessor(t)
	loadSample(t, p)

	got := map[card.Kind]int{}
	for _, kind := range card.Kinds {
		got[kind] = p.Store().Count(kind)
	}
	want := map[card.Kind]int{
		card.KindSentence:    2,
		card.KindVocabulary:  3,
		card.KindPhrasalVerb: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("card counts mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCardsFromFlag(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.CardsFile = testutil.CreateDeckFile(t, "deck.json", testutil.SampleDeckJSON)

	if err := p.LoadCards(""); err != nil {
		t.Fatalf("LoadCards() error = %v", err)
	}
	if p.Store().Len() != 7 {
		t.Errorf("Store().Len() = %d, want 7", p.Store().Len())
	}
}

func TestLoadCardsTextKind(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.TextKind = "sentences"
	path := testutil.CreateDeckFile(t, "deck.txt", "你好 = hello\n谢谢 = thank you\n")

	if err := p.LoadCards(path); err != nil {
		t.Fatalf("LoadCards() error = %v", err)
	}
	if got := p.Store().Count(card.KindSentence); got != 2 {
		t.Errorf("Count(sentence) = %d, want 2", got)
	}
}

func TestLoadCardsInvalidTextKind(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.TextKind = "poems"

	if err := p.LoadCards(""); err == nil {
		t.Error("Expected error for unknown --txt-kind")
	}
}

func TestLoadCardsDecodeErrorIsEmpty(t *testing.T) {
	p, _ := newTestProcessor(t)
	loadSample(t, p)

	path := testutil.CreateDeckFile(t, "broken.json", `{"flashcards": [`)
	if err := p.LoadCards(path); err != nil {
		t.Fatalf("LoadCards() error = %v, want nil for undecodable file", err)
	}
	if p.Store().Len() != 0 {
		t.Errorf("Store().Len() = %d, want 0", p.Store().Len())
	}
}

func TestLoadCardsReadError(t *testing.T) {
	p, _ := newTestProcessor(t)

	if err := p.LoadCards(t.TempDir()); err == nil {
		t.Error("Expected error when the card path is a directory")
	}
}

func TestRunListMode(t *testing.T) {
	disableColor(t)
	p, buf := newTestProcessor(t)
	loadSample(t, p)
	p.flags.Category = "vocabulary"

	if err := p.RunListMode(); err != nil {
		t.Fatalf("RunListMode() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Sentences:     2\n",
		"Vocabulary:    3\n",
		"Phrasal Verbs: 2\n",
		"[1/3]", "[3/3]",
		"苹果", "apple", "weather",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "我每天早上跑步") {
		t.Errorf("output contains a sentence card:\n%s", out)
	}
}

func TestRunListModeEmpty(t *testing.T) {
	disableColor(t)
	p, buf := newTestProcessor(t)

	if err := p.RunListMode(); err != nil {
		t.Fatalf("RunListMode() error = %v", err)
	}
	if !strings.Contains(buf.String(), render.EmptyMessage) {
		t.Errorf("output missing %q:\n%s", render.EmptyMessage, buf.String())
	}
}

func TestRunModesRejectUnknownCategory(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.Category = "idioms"

	if err := p.RunListMode(); err == nil {
		t.Error("RunListMode: expected error for unknown category")
	}
	if err := p.RunTUIMode(); err == nil {
		t.Error("RunTUIMode: expected error for unknown category")
	}
	if err := p.RunGUIMode(); err == nil {
		t.Error("RunGUIMode: expected error for unknown category")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	return records
}

func TestGenerateAnkiFileCSV(t *testing.T) {
	tests := []struct {
		name     string
		category string
		rows     int
	}{
		{"phrasal verbs", "phrasal_verbs", 2},
		{"vocabulary", "vocab", 3},
		{"all cards", "all", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestProcessor(t)
			loadSample(t, p)
			p.flags.AnkiCSV = true
			p.flags.Category = tt.category

			path, err := p.GenerateAnkiFile()
			if err != nil {
				t.Fatalf("GenerateAnkiFile() error = %v", err)
			}
			if want := filepath.Join(p.flags.OutputDir, "Speaking_Flashcards.csv"); path != want {
				t.Errorf("path = %q, want %q", path, want)
			}

			records := readCSV(t, path)
			if len(records) != tt.rows+1 {
				t.Errorf("got %d records, want %d plus header", len(records), tt.rows)
			}
			if !strings.Contains(buf.String(), "Generated") {
				t.Errorf("missing summary line: %q", buf.String())
			}
		})
	}
}

func TestGenerateAnkiFileHighlightsPhrasalVerbs(t *testing.T) {
	p, _ := newTestProcessor(t)
	loadSample(t, p)
	p.flags.AnkiCSV = true
	p.flags.Category = "phrasal_verb"

	path, err := p.GenerateAnkiFile()
	if err != nil {
		t.Fatalf("GenerateAnkiFile() error = %v", err)
	}

	// Export keeps load order
	records := readCSV(t, path)
	first := records[1]
	if !strings.Contains(first[0], `<span class="phrasal-verb">放弃</span>`) {
		t.Errorf("Chinese field not highlighted: %q", first[0])
	}
	if !strings.Contains(first[1], `<span class="phrasal-verb-en">give up</span>`) {
		t.Errorf("English field not highlighted: %q", first[1])
	}
	if first[2] != "give" {
		t.Errorf("Verb field = %q, want %q", first[2], "give")
	}
}

func TestGenerateAnkiFileAPKG(t *testing.T) {
	p, _ := newTestProcessor(t)
	loadSample(t, p)
	p.flags.Category = "sentence"
	p.flags.DeckName = "我的 卡片"

	path, err := p.GenerateAnkiFile()
	if err != nil {
		t.Fatalf("GenerateAnkiFile() error = %v", err)
	}
	if filepath.Base(path) != "我的_卡片.apkg" {
		t.Errorf("file name = %q, want %q", filepath.Base(path), "我的_卡片.apkg")
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open APKG: %v", err)
	}
	defer r.Close()

	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
	}
	if !names["collection.anki2"] || !names["media"] {
		t.Errorf("APKG entries = %v, want collection.anki2 and media", names)
	}
}

func TestGenerateAnkiFileArchivesPrevious(t *testing.T) {
	p, _ := newTestProcessor(t)
	loadSample(t, p)
	p.flags.AnkiCSV = true

	path, err := p.GenerateAnkiFile()
	if err != nil {
		t.Fatalf("first GenerateAnkiFile() error = %v", err)
	}
	if _, err := p.GenerateAnkiFile(); err != nil {
		t.Fatalf("second GenerateAnkiFile() error = %v", err)
	}

	testutil.AssertFileExists(t, path)
	entries, err := os.ReadDir(filepath.Join(p.flags.OutputDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("archive holds %d files, want 1", len(entries))
	}
}

func TestGenerateAnkiFileUnknownCategory(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.Category = "idioms"

	if _, err := p.GenerateAnkiFile(); err == nil {
		t.Error("Expected error for unknown category")
	}
	testutil.AssertFileNotExists(t, p.flags.OutputDir)
}
