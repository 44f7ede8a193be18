package anki

import (
	"encoding/csv"
	"fmt"
	"html"
	"os"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/render"
)

// Note is one exported card with its fields ready for Anki. Chinese and
// English are HTML; phrasal verbs are wrapped in the highlight spans.
type Note struct {
	Chinese   string
	English   string
	VerbGroup string
	Kind      card.Kind
}

// NoteFromCard renders c into note fields
func NoteFromCard(c card.Card) Note {
	v := render.Render(&c, true, 0, 1)
	return Note{
		Chinese:   v.Primary.HTML(),
		English:   v.Secondary.HTML(),
		VerbGroup: html.EscapeString(c.VerbGroup),
		Kind:      c.Kind,
	}
}

// Tags returns the Anki tag list of the note
func (n Note) Tags() string {
	return " cardstudy " + string(n.Kind) + " "
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	notes   []Note
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		notes:   make([]Note, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(c card.Card) {
	g.notes = append(g.notes, NoteFromCard(c))
}

// AddCards adds every card of cards in order
func (g *Generator) AddCards(cards []card.Card) {
	for _, c := range cards {
		g.AddCard(c)
	}
}

// Notes returns the notes added so far
func (g *Generator) Notes() []Note {
	return g.notes
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	// Create output file
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	// Create CSV writer
	writer := csv.NewWriter(file)

	// Write headers if requested
	if g.options.IncludeHeaders {
		headers := []string{"Chinese", "English", "Verb", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	// Write notes
	for _, n := range g.notes {
		record := []string{n.Chinese, n.English, n.VerbGroup, string(n.Kind)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateAPKG creates a .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, n := range g.notes {
		apkgGen.AddNote(n)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns the number of notes per card kind
func (g *Generator) Stats() map[card.Kind]int {
	stats := make(map[card.Kind]int)
	for _, n := range g.notes {
		stats[n.Kind]++
	}
	return stats
}
