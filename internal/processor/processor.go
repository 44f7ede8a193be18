package processor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/cardstudy/internal"
	"codeberg.org/snonux/cardstudy/internal/anki"
	"codeberg.org/snonux/cardstudy/internal/archive"
	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/cli"
	"codeberg.org/snonux/cardstudy/internal/deck"
	"codeberg.org/snonux/cardstudy/internal/gui"
	"codeberg.org/snonux/cardstudy/internal/listing"
	"codeberg.org/snonux/cardstudy/internal/session"
	"codeberg.org/snonux/cardstudy/internal/tui"
)

// allKinds selects every card for an export
const allKinds = "all"

// Processor runs one mode of the tool over the loaded cards
type Processor struct {
	flags  *cli.Flags
	logger *zap.Logger
	out    io.Writer
	store  *card.Store
	rng    deck.Source
}

// NewProcessor creates a processor with an empty store. Call LoadCards
// before running a mode.
func NewProcessor(flags *cli.Flags, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		flags:  flags,
		logger: logger,
		out:    os.Stdout,
		store:  card.NewStore(nil),
		rng:    deck.NewSource(flags.Seed),
	}
}

// Store returns the loaded cards
func (p *Processor) Store() *card.Store {
	return p.store
}

// LoadCards reads the card source. arg is the positional path argument and
// takes precedence over the --cards flag. A file that cannot be parsed
// leaves the store empty and is only logged.
func (p *Processor) LoadCards(arg string) error {
	path := arg
	if path == "" {
		path = p.flags.CardsFile
	}
	path = card.Resolve(path, card.DefaultCandidates)

	loader := card.NewLoader(p.logger)
	if p.flags.TextKind != "" {
		kind, err := card.ParseKind(p.flags.TextKind)
		if err != nil {
			return fmt.Errorf("invalid --txt-kind: %w", err)
		}
		loader.TextKind = kind
	}

	store, err := loader.Load(path)
	var decodeErr *card.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		p.logger.Warn("Cannot decode card file, starting with an empty deck",
			zap.String("path", decodeErr.Path), zap.Error(decodeErr.Err))
		store = card.NewStore(nil)
	case err != nil:
		return err
	}

	p.store = store
	return nil
}

// category returns the study category chosen with --kind
func (p *Processor) category() (card.Kind, error) {
	kind, err := card.ParseKind(p.flags.Category)
	if err != nil {
		return "", fmt.Errorf("invalid --kind: %w", err)
	}
	return kind, nil
}

func (p *Processor) controller() *session.Controller {
	return session.NewController(p.store, p.rng)
}

// RunListMode prints a per-category summary and the shuffled working subset
// of the chosen category
func (p *Processor) RunListMode() error {
	kind, err := p.category()
	if err != nil {
		return err
	}

	if err := listing.Summary(p.out, p.store); err != nil {
		return err
	}
	fmt.Fprintln(p.out)

	cards := deck.Select(p.store.Cards(), kind, p.rng)
	p.logger.Debug("Listing cards", zap.String("category", string(kind)), zap.Int("cards", len(cards)))
	return listing.NewPrinter(p.out).PrintCards(cards)
}

// RunTUIMode starts the terminal UI
func (p *Processor) RunTUIMode() error {
	kind, err := p.category()
	if err != nil {
		return err
	}
	p.logger.Debug("Starting terminal UI", zap.String("category", string(kind)))
	return tui.Run(p.controller(), kind)
}

// RunGUIMode launches the desktop window
func (p *Processor) RunGUIMode() error {
	kind, err := p.category()
	if err != nil {
		return err
	}

	guiConfig := gui.DefaultConfig()
	guiConfig.Category = kind
	guiConfig.Export = func(kind card.Kind) (string, error) {
		return p.export(p.cardsOf(kind))
	}

	p.logger.Debug("Starting GUI", zap.String("category", string(kind)))
	app := gui.New(p.controller(), guiConfig, p.logger)
	app.Run()

	return nil
}

// GenerateAnkiFile exports the chosen category, or every card with
// --kind all, and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	if strings.EqualFold(strings.TrimSpace(p.flags.Category), allKinds) {
		return p.export(p.store.Cards())
	}

	kind, err := p.category()
	if err != nil {
		return "", err
	}
	return p.export(p.cardsOf(kind))
}

// cardsOf returns the cards of kind in load order
func (p *Processor) cardsOf(kind card.Kind) []card.Card {
	var cards []card.Card
	for _, c := range p.store.Cards() {
		if c.Kind == kind {
			cards = append(cards, c)
		}
	}
	return cards
}

// exportPath returns the export file for the configured deck name
func (p *Processor) exportPath() string {
	ext := ".apkg"
	if p.flags.AnkiCSV {
		ext = ".csv"
	}
	return filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(p.flags.DeckName)+ext)
}

func (p *Processor) export(cards []card.Card) (string, error) {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := p.exportPath()
	archived, err := archive.ArchiveFile(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to archive previous export: %w", err)
	}
	if archived != "" {
		p.logger.Info("Archived previous export", zap.String("path", archived))
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})
	gen.AddCards(cards)

	if p.flags.AnkiCSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	stats := gen.Stats()
	p.logger.Info("Exported cards",
		zap.String("path", outputPath),
		zap.Int("cards", len(gen.Notes())),
		zap.Int(string(card.KindSentence), stats[card.KindSentence]),
		zap.Int(string(card.KindVocabulary), stats[card.KindVocabulary]),
		zap.Int(string(card.KindPhrasalVerb), stats[card.KindPhrasalVerb]))
	fmt.Fprintf(p.out, "  Generated %d cards\n", len(gen.Notes()))

	return outputPath, nil
}
