package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	CardsFile string
	Verbose   bool

	// Study flags
	Category string
	TextKind string
	Seed     int64
	TUIMode  bool
	ListMode bool

	// Export flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	OutputDir    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Category: "sentence",
		TextKind: "vocabulary",
		DeckName: "Speaking Flashcards",
	}
}

// ExportMode reports whether an Anki export was requested
func (f *Flags) ExportMode() bool {
	return f.GenerateAnki || f.AnkiCSV
}
