package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/cardstudy/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cardstudy [cards-file]",
		Short: "Speaking Flashcards study tool",
		Long: `cardstudy shows Chinese/English flashcards (sentences, vocabulary and
phrasal verbs) one at a time. Phrasal verbs are highlighted in both
languages, including inflected English forms such as "gave up".

Examples:
  cardstudy                          # Study data.json in a window (default)
  cardstudy deck.yaml --tui          # Study in the terminal
  cardstudy --list -k phrasal_verb   # Print the shuffled phrasal verb cards
  cardstudy --anki --kind all        # Export every card as an Anki package`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "cardstudy", "export")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.cardstudy.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Study flags
	cmd.Flags().StringVarP(&flags.CardsFile, "cards", "c", "", "Card file (.json, .yaml, .toml, .xlsx or .txt; default data.json or ../data.json)")
	cmd.Flags().StringVarP(&flags.Category, "kind", "k", flags.Category, "Category: sentence, vocabulary, phrasal_verb (all: export only)")
	cmd.Flags().StringVar(&flags.TextKind, "txt-kind", flags.TextKind, "Card type assigned to lines of a .txt card file")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Shuffle seed (0 picks a random seed)")
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Study in the terminal instead of a window")
	cmd.Flags().BoolVar(&flags.ListMode, "list", false, "Print the shuffled cards of the category and exit")

	// Export flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory for exports")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("cards.file", cmd.Flags().Lookup("cards"))
	viper.BindPFlag("cards.txt_kind", cmd.Flags().Lookup("txt-kind"))
	viper.BindPFlag("study.category", cmd.Flags().Lookup("kind"))
	viper.BindPFlag("study.seed", cmd.Flags().Lookup("seed"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig loads .env from the working directory and initializes viper
func InitConfig(cfgFile string) {
	// A missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".cardstudy" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cardstudy")
	}

	// Environment variables
	viper.SetEnvPrefix("CARDSTUDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies config file and environment values into flags that
// were not given on the command line. Bound flags already take precedence
// inside viper.
func ApplyConfig(flags *Flags) {
	flags.CardsFile = viper.GetString("cards.file")
	flags.TextKind = viper.GetString("cards.txt_kind")
	flags.Category = viper.GetString("study.category")
	flags.Seed = viper.GetInt64("study.seed")
	flags.DeckName = viper.GetString("anki.deck_name")
	flags.OutputDir = viper.GetString("output.directory")
	flags.Verbose = viper.GetBool("log.verbose")
}
