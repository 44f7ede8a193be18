package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/cardstudy/internal/cli"
	"codeberg.org/snonux/cardstudy/internal/logging"
	"codeberg.org/snonux/cardstudy/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	logger, err := logging.New(flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var cardsArg string
	if len(args) > 0 {
		cardsArg = args[0]
	}

	proc := processor.NewProcessor(flags, logger)
	if err := proc.LoadCards(cardsArg); err != nil {
		return err
	}

	switch {
	case flags.ExportMode():
		logger.Debug("Mode selected", zap.String("mode", "export"))
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			return err
		}
		fmt.Printf("Anki package created: %s\n", outputPath)
		return nil
	case flags.ListMode:
		logger.Debug("Mode selected", zap.String("mode", "list"))
		return proc.RunListMode()
	case flags.TUIMode:
		logger.Debug("Mode selected", zap.String("mode", "tui"))
		return proc.RunTUIMode()
	default:
		logger.Debug("Mode selected", zap.String("mode", "gui"))
		return proc.RunGUIMode()
	}
}
