package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/config"
	"github.com/prateekpranveer/author-s-dict/internal/logging"
)

var (
	configFile string
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "authordict",
		Short:         "Search literary quotations and look words up in the dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (defaults to $"+config.ConfigFileEnv+")")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newImportCommand(),
		newSearchCommand(),
		newDictionaryCommand(),
		newAuthorsCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	level := "warn"
	if debugMode {
		level = "debug"
	}
	logging.New(config.LogConfig{Level: level, Format: "text"})
}
