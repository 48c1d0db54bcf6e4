package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/cli"
	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary commands",
	}
	flags := rootCommand.PersistentFlags()

	format := OutputFormatText
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))

	rootCommand.AddCommand(&cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up in the Free Dictionary API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := dictionary.NewClient(cfg.Dictionary, slog.Default())
			result := client.Lookup(cmd.Context(), args[0])

			if format == OutputFormatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			cli.NewPrinter(cmd.OutOrStdout()).PrintDictionary(result)
			return nil
		},
	})
	return &rootCommand
}
