package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/cli"
)

func newAuthorsCommand() *cobra.Command {
	format := OutputFormatText
	command := &cobra.Command{
		Use:   "authors",
		Short: "List authors with the number of stored quotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, closeDB, err := openService(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			authors, err := svc.Authors(ctx)
			if err != nil {
				return fmt.Errorf("svc.Authors > %w", err)
			}
			if format == OutputFormatJSON {
				return writeJSON(cmd.OutOrStdout(), authors)
			}
			cli.NewPrinter(cmd.OutOrStdout()).PrintAuthors(authors)
			return nil
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	return command
}
