package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/cli"
	"github.com/prateekpranveer/author-s-dict/internal/search"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Store quotations from JSON or YAML files",
		Long: "Each file holds a list of {sentence, author, book} records. " +
			"Records with a missing or non-string field are skipped.",
		Args: cobra.MinimumNArgs(1),
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

			for _, path := range args {
				body, err := cli.LoadBatch(path)
				if err != nil {
					return fmt.Errorf("cli.LoadBatch > %w", err)
				}
				n, err := svc.Ingest(ctx, body)
				if errors.Is(err, search.ErrNotArray) {
					return fmt.Errorf("%s: expected a list of quotations", path)
				}
				if err != nil {
					return fmt.Errorf("svc.Ingest(%s) > %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: Stored %d sentences.\n", path, n)
			}
			return nil
		},
	}
}
