package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/cli"
	"github.com/prateekpranveer/author-s-dict/internal/pdf"
)

func newSearchCommand() *cobra.Command {
	var (
		author  string
		page    int
		pdfPath string
	)
	format := OutputFormatText

	command := &cobra.Command{
		Use:   "search <word>",
		Short: "Find quotations containing a word and look the word up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			if err := cli.ValidateQuery(word); err != nil {
				return err
			}

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

			result, err := svc.Search(ctx, word)
			if err != nil {
				return fmt.Errorf("svc.Search > %w", err)
			}

			view := cli.View{Word: word, Author: author, Pages: page}
			out := cmd.OutOrStdout()
			switch format {
			case OutputFormatJSON:
				result.Matches = view.Matches(result.Matches)
				if err := writeJSON(out, result); err != nil {
					return err
				}
			default:
				cli.NewPrinter(out).PrintSearch(result, view)
			}

			if pdfPath != "" {
				written, err := pdf.WriteMarkdown(cli.RenderMarkdown(result, view), pdfPath)
				if err != nil {
					return fmt.Errorf("pdf.WriteMarkdown > %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "PDF written to %s\n", written)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&author, "author", "", "show only sentences by this author")
	flags.IntVar(&page, "page", 1, "number of pages of 10 sentences to show")
	flags.StringVar(&pdfPath, "pdf", "", "also write the result to this PDF file")
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	return command
}
