// Package cli renders search results, dictionary entries and author lists for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

// View selects which matches of a search are shown.
type View struct {
	Word   string
	Author string
	Pages  int
}

// Matches applies the author filter and the page count to records.
func (v View) Matches(records []sentence.Record) []sentence.Record {
	return sentence.Visible(sentence.FilterByAuthor(records, v.Author), v.Pages)
}

// ValidateQuery rejects words shorter than sentence.MinQueryLength.
func ValidateQuery(word string) error {
	if utf8.RuneCountInString(strings.TrimSpace(word)) < sentence.MinQueryLength {
		return fmt.Errorf("enter at least %d characters to search", sentence.MinQueryLength)
	}
	return nil
}

type Printer struct {
	w         io.Writer
	bold      *color.Color
	italic    *color.Color
	faint     *color.Color
	highlight *color.Color
	errColor  *color.Color
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:         w,
		bold:      color.New(color.Bold),
		italic:    color.New(color.Italic),
		faint:     color.New(color.Faint),
		highlight: color.New(color.FgYellow, color.Bold),
		errColor:  color.New(color.FgRed),
	}
}

// PrintSearch prints the dictionary panel followed by the visible matches.
func (p *Printer) PrintSearch(result *search.Result, view View) {
	p.PrintDictionary(result.Dictionary)
	fmt.Fprintln(p.w)

	filtered := sentence.FilterByAuthor(result.Matches, view.Author)
	visible := view.Matches(result.Matches)

	if authors := sentence.UniqueAuthors(result.Matches); len(authors) > 0 {
		p.faint.Fprintf(p.w, "Authors: %s\n", strings.Join(authors, ", "))
	}
	if len(filtered) == 0 {
		fmt.Fprintf(p.w, "No sentences contain %q.\n", view.Word)
		return
	}

	p.bold.Fprintf(p.w, "Sentences (%d of %d)\n", len(visible), len(filtered))
	for i, record := range visible {
		fmt.Fprintf(p.w, "%d. ", i+1)
		for _, segment := range sentence.Highlight(record.Text, view.Word) {
			if segment.Match {
				p.highlight.Fprint(p.w, segment.Text)
			} else {
				fmt.Fprint(p.w, segment.Text)
			}
		}
		fmt.Fprintln(p.w)
		p.italic.Fprintf(p.w, "   %s, %s\n", record.Author, record.Book)
	}
	if len(visible) < len(filtered) {
		p.faint.Fprintf(p.w, "%d more; use --page %d to see them\n", len(filtered)-len(visible), nextPage(view.Pages))
	}
}

func nextPage(pages int) int {
	if pages < 1 {
		return 2
	}
	return pages + 1
}

// PrintDictionary prints a dictionary entry, or its error message.
func (p *Printer) PrintDictionary(result dictionary.Result) {
	if !result.OK() {
		p.errColor.Fprintln(p.w, result.Err)
		return
	}

	entry := result.Entry
	p.bold.Fprint(p.w, entry.Word)
	if entry.Phonetic != "" {
		fmt.Fprintf(p.w, " %s", entry.Phonetic)
	}
	fmt.Fprintln(p.w)
	for _, ph := range entry.Phonetics {
		if ph.Audio != "" {
			p.faint.Fprintf(p.w, "  audio: %s\n", ph.Audio)
		}
	}
	for _, meaning := range entry.Meanings {
		p.italic.Fprintf(p.w, "%s\n", meaning.PartOfSpeech)
		for i, def := range meaning.Definitions {
			fmt.Fprintf(p.w, "  %d. %s\n", i+1, def.Definition)
			if def.Example != "" {
				p.faint.Fprintf(p.w, "     %q\n", def.Example)
			}
			if len(def.Synonyms) > 0 {
				fmt.Fprintf(p.w, "     synonyms: %s\n", strings.Join(def.Synonyms, ", "))
			}
			if len(def.Antonyms) > 0 {
				fmt.Fprintf(p.w, "     antonyms: %s\n", strings.Join(def.Antonyms, ", "))
			}
		}
	}
	if entry.Origin != "" {
		fmt.Fprintf(p.w, "Origin: %s\n", entry.Origin)
	}
}

// PrintAuthors prints one author per line with the number of their sentences.
func (p *Printer) PrintAuthors(authors []sentence.AuthorCount) {
	if len(authors) == 0 {
		fmt.Fprintln(p.w, "No sentences stored yet.")
		return
	}
	for _, author := range authors {
		fmt.Fprintf(p.w, "%-40s %d\n", author.Author, author.Count)
	}
}
