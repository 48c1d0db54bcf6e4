package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

// RenderMarkdown renders the visible part of a search result as a Markdown document.
// Occurrences of the searched word are emphasized.
func RenderMarkdown(result *search.Result, view View) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", markdownEscaper.Replace(view.Word))

	if result.Dictionary.OK() {
		entry := result.Dictionary.Entry
		if entry.Phonetic != "" {
			fmt.Fprintf(&buf, "*%s*\n\n", markdownEscaper.Replace(entry.Phonetic))
		}
		for _, meaning := range entry.Meanings {
			fmt.Fprintf(&buf, "## %s\n\n", markdownEscaper.Replace(meaning.PartOfSpeech))
			for i, def := range meaning.Definitions {
				fmt.Fprintf(&buf, "%d. %s\n", i+1, markdownEscaper.Replace(def.Definition))
			}
			buf.WriteString("\n")
		}
		if entry.Origin != "" {
			fmt.Fprintf(&buf, "Origin: %s\n\n", markdownEscaper.Replace(entry.Origin))
		}
	} else {
		fmt.Fprintf(&buf, "%s\n\n", markdownEscaper.Replace(result.Dictionary.Err))
	}

	buf.WriteString("## Sentences\n\n")
	visible := view.Matches(result.Matches)
	if len(visible) == 0 {
		buf.WriteString("No sentences found.\n")
		return buf.Bytes()
	}
	for _, record := range visible {
		buf.WriteString("- ")
		for _, segment := range sentence.Highlight(record.Text, view.Word) {
			text := markdownEscaper.Replace(segment.Text)
			if segment.Match {
				fmt.Fprintf(&buf, "**%s**", text)
			} else {
				buf.WriteString(text)
			}
		}
		fmt.Fprintf(&buf, " (%s, *%s*)\n", markdownEscaper.Replace(record.Author), markdownEscaper.Replace(record.Book))
	}
	return buf.Bytes()
}
