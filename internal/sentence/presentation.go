package sentence

import (
	"strings"
	"unicode"
)

// PageSize is how many matches a client shows before asking for more.
const PageSize = 10

// MinQueryLength is the shortest word clients submit for a search.
// The server accepts anything non-empty.
const MinQueryLength = 2

// UniqueAuthors returns the distinct non-empty authors of records in first-seen order.
func UniqueAuthors(records []Record) []string {
	seen := make(map[string]bool)
	var authors []string
	for _, record := range records {
		if record.Author == "" || seen[record.Author] {
			continue
		}
		seen[record.Author] = true
		authors = append(authors, record.Author)
	}
	return authors
}

// FilterByAuthor keeps the records of author. An empty author keeps everything.
func FilterByAuthor(records []Record, author string) []Record {
	if author == "" {
		return records
	}
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if record.Author == author {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Visible returns the first pages*PageSize records, the way a "load more" list grows.
func Visible(records []Record, pages int) []Record {
	if pages < 1 {
		pages = 1
	}
	return records[:min(len(records), pages*PageSize)]
}

// Segment is a piece of text, flagged when it is an occurrence of the searched word.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text around every case-insensitive occurrence of word.
func Highlight(text, word string) []Segment {
	if word == "" {
		return []Segment{{Text: text}}
	}

	lowerText, offsets := foldWithOffsets(text)
	lowerWord, _ := foldWithOffsets(word)

	var segments []Segment
	pos := 0
	for pos < len(lowerText) {
		idx := strings.Index(lowerText[pos:], lowerWord)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(lowerWord)
		if start > pos {
			segments = append(segments, Segment{Text: text[offsets[pos]:offsets[start]]})
		}
		segments = append(segments, Segment{Text: text[offsets[start]:offsets[end]], Match: true})
		pos = end
	}
	if offsets[pos] < len(text) {
		segments = append(segments, Segment{Text: text[offsets[pos]:]})
	}
	return segments
}

// foldWithOffsets lowercases s rune by rune. offsets maps the byte index of
// every rune boundary in the folded string to the matching index in s.
// Lowercasing can change a rune's encoded length, so the two indexes differ.
func foldWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		n, _ := b.WriteRune(unicode.ToLower(r))
		for range n {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}
