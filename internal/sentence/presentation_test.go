package sentence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueAuthors(t *testing.T) {
	records := []Record{
		{Text: "a", Author: "Shakespeare"},
		{Text: "b", Author: "Austen"},
		{Text: "c", Author: "Shakespeare"},
		{Text: "d", Author: ""},
	}

	assert.Equal(t, []string{"Shakespeare", "Austen"}, UniqueAuthors(records))
	assert.Nil(t, UniqueAuthors(nil))
}

func TestFilterByAuthor(t *testing.T) {
	records := []Record{
		{Text: "a", Author: "Shakespeare"},
		{Text: "b", Author: "Austen"},
		{Text: "c", Author: "Shakespeare"},
	}

	tests := []struct {
		name   string
		author string
		want   []Record
	}{
		{
			name:   "no filter",
			author: "",
			want:   records,
		},
		{
			name:   "one author",
			author: "Shakespeare",
			want:   []Record{records[0], records[2]},
		},
		{
			name:   "unknown author",
			author: "Tolstoy",
			want:   []Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByAuthor(records, tt.author))
		})
	}
}

func TestVisible(t *testing.T) {
	records := make([]Record, 25)
	for i := range records {
		records[i] = Record{Text: fmt.Sprintf("line %d", i)}
	}

	tests := []struct {
		name    string
		pages   int
		wantLen int
	}{
		{name: "first page", pages: 1, wantLen: 10},
		{name: "second page", pages: 2, wantLen: 20},
		{name: "past the end", pages: 5, wantLen: 25},
		{name: "zero pages shows the first", pages: 0, wantLen: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(records, tt.pages)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, "line 0", got[0].Text)
		})
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want []Segment
	}{
		{
			name: "case-insensitive occurrences",
			text: "Love is love",
			word: "LOVE",
			want: []Segment{
				{Text: "Love", Match: true},
				{Text: " is "},
				{Text: "love", Match: true},
			},
		},
		{
			name: "inside a longer word",
			text: "Beloved",
			word: "love",
			want: []Segment{
				{Text: "Be"},
				{Text: "love", Match: true},
				{Text: "d"},
			},
		},
		{
			name: "no occurrence",
			text: "To be or not to be",
			word: "love",
			want: []Segment{{Text: "To be or not to be"}},
		},
		{
			name: "folding changes byte lengths in both directions",
			text: "\u023a\u023a\u212a",
			word: "k",
			want: []Segment{
				{Text: "\u023a\u023a"},
				{Text: "\u212a", Match: true},
			},
		},
		{
			name: "folding grows the text before the occurrence",
			text: "\u023abc ABC",
			word: "abc",
			want: []Segment{
				{Text: "\u023abc "},
				{Text: "ABC", Match: true},
			},
		},
		{
			name: "non-ASCII word",
			text: "L'\u00c9ducation sentimentale",
			word: "\u00e9ducation",
			want: []Segment{
				{Text: "L'"},
				{Text: "\u00c9ducation", Match: true},
				{Text: " sentimentale"},
			},
		},
		{
			name: "empty word",
			text: "To be",
			word: "",
			want: []Segment{{Text: "To be"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.word))
		})
	}
}
