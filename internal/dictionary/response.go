package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// apiEntry is one element of the Free Dictionary API response array.
// Every member is optional.
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Origin    string        `json:"origin"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

var errNoEntry = errors.New("response has no entry")

// parseResponse normalizes the first entry of an API response body.
// It returns errNoEntry when the body is valid JSON but not a non-empty array.
func parseResponse(word string, body []byte) (Entry, error) {
	if !json.Valid(body) {
		return Entry{}, fmt.Errorf("response body is not valid JSON")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return Entry{}, errNoEntry
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal(elements) > %w", err)
	}
	if len(elements) == 0 || bytes.Equal(bytes.TrimSpace(elements[0]), []byte("null")) {
		return Entry{}, errNoEntry
	}

	var first apiEntry
	if err := json.Unmarshal(elements[0], &first); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal(entry) > %w", err)
	}
	return normalize(word, first), nil
}

func normalize(word string, e apiEntry) Entry {
	entry := Entry{
		Word:      e.Word,
		Phonetic:  e.Phonetic,
		Phonetics: make([]Phonetic, 0, len(e.Phonetics)),
		Origin:    e.Origin,
		Meanings:  make([]Meaning, 0, len(e.Meanings)),
	}
	if entry.Word == "" {
		entry.Word = word
	}

	for _, ph := range e.Phonetics {
		entry.Phonetics = append(entry.Phonetics, Phonetic{Text: ph.Text, Audio: ph.Audio})
	}
	for _, m := range e.Meanings {
		meaning := Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]Definition, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, Definition{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   nonNil(d.Synonyms),
				Antonyms:   nonNil(d.Antonyms),
			})
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}
	return entry
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
