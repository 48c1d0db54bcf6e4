// Package dictionary looks words up in the Free Dictionary API and
// normalizes the answer into a fixed shape.
package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Error messages carried by a failed Result.
const (
	ErrWordNotFound = "Word not found"
	ErrFetchFailed  = "Failed to fetch dictionary info"
)

// Entry is a normalized dictionary entry for a single word.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Origin    string     `json:"origin"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// Result is either an Entry or an error message.
// It is encoded as the entry itself, or as {"error": "..."}.
type Result struct {
	Entry *Entry
	Err   string
}

// Found returns a successful Result.
func Found(entry Entry) Result {
	return Result{Entry: &entry}
}

// Failed returns a Result carrying message.
func Failed(message string) Result {
	return Result{Err: message}
}

// OK reports whether the lookup produced an entry.
func (r Result) OK() bool {
	return r.Entry != nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Entry != nil {
		return json.Marshal(r.Entry)
	}
	return json.Marshal(errorBody{Error: r.Err})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("json.Unmarshal(dictionary result) > %w", err)
	}

	if raw, ok := fields["error"]; ok {
		var body errorBody
		if err := json.Unmarshal(data, &body); err != nil {
			return fmt.Errorf("json.Unmarshal(error) > %w", err)
		}
		if !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			*r = Failed(body.Error)
			return nil
		}
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("json.Unmarshal(entry) > %w", err)
	}
	*r = Found(entry)
	return nil
}
