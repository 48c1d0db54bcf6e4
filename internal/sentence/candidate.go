package sentence

import (
	"bytes"
	"encoding/json"
)

// ParseCandidate converts one submitted element into a Record.
// The element must be a JSON object whose sentence, author and book members
// are strings; the second result reports whether it was.
func ParseCandidate(raw json.RawMessage) (Record, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Record{}, false
	}

	text, ok := stringField(fields, "sentence")
	if !ok {
		return Record{}, false
	}
	author, ok := stringField(fields, "author")
	if !ok {
		return Record{}, false
	}
	book, ok := stringField(fields, "book")
	if !ok {
		return Record{}, false
	}
	return Record{Text: text, Author: author, Book: book}, true
}

// ParseCandidates keeps the well-formed elements in submission order.
func ParseCandidates(candidates []json.RawMessage) []Record {
	records := make([]Record, 0, len(candidates))
	for _, candidate := range candidates {
		if record, ok := ParseCandidate(candidate); ok {
			records = append(records, record)
		}
	}
	return records
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	value, ok := fields[key]
	if !ok {
		return "", false
	}
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}
