// Package search answers word queries with matching quotations and a
// dictionary entry, and ingests batches of quotations.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

//go:generate mockgen -source=service.go -destination=../mocks/search/mock_service.go -package=mock_search

var (
	ErrMissingWord = errors.New("missing word")
	ErrNotArray    = errors.New("expected an array")
)

// Dictionary looks up a word. A failed lookup is reported inside the result.
type Dictionary interface {
	Lookup(ctx context.Context, word string) dictionary.Result
}

// Result is the merged answer to a search.
type Result struct {
	Matches    []sentence.Record `json:"matches"`
	Dictionary dictionary.Result `json:"dictionary"`
}

type Service struct {
	sentences  sentence.Repository
	dictionary Dictionary
	log        *slog.Logger
}

func NewService(sentences sentence.Repository, dict Dictionary, logger *slog.Logger) *Service {
	return &Service{
		sentences:  sentences,
		dictionary: dict,
		log:        logger.With("component", "search"),
	}
}

// Search scans the store and looks word up in the dictionary concurrently.
// Only a store failure fails the search.
func (s *Service) Search(ctx context.Context, word string) (*Result, error) {
	if word == "" {
		return nil, ErrMissingWord
	}

	var result Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := s.sentences.Search(gctx, word)
		if err != nil {
			return fmt.Errorf("sentences.Search() > %w", err)
		}
		result.Matches = matches
		return nil
	})
	g.Go(func() error {
		result.Dictionary = s.dictionary.Lookup(gctx, word)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if result.Matches == nil {
		result.Matches = []sentence.Record{}
	}
	s.log.DebugContext(ctx, "search finished",
		slog.String("word", word),
		slog.Int("matches", len(result.Matches)),
		slog.Bool("dictionary", result.Dictionary.OK()),
	)
	return &result, nil
}

// Ingest stores the well-formed elements of a JSON array body.
// It returns the number of submitted elements.
func (s *Service) Ingest(ctx context.Context, body []byte) (int, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrNotArray
	}
	var candidates []json.RawMessage
	if err := json.Unmarshal(trimmed, &candidates); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	n, err := s.sentences.InsertMany(ctx, candidates)
	if err != nil {
		return 0, fmt.Errorf("sentences.InsertMany() > %w", err)
	}
	s.log.InfoContext(ctx, "sentences ingested", slog.Int("submitted", len(candidates)))
	return n, nil
}

// Authors lists every author with the number of their quotations.
func (s *Service) Authors(ctx context.Context) ([]sentence.AuthorCount, error) {
	authors, err := s.sentences.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("sentences.Authors() > %w", err)
	}
	return authors, nil
}
