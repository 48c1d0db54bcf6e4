package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prateekpranveer/author-s-dict/internal/config"
	"github.com/prateekpranveer/author-s-dict/internal/database"
	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openService connects to the configured store and returns the search service
// with a function that closes the store.
func openService(ctx context.Context, cfg *config.Config) (*search.Service, func() error, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("database.EnsureSchema() > %w", err)
	}

	logger := slog.Default()
	svc := search.NewService(
		sentence.NewDBRepository(db),
		dictionary.NewClient(cfg.Dictionary, logger),
		logger,
	)
	return svc, db.Close, nil
}
