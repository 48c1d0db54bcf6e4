package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateekpranveer/author-s-dict/internal/bootstrap"
	"github.com/prateekpranveer/author-s-dict/internal/config"
	"github.com/prateekpranveer/author-s-dict/internal/database"
	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
	"github.com/prateekpranveer/author-s-dict/internal/logging"
	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
	"github.com/prateekpranveer/author-s-dict/internal/server"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	command := &cobra.Command{
		Use:           "authordict-server",
		Short:         "Serve sentence search, dictionary lookups and ingestion over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	command.Flags().StringVar(&configFile, "config", "", "config file path (defaults to $"+config.ConfigFileEnv+")")
	return command
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// run serves the API until ctx is done or the process is signaled, then
// drains in-flight requests and closes the store.
func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("database.EnsureSchema() > %w", err)
	}

	svc := search.NewService(
		sentence.NewDBRepository(db),
		dictionary.NewClient(cfg.Dictionary, logger),
		logger,
	)
	srv := server.New(cfg.Server, server.NewHandler(svc, db, cfg.Server.MaxBodyBytes, logger), logger)

	app := bootstrap.New()
	app.AddShutdownHook(func(context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(context.Context) error {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}
