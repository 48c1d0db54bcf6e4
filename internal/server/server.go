package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/prateekpranveer/author-s-dict/internal/config"
)

// New builds the HTTP server for handler. It accepts HTTP/1.1 and cleartext HTTP/2.
func New(cfg config.ServerConfig, handler *Handler, logger *slog.Logger) *http.Server {
	h := Chain(
		handler.Routes(),
		Recover(logger),
		RequestID(),
		AccessLog(logger),
		CORS(cfg.CORS.AllowedOrigins),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(h, &http2.Server{}),
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
