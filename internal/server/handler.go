// Package server exposes the search and ingestion operations over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

// Response bodies shared with existing clients.
const (
	msgMissingWord     = "Missing word query parameter"
	msgDatabaseError   = "Database error"
	msgExpectedArray   = "Expected an array."
	msgInsertError     = "Error inserting data."
	msgTooLarge        = "Request entity too large"
	msgUnavailable     = "Database unavailable"
	msgStoredSentences = "Stored %d sentences."
)

// SearchService is the application logic behind the handlers.
type SearchService interface {
	Search(ctx context.Context, word string) (*search.Result, error)
	Ingest(ctx context.Context, body []byte) (int, error)
	Authors(ctx context.Context) ([]sentence.AuthorCount, error)
}

// Pinger checks that the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the HTTP API.
type Handler struct {
	service      SearchService
	db           Pinger
	maxBodyBytes int64
	log          *slog.Logger
}

// NewHandler creates a new Handler. Request bodies larger than maxBodyBytes are rejected.
func NewHandler(service SearchService, db Pinger, maxBodyBytes int64, logger *slog.Logger) *Handler {
	return &Handler{
		service:      service,
		db:           db,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("component", "http"),
	}
}

// Routes returns the API routes.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", h.handleSearch)
	mux.HandleFunc("POST /data", h.handleIngest)
	mux.HandleFunc("GET /authors", h.handleAuthors)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	return mux
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")

	result, err := h.service.Search(r.Context(), word)
	if errors.Is(err, search.ErrMissingWord) {
		writeText(w, http.StatusBadRequest, msgMissingWord)
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "search failed", slog.String("word", word), slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeText(w, http.StatusBadRequest, msgExpectedArray)
		return
	}
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeText(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		writeText(w, http.StatusBadRequest, msgExpectedArray)
		return
	}

	n, err := h.service.Ingest(r.Context(), body)
	if errors.Is(err, search.ErrNotArray) {
		writeText(w, http.StatusBadRequest, msgExpectedArray)
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "ingestion failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, msgInsertError)
		return
	}
	writeText(w, http.StatusOK, fmt.Sprintf(msgStoredSentences, n))
}

func (h *Handler) handleAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.Authors(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing authors failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, authors)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.log.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		writeText(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}
	writeText(w, http.StatusOK, "ok")
}

// isJSON reports whether the request body is declared as application/json.
// Bodies of any other type are not parsed.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.ErrorContext(r.Context(), "encoding response failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
