package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekpranveer/author-s-dict/internal/config"
	"github.com/prateekpranveer/author-s-dict/internal/database"
	"github.com/prateekpranveer/author-s-dict/internal/dictionary"
	"github.com/prateekpranveer/author-s-dict/internal/search"
	"github.com/prateekpranveer/author-s-dict/internal/sentence"
)

// newTestAPI serves the full middleware chain over an in-memory SQLite store
// and the given dictionary API base URL.
func newTestAPI(t *testing.T, dictionaryURL string) *httptest.Server {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	logger := discardLogger()
	dict := dictionary.NewClient(config.DictionaryConfig{
		BaseURL:        dictionaryURL,
		TimeoutSeconds: 2,
		RetryAttempts:  1,
	}, logger)
	svc := search.NewService(sentence.NewDBRepository(db), dict, logger)

	srv := New(config.ServerConfig{
		Port:         0,
		CORS:         config.CORSConfig{AllowedOrigins: []string{"*"}},
		MaxBodyBytes: 10 << 20,
	}, NewHandler(svc, db, 10<<20, logger), logger)

	api := httptest.NewServer(srv.Handler)
	t.Cleanup(api.Close)
	return api
}

func postData(t *testing.T, api *httptest.Server, body string) (int, string) {
	t.Helper()

	res, err := http.Post(api.URL+"/data", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(b)
}

func getSearch(t *testing.T, api *httptest.Server, word string) searchResponse {
	t.Helper()

	res, err := http.Get(api.URL + "/search?word=" + url.QueryEscape(word))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got searchResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	return got
}

func texts(records []sentence.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Text)
	}
	return out
}

func TestAPI_IngestThenSearch(t *testing.T) {
	dictionaryAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/love" {
			_, _ = w.Write([]byte(`[{"word":"love","phonetic":"/lʌv/","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"a strong feeling of affection"}]}]}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer dictionaryAPI.Close()

	api := newTestAPI(t, dictionaryAPI.URL)

	status, body := postData(t, api, `[{"sentence":"To be or not to be","author":"Shakespeare","book":"Hamlet"}]`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Stored 1 sentences.", body)

	got := getSearch(t, api, "not to be")
	assert.Equal(t, []sentence.Record{{Text: "To be or not to be", Author: "Shakespeare", Book: "Hamlet"}}, got.Matches)
	assert.Equal(t, dictionary.Failed(dictionary.ErrWordNotFound), got.Dictionary)

	status, body = postData(t, api, `[
		{"sentence":"Love looks not with the eyes, but with the mind","author":"Shakespeare","book":"A Midsummer Night's Dream"},
		{"sentence":"There is no charm equal to tenderness of heart","author":"Austen","book":"Emma"},
		{"sentence":"I LOVE this book","author":"Austen"},
		{"sentence":"Whoever loved that loved not at first sight?","author":"Marlowe","book":"Hero and Leander"}
	]`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Stored 4 sentences.", body)

	got = getSearch(t, api, "love")
	assert.Equal(t, []string{
		"Love looks not with the eyes, but with the mind",
		"Whoever loved that loved not at first sight?",
	}, texts(got.Matches))
	require.True(t, got.Dictionary.OK())
	assert.Equal(t, "love", got.Dictionary.Entry.Word)
	assert.Equal(t, "/lʌv/", got.Dictionary.Entry.Phonetic)
	assert.Equal(t, []dictionary.Phonetic{}, got.Dictionary.Entry.Phonetics)
}

func TestAPI_NonArrayPersistsNothing(t *testing.T) {
	dictionaryAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer dictionaryAPI.Close()

	api := newTestAPI(t, dictionaryAPI.URL)

	status, body := postData(t, api, `{"sentence":"To be or not to be","author":"Shakespeare","book":"Hamlet"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Expected an array.", body)

	got := getSearch(t, api, "be")
	assert.Empty(t, got.Matches)
	assert.NotNil(t, got.Matches)
}

func TestAPI_DictionaryUnreachable(t *testing.T) {
	dictionaryAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable := dictionaryAPI.URL
	dictionaryAPI.Close()

	api := newTestAPI(t, unreachable)

	status, _ := postData(t, api, `[{"sentence":"All you need is love","author":"Lennon","book":"Lyrics"}]`)
	require.Equal(t, http.StatusOK, status)

	got := getSearch(t, api, "love")
	assert.Equal(t, []string{"All you need is love"}, texts(got.Matches))
	assert.Equal(t, dictionary.Failed(dictionary.ErrFetchFailed), got.Dictionary)
}

func TestAPI_Middleware(t *testing.T) {
	api := newTestAPI(t, "http://127.0.0.1:1")

	t.Run("preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, api.URL+"/data", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, api.URL+"/healthz", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-ID", "abc-123")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "abc-123", res.Header.Get("X-Request-ID"))
	})
}
