// Package testutil provides shared test helpers for config files, quotation fixtures
// and a fake dictionary API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file that stores quotations in a SQLite
// file under tmpDir and looks words up at dictionaryURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, dictionaryURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
dictionary:
  base_url: %s
  timeout_seconds: 2
  retry_attempts: 1
log:
  level: error
`,
		filepath.Join(tmpDir, "sentences.db"),
		dictionaryURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// Quote is one quotation in the shape accepted by ingestion.
type Quote struct {
	Sentence string `json:"sentence"`
	Author   string `json:"author"`
	Book     string `json:"book"`
}

// WriteQuotesFile writes quotes as a JSON array to dir/name and returns its path.
func WriteQuotesFile(t *testing.T, dir, name string, quotes []Quote) string {
	t.Helper()

	content, err := json.Marshal(quotes)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// NewDictionaryServer fakes the Free Dictionary API. Words present in
// entries are answered with a one-element array holding the given JSON entry;
// other words get the API's not-found object with status 404.
func NewDictionaryServer(t *testing.T, entries map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		word := strings.TrimPrefix(r.URL.Path, "/")
		if entry, ok := entries[word]; ok {
			_, _ = fmt.Fprintf(w, "[%s]", entry)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for."}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}
