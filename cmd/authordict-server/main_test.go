package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekpranveer/author-s-dict/internal/testutil"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "authordict-server", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	dict := testutil.NewDictionaryServer(t, nil)
	cfg, err := loadConfig(testutil.SetupTestConfig(t, tmpDir, dict.URL))
	require.NoError(t, err)
	cfg.Server.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg)
	}()

	healthURL := fmt.Sprintf("http://127.0.0.1:%d/healthz", cfg.Server.Port)
	require.Eventually(t, func() bool {
		res, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		defer res.Body.Close()
		body, _ := io.ReadAll(res.Body)
		return res.StatusCode == http.StatusOK && string(body) == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)

	res, err := http.Post(baseURL+"/data", "application/json", strings.NewReader(
		`[{"sentence":"To be or not to be","author":"Shakespeare","book":"Hamlet"},{"sentence":"skipped","author":"Nobody"}]`,
	))
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Stored 2 sentences.", string(body))

	res, err = http.Get(baseURL + "/search?word=" + url.QueryEscape("not to be"))
	require.NoError(t, err)
	var got struct {
		Matches []struct {
			Text   string `json:"text"`
			Author string `json:"author"`
			Book   string `json:"book"`
		} `json:"matches"`
		Dictionary struct {
			Error string `json:"error"`
		} `json:"dictionary"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.NoError(t, res.Body.Close())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "To be or not to be", got.Matches[0].Text)
	assert.Equal(t, "Shakespeare", got.Matches[0].Author)
	assert.Equal(t, "Hamlet", got.Matches[0].Book)
	assert.Equal(t, "Word not found", got.Dictionary.Error)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidDatabase(t *testing.T) {
	cfg, err := loadConfig(testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1"))
	require.NoError(t, err)
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "sentences.db")

	err = run(context.Background(), cfg)
	assert.Error(t, err)
}
