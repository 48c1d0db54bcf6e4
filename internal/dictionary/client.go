package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/prateekpranveer/author-s-dict/internal/config"
)

const defaultRetryDelay = 200 * time.Millisecond

// Client looks words up in the Free Dictionary API.
type Client struct {
	httpClient    *resty.Client
	timeout       time.Duration
	retryAttempts uint
	retryDelay    time.Duration
	log           *slog.Logger
}

// NewClient creates a Client for the API at cfg.BaseURL.
func NewClient(cfg config.DictionaryConfig, logger *slog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Accept", "application/json")

	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &Client{
		httpClient:    client,
		timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
		retryAttempts: attempts,
		retryDelay:    defaultRetryDelay,
		log:           logger.With("component", "dictionary"),
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("dictionary API responded with status %d", e.code)
}

// Lookup fetches and normalizes the entry for word.
// It never fails; a failed lookup is reported in the Result.
func (c *Client) Lookup(ctx context.Context, word string) Result {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := c.fetch(ctx, word)
	if err != nil {
		c.log.WarnContext(ctx, "dictionary lookup failed", slog.String("word", word), slog.Any("error", err))
		return Failed(ErrFetchFailed)
	}

	entry, err := parseResponse(word, body)
	if errors.Is(err, errNoEntry) {
		c.log.DebugContext(ctx, "word not in dictionary", slog.String("word", word))
		return Failed(ErrWordNotFound)
	}
	if err != nil {
		c.log.WarnContext(ctx, "unreadable dictionary response", slog.String("word", word), slog.Any("error", err))
		return Failed(ErrFetchFailed)
	}
	return Found(entry)
}

func (c *Client) fetch(ctx context.Context, word string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			res, err := c.httpClient.R().
				SetContext(ctx).
				SetPathParam("word", word).
				Get("/{word}")
			if err != nil {
				return fmt.Errorf("client.R().Get > %w", err)
			}
			if res.StatusCode() >= http.StatusInternalServerError {
				return &statusError{code: res.StatusCode()}
			}
			body = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			c.log.DebugContext(ctx, "retrying dictionary lookup",
				slog.String("word", word),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// isTransient reports whether a failed attempt is worth repeating.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
