package search

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(config.SearchConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		EngineID:   "test-cx",
		MaxResults: 10,
		Timeout:    5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
		},
	}, testLogger())
	require.NoError(t, err)
	return client
}

func TestSearch_ReturnsEvidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "flat earth", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		assert.Equal(t, "10", r.URL.Query().Get("num"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"title":"Fact check: earth is not flat","snippet":"debunked","link":"https://example.org/1"},
			{"title":"Another check","snippet":"also false","link":"https://example.org/2"}
		]}`))
	}))
	defer server.Close()

	evidence, err := testClient(t, server.URL).Search(context.Background(), "flat earth")

	require.NoError(t, err)
	require.Len(t, evidence, 2)
	assert.Equal(t, "Fact check: earth is not flat", evidence[0].Title)
	assert.Equal(t, "https://example.org/2", evidence[1].URL)
}

func TestSearch_ZeroHitsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	evidence, err := testClient(t, server.URL).Search(context.Background(), "anything")

	require.NoError(t, err)
	assert.Empty(t, evidence)
}

func TestSearch_RetriesRateLimitThenSucceeds(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"title":"t","snippet":"s","link":"l"}]}`))
	}))
	defer server.Close()

	evidence, err := testClient(t, server.URL).Search(context.Background(), "q")

	require.NoError(t, err)
	assert.Len(t, evidence, 1)
	assert.Equal(t, 2, calls)
}

func TestSearch_ServerErrorExhaustsRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Search(context.Background(), "q")

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	var transient *domain.TransientError
	assert.ErrorAs(t, err, &transient)
}

func TestSearch_ClientErrorIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Search(context.Background(), "q")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, domain.IsRetryable(err))
}

func TestNewClient_MissingCredentials(t *testing.T) {
	_, err := NewClient(config.SearchConfig{EngineID: "cx"}, testLogger())
	var confErr *domain.ConfigurationError
	require.ErrorAs(t, err, &confErr)

	_, err = NewClient(config.SearchConfig{APIKey: "key"}, testLogger())
	require.ErrorAs(t, err, &confErr)
}
