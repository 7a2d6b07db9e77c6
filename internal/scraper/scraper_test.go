package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
)

func testScraper(maxBytes int64) *Scraper {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.ScraperConfig{
		Timeout:  5 * time.Second,
		MaxBytes: maxBytes,
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
		},
	}
	return New(cfg, "TrendSentinel/1.0", logger)
}

func TestScrapeable(t *testing.T) {
	s := testScraper(1 << 20)

	assert.True(t, s.Scrapeable("https://example.org/article"))
	assert.True(t, s.Scrapeable("http://example.org/news.html"))
	assert.False(t, s.Scrapeable(""))
	assert.False(t, s.Scrapeable("ftp://example.org/file"))
	assert.False(t, s.Scrapeable("https://example.org/photo.JPG"))
	assert.False(t, s.Scrapeable("https://example.org/report.pdf"))
	assert.False(t, s.Scrapeable("https://example.org/clip.mp4"))
}

func TestFetchText_StripsMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head>
			<title>Page</title>
			<script>var tracking = "ignore me";</script>
			<style>body { color: red; }</style>
		</head><body>
			<h1>Vaccine study &amp; results</h1>
			<p>The study found <b>no link</b> between the two.</p>
		</body></html>`))
	}))
	defer server.Close()

	text, err := testScraper(1<<20).FetchText(context.Background(), server.URL+"/article")

	require.NoError(t, err)
	assert.Contains(t, text, "Vaccine study & results")
	assert.Contains(t, text, "The study found no link between the two.")
	assert.NotContains(t, text, "ignore me")
	assert.NotContains(t, text, "color: red")
}

func TestFetchText_RespectsByteLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(strings.Repeat("a", 10_000)))
	}))
	defer server.Close()

	text, err := testScraper(100).FetchText(context.Background(), server.URL+"/big")

	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), 100)
}

func TestFetchText_SkipsNonTextContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0x00, 0x01})
	}))
	defer server.Close()

	text, err := testScraper(1<<20).FetchText(context.Background(), server.URL+"/blob")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestFetchText_RetriesServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("recovered page text"))
	}))
	defer server.Close()

	text, err := testScraper(1<<20).FetchText(context.Background(), server.URL+"/flaky")

	require.NoError(t, err)
	assert.Equal(t, "recovered page text", text)
	assert.Equal(t, 2, calls)
}

func TestFetchText_ServerErrorExhaustsRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testScraper(1<<20).FetchText(context.Background(), server.URL+"/down")

	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var transient *domain.TransientError
	assert.ErrorAs(t, err, &transient)
}

func TestFetchText_NonOKStatusIsAnError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testScraper(1<<20).FetchText(context.Background(), server.URL+"/gone")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchText_UnscrapeableURLIsSilentlySkipped(t *testing.T) {
	text, err := testScraper(1<<20).FetchText(context.Background(), "https://example.org/image.png")
	require.NoError(t, err)
	assert.Empty(t, text)
}
