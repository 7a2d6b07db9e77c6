package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
	"trend_sentinel/internal/retry"
)

// mediaExtensions are link targets that never yield useful text.
var mediaExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".mp4": true, ".webm": true, ".mp3": true, ".pdf": true, ".zip": true,
}

// Scraper fetches an external page linked from a post and reduces it to
// plain text for downstream analysis. Failures are reported to the
// caller but are never fatal to a scan cycle.
type Scraper struct {
	httpClient *http.Client
	maxBytes   int64
	userAgent  string
	retry      config.RetryConfig
	logger     *slog.Logger
}

func New(cfg config.ScraperConfig, userAgent string, logger *slog.Logger) *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxBytes:  cfg.MaxBytes,
		userAgent: userAgent,
		retry:     cfg.Retry,
		logger:    logger.With("component", "scraper"),
	}
}

// Scrapeable reports whether the URL is worth fetching at all.
func (s *Scraper) Scrapeable(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return !mediaExtensions[strings.ToLower(path.Ext(u.Path))]
}

// FetchText downloads the page and strips it to plain text, capped at
// the configured byte limit. An empty string with nil error means the
// page had no extractable text.
func (s *Scraper) FetchText(ctx context.Context, rawURL string) (string, error) {
	if !s.Scrapeable(rawURL) {
		return "", nil
	}

	var text string
	err := retry.Do(ctx, s.retry, s.logger, "fetch_page", func(ctx context.Context) error {
		var err error
		text, err = s.doRequest(ctx, rawURL)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Scraper) doRequest(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &domain.TransientError{Op: "fetch_page", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &domain.RateLimitError{
			Op:         "fetch_page",
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", &domain.TransientError{
			Op:  "fetch_page",
			Err: fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	default:
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "text/plain") {
		s.logger.Debug("skipping non-text content", "url", rawURL, "content_type", contentType)
		return "", nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		return "", &domain.TransientError{Op: "fetch_page", Err: fmt.Errorf("read body: %w", err)}
	}

	if strings.Contains(contentType, "text/plain") {
		return collapseWhitespace(string(body)), nil
	}
	return extractText(string(body)), nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}

// extractText strips markup, scripts, and styles from an HTML document.
// It is deliberately crude; downstream analysis only needs readable
// prose, not document structure.
func extractText(html string) string {
	html = stripElement(html, "script")
	html = stripElement(html, "style")

	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	return collapseWhitespace(decodeEntities(b.String()))
}

// stripElement removes every <name>...</name> block, case-insensitively.
func stripElement(html, name string) string {
	lower := strings.ToLower(html)
	openTag := "<" + name
	closeTag := "</" + name + ">"

	var b strings.Builder
	for {
		start := strings.Index(lower, openTag)
		if start == -1 {
			b.WriteString(html)
			return b.String()
		}
		end := strings.Index(lower[start:], closeTag)
		if end == -1 {
			b.WriteString(html[:start])
			return b.String()
		}
		b.WriteString(html[:start])
		cut := start + end + len(closeTag)
		html = html[cut:]
		lower = lower[cut:]
	}
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

func decodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
