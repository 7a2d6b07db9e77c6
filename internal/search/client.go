package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
	"trend_sentinel/internal/retry"
)

// Client queries the Google Custom Search API, configured with a search
// engine restricted to fact-checking sites.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engineID   string
	maxResults int
	retry      config.RetryConfig
	logger     *slog.Logger
}

func NewClient(cfg config.SearchConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Reason: "search api key is required"}
	}
	if cfg.EngineID == "" {
		return nil, &domain.ConfigurationError{Reason: "search engine id is required"}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		engineID:   cfg.EngineID,
		maxResults: cfg.MaxResults,
		retry:      cfg.Retry,
		logger:     logger.With("component", "search"),
	}, nil
}

type apiResponse struct {
	Items []apiItem `json:"items"`
}

type apiItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Search runs one query and returns the hits. Zero hits is a successful
// result, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Evidence, error) {
	var resp *apiResponse

	err := retry.Do(ctx, c.retry, c.logger, "search", func(ctx context.Context) error {
		var err error
		resp, err = c.doRequest(ctx, query)
		return err
	})
	if err != nil {
		return nil, err
	}

	evidence := make([]domain.Evidence, 0, len(resp.Items))
	for _, item := range resp.Items {
		evidence = append(evidence, domain.Evidence{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
		})
	}

	c.logger.Debug("search completed", "query", query, "hits", len(evidence))
	return evidence, nil
}

func (c *Client) doRequest(ctx context.Context, query string) (*apiResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("num", strconv.Itoa(c.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransientError{Op: "search", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &domain.RateLimitError{
			Op:         "search",
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &domain.TransientError{
			Op:  "search",
			Err: fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.MalformedResponseError{Op: "search", Reason: "invalid json: " + err.Error()}
	}

	return &apiResp, nil
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
