package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
	"trend_sentinel/internal/retry"
)

const SourceID = "reddit"

// Source fetches trending submissions from the public Reddit JSON API.
// No authentication is used; Reddit rate-limits by user agent, so the
// configured agent must be unique to this deployment.
type Source struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limit      int
	retry      config.RetryConfig
	logger     *slog.Logger
}

func New(cfg config.RedditConfig, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limit:     cfg.ListingLimit,
		retry:     cfg.Retry,
		logger:    logger.With("source", SourceID),
	}
}

// ListHot fetches the current hot submissions for one community.
// Stickied submissions are moderator announcements and are skipped.
func (s *Source) ListHot(ctx context.Context, community string) ([]domain.Post, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%s&raw_json=1", s.baseURL, community, strconv.Itoa(s.limit))

	var resp *listing
	err := retry.Do(ctx, s.retry, s.logger, "list_hot", func(ctx context.Context) error {
		var err error
		resp, err = s.doRequest(ctx, url)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list hot r/%s: %w", community, err)
	}

	posts := make([]domain.Post, 0, len(resp.Data.Children))
	for _, child := range resp.Data.Children {
		sub := child.Data
		if sub.Stickied {
			continue
		}
		posts = append(posts, s.transform(sub))
	}

	s.logger.Debug("fetched listing", "community", community, "posts", len(posts))
	return posts, nil
}

func (s *Source) doRequest(ctx context.Context, url string) (*listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransientError{Op: "list_hot", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &domain.RateLimitError{
			Op:         "list_hot",
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &domain.TransientError{
			Op:  "list_hot",
			Err: fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result listing
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &domain.MalformedResponseError{Op: "list_hot", Reason: "invalid json: " + err.Error()}
	}

	return &result, nil
}

func (s *Source) transform(sub submission) domain.Post {
	post := domain.Post{
		ID:          sub.ID,
		Title:       sub.Title,
		Community:   sub.Subreddit,
		Author:      sub.Author,
		Score:       sub.Score,
		NumComments: sub.NumComments,
		Body:        sub.SelfText,
		Permalink:   sub.Permalink,
	}

	if sub.CreatedUTC > 0 {
		post.CreatedAt = time.Unix(int64(sub.CreatedUTC), 0).UTC()
	}

	// Self posts put the permalink in url; only keep genuinely external links.
	if !sub.IsSelf {
		post.URL = sub.URL
	}

	return post
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
