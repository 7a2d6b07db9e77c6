package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"trend_sentinel/internal/claims"
	"trend_sentinel/internal/classifier"
	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
	"trend_sentinel/internal/retry"
)

// Client adapts the Gemini API to the pipeline capabilities: batch risk
// classification, claim extraction, evidence analysis, and query
// broadening. All calls request JSON output and are retried on transient
// and rate-limit failures.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retry   config.RetryConfig
	logger  *slog.Logger
}

func NewClient(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Reason: "gemini api key is required"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		retry:   cfg.Retry,
		logger:  logger.With("component", "gemini"),
	}, nil
}

type promptEntry struct {
	ID              string
	Title           string
	Community       string
	Excerpt         string
	ExternalSummary string
	Score           int
	NumComments     int
	AgeHours        float64
}

type batchVerdictResponse struct {
	PostID    string `json:"post_id"`
	RiskLevel string `json:"risk_level"`
	Rationale string `json:"rationale"`
}

// ClassifyBatch scores a batch of posts in a single model call.
func (c *Client) ClassifyBatch(ctx context.Context, entries []classifier.Entry) ([]classifier.EntryVerdict, error) {
	prompt := make([]promptEntry, len(entries))
	for i, e := range entries {
		prompt[i] = promptEntry{
			ID:              e.PostID,
			Title:           e.Title,
			Community:       e.Community,
			Excerpt:         e.Excerpt,
			ExternalSummary: e.ExternalSummary,
			Score:           e.Score,
			NumComments:     e.NumComments,
			AgeHours:        e.AgeHours,
		}
	}

	var parsed []batchVerdictResponse
	if err := c.generateJSON(ctx, "classify_batch", classifyBatchPrompt(prompt), &parsed); err != nil {
		return nil, err
	}

	verdicts := make([]classifier.EntryVerdict, len(parsed))
	for i, v := range parsed {
		verdicts[i] = classifier.EntryVerdict{
			PostID:    v.PostID,
			RiskLevel: strings.ToUpper(strings.TrimSpace(v.RiskLevel)),
			Rationale: v.Rationale,
		}
	}
	return verdicts, nil
}

type extractionResponse struct {
	Summary string   `json:"summary"`
	Claims  []string `json:"claims"`
}

// ExtractClaims summarizes one post and lists its checkable assertions.
func (c *Client) ExtractClaims(ctx context.Context, req claims.Request) (claims.Result, error) {
	var parsed extractionResponse
	err := c.generateJSON(ctx, "extract_claims", extractClaimsPrompt(req.Title, req.Body, req.ExternalSummary), &parsed)
	if err != nil {
		return claims.Result{}, err
	}
	if parsed.Summary == "" {
		return claims.Result{}, &domain.MalformedResponseError{Op: "extract_claims", Reason: "empty summary"}
	}
	return claims.Result{Summary: parsed.Summary, Claims: parsed.Claims}, nil
}

type evidenceItem struct {
	Title   string
	Snippet string
	URL     string
}

type analysisResponse struct {
	Verdict    string `json:"verdict"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// AnalyzeEvidence weighs search evidence against one claim.
func (c *Client) AnalyzeEvidence(ctx context.Context, claim string, evidence []domain.Evidence) (domain.EvidenceAnalysis, error) {
	items := make([]evidenceItem, len(evidence))
	for i, e := range evidence {
		items[i] = evidenceItem{Title: e.Title, Snippet: e.Snippet, URL: e.URL}
	}

	var parsed analysisResponse
	if err := c.generateJSON(ctx, "analyze_evidence", analyzeEvidencePrompt(claim, items), &parsed); err != nil {
		return domain.EvidenceAnalysis{}, err
	}

	verdict := domain.Verdict(strings.ToLower(strings.TrimSpace(parsed.Verdict)))
	if !verdict.Valid() || verdict == domain.VerdictError {
		return domain.EvidenceAnalysis{}, &domain.MalformedResponseError{
			Op:     "analyze_evidence",
			Reason: "unknown verdict " + parsed.Verdict,
		}
	}

	confidence := domain.Confidence(strings.ToLower(strings.TrimSpace(parsed.Confidence)))
	if !confidence.Valid() {
		confidence = domain.ConfidenceMedium
	}

	return domain.EvidenceAnalysis{
		Verdict:    verdict,
		Confidence: confidence,
		Reasoning:  parsed.Reasoning,
	}, nil
}

type broaderQueryResponse struct {
	BroaderQuery string `json:"broader_query"`
}

// BroadenQuery rewrites a query that found nothing into a broader one.
func (c *Client) BroadenQuery(ctx context.Context, query string) (string, error) {
	var parsed broaderQueryResponse
	if err := c.generateJSON(ctx, "broaden_query", broadenQueryPrompt(query), &parsed); err != nil {
		return "", err
	}
	return strings.TrimSpace(parsed.BroaderQuery), nil
}

// generateJSON runs one JSON-mode generation with retry and decodes the
// response into out. Parse failures surface as MalformedResponseError
// and are never retried.
func (c *Client) generateJSON(ctx context.Context, op, prompt string, out any) error {
	return retry.Do(ctx, c.retry, c.logger, op, func(ctx context.Context) error {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		resp, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return classifyAPIError(op, err)
		}

		text := stripFences(resp.Text())
		if text == "" {
			return &domain.MalformedResponseError{Op: op, Reason: "empty response"}
		}
		if err := json.Unmarshal([]byte(text), out); err != nil {
			return &domain.MalformedResponseError{Op: op, Reason: "invalid json: " + err.Error()}
		}
		return nil
	})
}

func classifyAPIError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.TransientError{Op: op, Err: err}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &domain.RateLimitError{Op: op, Err: err}
		case apiErr.Code >= http.StatusInternalServerError:
			return &domain.TransientError{Op: op, Err: err}
		default:
			return err
		}
	}

	return &domain.TransientError{Op: op, Err: err}
}

// stripFences removes markdown code fences some model responses still
// wrap around JSON output.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
