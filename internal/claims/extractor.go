package claims

import (
	"context"
	"log/slog"
	"strings"

	"trend_sentinel/internal/domain"
)

// Request is the claim-extraction capability input for one post.
type Request struct {
	Title           string
	Body            string
	ExternalSummary string
}

// Result is the raw capability output: a summary and zero or more claim
// strings.
type Result struct {
	Summary string
	Claims  []string
}

// Client is the external summarization and claim-extraction capability.
type Client interface {
	ExtractClaims(ctx context.Context, req Request) (Result, error)
}

// Extractor produces a summary and candidate verifiable claims per post.
// Extraction failure for one post never fails the cycle: the post gets a
// sentinel summary and an empty claim set.
type Extractor struct {
	client Client
	logger *slog.Logger
}

func NewExtractor(client Client, logger *slog.Logger) *Extractor {
	return &Extractor{
		client: client,
		logger: logger.With("component", "claims"),
	}
}

func (e *Extractor) Extract(ctx context.Context, post domain.Post, externalText string) domain.Extraction {
	if e.client == nil {
		return unavailable("claim extraction not configured")
	}

	result, err := e.client.ExtractClaims(ctx, Request{
		Title:           post.Title,
		Body:            post.Body,
		ExternalSummary: externalText,
	})
	if err != nil {
		e.logger.Warn("claim extraction failed",
			"post_id", post.ID,
			"community", post.Community,
			"error", err,
		)
		return unavailable(err.Error())
	}

	fp := post.Fingerprint()
	extraction := domain.Extraction{
		Summary: result.Summary,
		Outcome: domain.OK(),
	}
	for _, text := range result.Claims {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		extraction.Claims = append(extraction.Claims, domain.Claim{Fingerprint: fp, Text: text})
	}

	return extraction
}

func unavailable(reason string) domain.Extraction {
	return domain.Extraction{
		Summary: domain.ExtractionUnavailable,
		Outcome: domain.Fallback(reason),
	}
}
