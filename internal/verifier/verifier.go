package verifier

import (
	"context"
	"errors"
	"log/slog"

	"trend_sentinel/internal/domain"
)

// SearchClient finds fact-checking sources for a query.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]domain.Evidence, error)
}

// Analyst is the reasoning capability: it weighs gathered evidence
// against a claim and can broaden a query that found nothing.
type Analyst interface {
	AnalyzeEvidence(ctx context.Context, claim string, evidence []domain.Evidence) (domain.EvidenceAnalysis, error)
	BroadenQuery(ctx context.Context, claim string) (string, error)
}

// Verifier resolves a single claim to a verdict. Verdict "error" is
// reserved for failures of the capability itself; an inconclusive but
// successful check yields "uncertain". Claims are independent of each
// other.
type Verifier struct {
	search  SearchClient
	analyst Analyst
	logger  *slog.Logger
}

func New(search SearchClient, analyst Analyst, logger *slog.Logger) *Verifier {
	return &Verifier{
		search:  search,
		analyst: analyst,
		logger:  logger.With("component", "verifier"),
	}
}

func (v *Verifier) Verify(ctx context.Context, claim domain.Claim) domain.VerificationResult {
	evidence, err := v.search.Search(ctx, claim.Text)
	if err != nil {
		v.logger.Warn("evidence search failed", "claim", claim.Text, "error", err)
		return v.capabilityFailure(claim, "evidence search failed: "+err.Error())
	}

	if len(evidence) == 0 {
		evidence = v.searchBroadened(ctx, claim)
	}

	if len(evidence) == 0 {
		return domain.VerificationResult{
			Claim:      claim,
			Verdict:    domain.VerdictUncertain,
			Confidence: domain.ConfidenceLow,
			Reasoning:  "no fact-checking sources found for this claim",
		}
	}

	analysis, err := v.analyst.AnalyzeEvidence(ctx, claim.Text, evidence)
	if err != nil {
		var malformed *domain.MalformedResponseError
		if errors.As(err, &malformed) {
			// The capability answered but unusably; that is inconclusive
			// evidence, not a capability failure.
			v.logger.Warn("evidence analysis unparseable", "claim", claim.Text, "error", err)
			return domain.VerificationResult{
				Claim:        claim,
				Verdict:      domain.VerdictUncertain,
				Confidence:   domain.ConfidenceLow,
				SourcesFound: len(evidence),
				Reasoning:    "found fact-checking sources but analysis was inconclusive",
			}
		}
		v.logger.Warn("evidence analysis failed", "claim", claim.Text, "error", err)
		result := v.capabilityFailure(claim, "evidence analysis failed: "+err.Error())
		result.SourcesFound = len(evidence)
		return result
	}

	return domain.VerificationResult{
		Claim:        claim,
		Verdict:      analysis.Verdict,
		Confidence:   analysis.Confidence,
		SourcesFound: len(evidence),
		Reasoning:    analysis.Reasoning,
	}
}

// searchBroadened retries the search once with a capability-generated
// broader query. Any failure here just means no extra evidence.
func (v *Verifier) searchBroadened(ctx context.Context, claim domain.Claim) []domain.Evidence {
	broader, err := v.analyst.BroadenQuery(ctx, claim.Text)
	if err != nil || broader == "" || broader == claim.Text {
		return nil
	}

	v.logger.Debug("retrying search with broadened query", "claim", claim.Text, "query", broader)

	evidence, err := v.search.Search(ctx, broader)
	if err != nil {
		v.logger.Warn("broadened search failed", "query", broader, "error", err)
		return nil
	}
	return evidence
}

func (v *Verifier) capabilityFailure(claim domain.Claim, reasoning string) domain.VerificationResult {
	return domain.VerificationResult{
		Claim:      claim,
		Verdict:    domain.VerdictError,
		Confidence: domain.ConfidenceLow,
		Reasoning:  reasoning,
	}
}
