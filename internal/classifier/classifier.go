package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"trend_sentinel/internal/domain"
)

// Entry is one post in a batch classification request.
type Entry struct {
	PostID          string
	Title           string
	Community       string
	Excerpt         string
	ExternalSummary string
	Score           int
	NumComments     int
	AgeHours        float64
}

// EntryVerdict is one post's classification in the batch response.
type EntryVerdict struct {
	PostID    string
	RiskLevel string
	Rationale string
}

// BatchClient is the external batch classification capability.
type BatchClient interface {
	ClassifyBatch(ctx context.Context, entries []Entry) ([]EntryVerdict, error)
}

const excerptLimit = 1500

// Classifier maps batches of candidates to risk assessments. It prefers
// the external capability and falls back to velocity-threshold heuristics
// per entry or per batch, so a batch of n candidates always yields
// exactly n assessments in input order.
type Classifier struct {
	client         BatchClient
	velocityHigh   float64
	velocityMedium float64
	logger         *slog.Logger
}

func New(client BatchClient, velocityHigh, velocityMedium float64, logger *slog.Logger) *Classifier {
	return &Classifier{
		client:         client,
		velocityHigh:   velocityHigh,
		velocityMedium: velocityMedium,
		logger:         logger.With("component", "classifier"),
	}
}

// Classify assesses one batch. The returned slice is length- and
// order-preserving with respect to the input. The Outcome reports whether
// the external capability answered or the whole batch degraded.
//
// A *domain.ConfigurationError is returned only when there is neither a
// capability nor a usable heuristic; that aborts the cycle.
func (c *Classifier) Classify(ctx context.Context, batch []domain.Candidate) ([]domain.RiskAssessment, domain.Outcome, error) {
	if len(batch) == 0 {
		return nil, domain.OK(), nil
	}

	if c.client == nil {
		if !c.heuristicConfigured() {
			return nil, domain.Failed("unconfigured"), &domain.ConfigurationError{
				Reason: "no classification capability configured and velocity thresholds unset",
			}
		}
		return c.heuristicAll(batch, "classifier not configured"), domain.Fallback("classifier not configured"), nil
	}

	verdicts, err := c.client.ClassifyBatch(ctx, c.entries(batch))
	if err != nil {
		c.logger.Warn("batch classification failed, using heuristic fallback",
			"batch_size", len(batch),
			"error", err,
		)
		return c.heuristicAll(batch, "classification service unavailable"), domain.Fallback(err.Error()), nil
	}

	return c.merge(batch, verdicts), domain.OK(), nil
}

// merge validates each response entry against the input batch. Entries
// that fail validation fall back individually; valid siblings are kept.
func (c *Classifier) merge(batch []domain.Candidate, verdicts []EntryVerdict) []domain.RiskAssessment {
	byID := make(map[string]EntryVerdict, len(verdicts))
	for _, v := range verdicts {
		if _, dup := byID[v.PostID]; dup {
			c.logger.Warn("duplicate post id in classification response", "post_id", v.PostID)
			continue
		}
		byID[v.PostID] = v
	}

	assessments := make([]domain.RiskAssessment, len(batch))
	for i, cand := range batch {
		verdict, ok := byID[entryID(cand.Post)]
		if !ok {
			c.reportMalformed(cand, fmt.Sprintf("no entry for post %q", entryID(cand.Post)))
			assessments[i] = c.heuristic(cand, "missing classification entry")
			continue
		}

		level := domain.RiskLevel(verdict.RiskLevel)
		if !level.Valid() {
			c.reportMalformed(cand, fmt.Sprintf("unknown risk level %q for post %q", verdict.RiskLevel, cand.Post.ID))
			assessments[i] = c.heuristic(cand, "invalid risk level in response")
			continue
		}

		assessments[i] = domain.RiskAssessment{
			Fingerprint: cand.Post.Fingerprint(),
			Level:       level,
			Velocity:    cand.Velocity,
			Rationale:   verdict.Rationale,
			Action:      level.RecommendedAction(),
		}
	}

	return assessments
}

func (c *Classifier) reportMalformed(cand domain.Candidate, reason string) {
	err := &domain.MalformedResponseError{Op: "classify", Reason: reason}
	c.logger.Warn("classification entry rejected",
		"post_id", cand.Post.ID,
		"error", err,
	)
}

// entryID is the per-batch correspondence key echoed back by the
// capability. Post identity is platform id plus community, so the bare
// id alone could collide across communities in one batch.
func entryID(post domain.Post) string {
	return post.ID + ":" + post.Community
}

func (c *Classifier) entries(batch []domain.Candidate) []Entry {
	entries := make([]Entry, len(batch))
	for i, cand := range batch {
		excerpt := cand.Post.Body
		if len(excerpt) > excerptLimit {
			excerpt = excerpt[:excerptLimit]
		}
		entries[i] = Entry{
			PostID:          entryID(cand.Post),
			Title:           cand.Post.Title,
			Community:       cand.Post.Community,
			Excerpt:         excerpt,
			ExternalSummary: cand.ExternalSummary,
			Score:           cand.Post.Score,
			NumComments:     cand.Post.NumComments,
			AgeHours:        cand.AgeHours(),
		}
	}
	return entries
}

func (c *Classifier) heuristicConfigured() bool {
	return c.velocityHigh > 0 && c.velocityMedium > 0 && c.velocityMedium <= c.velocityHigh
}

func (c *Classifier) heuristicAll(batch []domain.Candidate, reason string) []domain.RiskAssessment {
	assessments := make([]domain.RiskAssessment, len(batch))
	for i, cand := range batch {
		assessments[i] = c.heuristic(cand, reason)
	}
	return assessments
}

func (c *Classifier) heuristic(cand domain.Candidate, reason string) domain.RiskAssessment {
	level := domain.RiskLow
	rationale := fmt.Sprintf("heuristic (%s): velocity below thresholds", reason)

	switch {
	case !cand.Velocity.Valid:
		rationale = fmt.Sprintf("heuristic (%s): insufficient velocity data", reason)
	case cand.Velocity.PerHour >= c.velocityHigh:
		level = domain.RiskHigh
		rationale = fmt.Sprintf("heuristic (%s): velocity %.1f/h above high threshold %.1f", reason, cand.Velocity.PerHour, c.velocityHigh)
	case cand.Velocity.PerHour >= c.velocityMedium:
		level = domain.RiskMedium
		rationale = fmt.Sprintf("heuristic (%s): velocity %.1f/h above medium threshold %.1f", reason, cand.Velocity.PerHour, c.velocityMedium)
	}

	return domain.RiskAssessment{
		Fingerprint: cand.Post.Fingerprint(),
		Level:       level,
		Velocity:    cand.Velocity,
		Rationale:   rationale,
		Action:      level.RecommendedAction(),
		Heuristic:   true,
	}
}
