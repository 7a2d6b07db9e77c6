package classifier

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_sentinel/internal/domain"
)

type stubClient struct {
	verdicts []EntryVerdict
	err      error
	entries  []Entry
}

func (s *stubClient) ClassifyBatch(_ context.Context, entries []Entry) ([]EntryVerdict, error) {
	s.entries = entries
	return s.verdicts, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func scoredCandidate(id string, perHour float64) domain.Candidate {
	return domain.Candidate{
		Post:     domain.Post{ID: id, Community: "worldnews", Title: "title " + id, CreatedAt: time.Now().Add(-2 * time.Hour)},
		Velocity: domain.VelocityScore{PerHour: perHour, Valid: true},
	}
}

func TestClassify_ExternalVerdictsUsed(t *testing.T) {
	client := &stubClient{verdicts: []EntryVerdict{
		{PostID: "a:worldnews", RiskLevel: "HIGH", Rationale: "unsourced medical claim"},
		{PostID: "b:worldnews", RiskLevel: "LOW", Rationale: "satire"},
	}}
	c := New(client, 50, 15, testLogger())

	batch := []domain.Candidate{scoredCandidate("a", 80), scoredCandidate("b", 5)}
	assessments, outcome, err := c.Classify(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeOK, outcome.Status)
	require.Len(t, assessments, 2)
	assert.Equal(t, domain.RiskHigh, assessments[0].Level)
	assert.Equal(t, "unsourced medical claim", assessments[0].Rationale)
	assert.False(t, assessments[0].Heuristic)
	assert.Equal(t, domain.RiskLow, assessments[1].Level)
	assert.Equal(t, "verify immediately", assessments[0].Action)

	// Request entries mirror the batch in order.
	require.Len(t, client.entries, 2)
	assert.Equal(t, "a:worldnews", client.entries[0].PostID)
	assert.Equal(t, "b:worldnews", client.entries[1].PostID)
}

func TestClassify_SameIDAcrossCommunitiesKeptSeparate(t *testing.T) {
	client := &stubClient{verdicts: []EntryVerdict{
		{PostID: "a:worldnews", RiskLevel: "HIGH", Rationale: "unverified breaking claim"},
		{PostID: "a:science", RiskLevel: "LOW", Rationale: "well sourced"},
	}}
	c := New(client, 50, 15, testLogger())

	batch := []domain.Candidate{
		scoredCandidate("a", 80),
		{
			Post:     domain.Post{ID: "a", Community: "science", Title: "title a"},
			Velocity: domain.VelocityScore{PerHour: 5, Valid: true},
		},
	}
	assessments, outcome, err := c.Classify(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeOK, outcome.Status)
	require.Len(t, assessments, 2)

	assert.Equal(t, domain.RiskHigh, assessments[0].Level)
	assert.Equal(t, batch[0].Post.Fingerprint(), assessments[0].Fingerprint)
	assert.False(t, assessments[0].Heuristic)

	assert.Equal(t, domain.RiskLow, assessments[1].Level)
	assert.Equal(t, batch[1].Post.Fingerprint(), assessments[1].Fingerprint)
	assert.False(t, assessments[1].Heuristic)
}

func TestClassify_ServiceFailureDegradesWholeBatch(t *testing.T) {
	client := &stubClient{err: &domain.TransientError{Op: "classify", Err: errors.New("timeout")}}
	c := New(client, 50, 15, testLogger())

	batch := []domain.Candidate{
		scoredCandidate("a", 80), // above high
		scoredCandidate("b", 20), // above medium
		scoredCandidate("c", 5),  // below both
		scoredCandidate("d", 50), // exactly high
		{Post: domain.Post{ID: "e", Community: "worldnews"}}, // no velocity data
	}
	assessments, outcome, err := c.Classify(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFallback, outcome.Status)
	require.Len(t, assessments, 5)

	expected := []domain.RiskLevel{domain.RiskHigh, domain.RiskMedium, domain.RiskLow, domain.RiskHigh, domain.RiskLow}
	for i, a := range assessments {
		assert.True(t, a.Heuristic, "entry %d must be flagged heuristic", i)
		assert.Equal(t, expected[i], a.Level, "entry %d", i)
		assert.Equal(t, batch[i].Post.Fingerprint(), a.Fingerprint)
	}
}

func TestClassify_MalformedEntryFallsBackIndividually(t *testing.T) {
	client := &stubClient{verdicts: []EntryVerdict{
		{PostID: "a:worldnews", RiskLevel: "HIGH", Rationale: "conspiracy narrative"},
		{PostID: "b:worldnews", RiskLevel: "SEVERE", Rationale: "bad level"},
		{PostID: "nonexistent:worldnews", RiskLevel: "LOW", Rationale: "wrong id"},
	}}
	c := New(client, 50, 15, testLogger())

	batch := []domain.Candidate{
		scoredCandidate("a", 80),
		scoredCandidate("b", 20),
		scoredCandidate("c", 5),
	}
	assessments, outcome, err := c.Classify(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeOK, outcome.Status)
	require.Len(t, assessments, 3)

	assert.False(t, assessments[0].Heuristic)
	assert.Equal(t, domain.RiskHigh, assessments[0].Level)

	assert.True(t, assessments[1].Heuristic)
	assert.Equal(t, domain.RiskMedium, assessments[1].Level)

	assert.True(t, assessments[2].Heuristic)
	assert.Equal(t, domain.RiskLow, assessments[2].Level)
}

func TestClassify_NilClientUsesHeuristic(t *testing.T) {
	c := New(nil, 50, 15, testLogger())

	assessments, outcome, err := c.Classify(context.Background(), []domain.Candidate{scoredCandidate("a", 80)})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFallback, outcome.Status)
	require.Len(t, assessments, 1)
	assert.True(t, assessments[0].Heuristic)
	assert.Equal(t, domain.RiskHigh, assessments[0].Level)
}

func TestClassify_NoCapabilityAndNoHeuristicIsFatal(t *testing.T) {
	c := New(nil, 0, 0, testLogger())

	_, outcome, err := c.Classify(context.Background(), []domain.Candidate{scoredCandidate("a", 80)})

	var confErr *domain.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, domain.OutcomeFailed, outcome.Status)
}

func TestClassify_EmptyBatch(t *testing.T) {
	c := New(&stubClient{}, 50, 15, testLogger())

	assessments, outcome, err := c.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, assessments)
	assert.Equal(t, domain.OutcomeOK, outcome.Status)
}
