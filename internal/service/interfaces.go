package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"trend_sentinel/internal/domain"
)

type Source interface {
	ListHot(ctx context.Context, community string) ([]domain.Post, error)
}

type DedupStore interface {
	Seen(ctx context.Context, fingerprints []domain.Fingerprint) (map[domain.Fingerprint]bool, error)
	Mark(ctx context.Context, fingerprints []domain.Fingerprint) error
}

type VelocityTracker interface {
	Record(fp domain.Fingerprint, obs domain.Observation)
	Velocity(fp domain.Fingerprint) domain.VelocityScore
}

type RiskClassifier interface {
	Classify(ctx context.Context, batch []domain.Candidate) ([]domain.RiskAssessment, domain.Outcome, error)
}

type ClaimExtractor interface {
	Extract(ctx context.Context, post domain.Post, externalText string) domain.Extraction
}

type ClaimVerifier interface {
	Verify(ctx context.Context, claim domain.Claim) domain.VerificationResult
}

type ContentFetcher interface {
	Scrapeable(url string) bool
	FetchText(ctx context.Context, url string) (string, error)
}

type ReportStore interface {
	Insert(ctx context.Context, report *domain.ScanReport) (string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, report *domain.ScanReport) error
	Close() error
}
