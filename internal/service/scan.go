package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"trend_sentinel/internal/classifier"
	"trend_sentinel/internal/config"
	"trend_sentinel/internal/domain"
)

// State names the pipeline stage a scan cycle is currently in.
type State string

const (
	StateIdle       State = "IDLE"
	StateFetching   State = "FETCHING"
	StateDeduping   State = "DEDUPING"
	StateScoring    State = "SCORING"
	StateExtracting State = "EXTRACTING"
	StateVerifying  State = "VERIFYING"
	StateReporting  State = "REPORTING"
)

// Deps bundles the collaborators of a scan cycle. Publisher and fetcher
// may be nil; extractor and verifier are required only when claim
// verification is enabled.
type Deps struct {
	Source     Source
	Dedup      DedupStore
	Tracker    VelocityTracker
	Classifier RiskClassifier
	Extractor  ClaimExtractor
	Verifier   ClaimVerifier
	Fetcher    ContentFetcher
	Reports    ReportStore
	TxManager  TransactionManager
	Publisher  Publisher
}

// ScanService runs one full pipeline cycle per Scan call:
// IDLE, FETCHING, DEDUPING, SCORING, optionally EXTRACTING and
// VERIFYING, then REPORTING. Cancellation is honored between stages,
// never inside one. Once REPORTING is reached a report is always
// produced; only a ConfigurationError aborts a cycle.
type ScanService struct {
	deps        Deps
	communities []string
	config      config.ScanConfig
	logger      *slog.Logger

	mu    sync.Mutex
	state State
}

func NewScanService(deps Deps, communities []string, cfg config.ScanConfig, logger *slog.Logger) *ScanService {
	return &ScanService{
		deps:        deps,
		communities: communities,
		config:      cfg,
		logger:      logger.With("component", "scan"),
		state:       StateIdle,
	}
}

// State returns the current pipeline stage.
func (s *ScanService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ScanService) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.logger.Debug("state transition", "state", state)
}

func (s *ScanService) Scan(ctx context.Context) (*domain.ScanReport, error) {
	startTime := time.Now()
	stats := &domain.ScanStats{}
	defer s.setState(StateIdle)

	s.logger.Info("starting scan cycle",
		"communities", s.communities,
		"verification_enabled", s.config.VerificationEnabled,
	)

	s.setState(StateFetching)
	posts := s.fetch(ctx, stats)

	if err := s.checkpoint(ctx); err != nil {
		return nil, err
	}

	s.setState(StateDeduping)
	fresh := s.dedupe(ctx, posts, stats)

	if err := s.checkpoint(ctx); err != nil {
		return nil, err
	}

	s.setState(StateScoring)
	candidates := s.prepare(ctx, fresh, stats)
	assessments, err := s.score(ctx, candidates, stats)
	if err != nil {
		return nil, err
	}

	extractions := make([]domain.Extraction, len(candidates))
	verifications := make([][]domain.VerificationResult, len(candidates))

	if s.config.VerificationEnabled {
		if err := s.checkpoint(ctx); err != nil {
			return nil, err
		}
		s.setState(StateExtracting)
		s.extract(ctx, candidates, extractions, stats)

		if err := s.checkpoint(ctx); err != nil {
			return nil, err
		}
		s.setState(StateVerifying)
		s.verify(ctx, extractions, verifications, stats)
	}

	if err := s.checkpoint(ctx); err != nil {
		return nil, err
	}

	s.setState(StateReporting)
	report := s.report(ctx, candidates, assessments, extractions, verifications, stats)

	stats.Duration = time.Since(startTime)
	s.logger.Info("scan cycle completed",
		"fetched", stats.Fetched,
		"deduplicated", stats.Deduplicated,
		"scored", stats.Scored,
		"heuristic", stats.Heuristic,
		"claims", stats.Claims,
		"verified", stats.Verified,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return report, nil
}

// checkpoint is the only place a cycle observes cancellation; stages
// themselves run to completion.
func (s *ScanService) checkpoint(ctx context.Context) error {
	return ctx.Err()
}

// fetch lists every configured community and records an engagement
// observation for every fetched post, including ones dedup will later
// drop, so recurring posts accumulate velocity history. A community
// that fails to list is skipped, not fatal.
func (s *ScanService) fetch(ctx context.Context, stats *domain.ScanStats) []domain.Post {
	now := time.Now().UTC()

	var posts []domain.Post
	for _, community := range s.communities {
		listed, err := s.deps.Source.ListHot(ctx, community)
		if err != nil {
			s.logger.Error("community listing failed", "community", community, "error", err)
			stats.Errors++
			continue
		}
		posts = append(posts, listed...)
	}

	for _, post := range posts {
		s.deps.Tracker.Record(post.Fingerprint(), domain.Observation{
			Timestamp:   now,
			Score:       post.Score,
			NumComments: post.NumComments,
		})
	}

	stats.Fetched = len(posts)
	return posts
}

// dedupe drops posts already reported in an earlier cycle and posts
// repeated within this fetch. If the store lookup fails every post is
// treated as seen; an empty report is safer than reporting a post twice.
func (s *ScanService) dedupe(ctx context.Context, posts []domain.Post, stats *domain.ScanStats) []domain.Post {
	if len(posts) == 0 {
		return nil
	}

	fingerprints := make([]domain.Fingerprint, len(posts))
	for i, post := range posts {
		fingerprints[i] = post.Fingerprint()
	}

	seen, err := s.deps.Dedup.Seen(ctx, fingerprints)
	if err != nil {
		s.logger.Error("dedup lookup failed, dropping all posts this cycle", "error", err)
		stats.Errors++
		stats.Deduplicated = len(posts)
		return nil
	}

	inCycle := make(map[domain.Fingerprint]bool, len(posts))
	var fresh []domain.Post
	for _, post := range posts {
		fp := post.Fingerprint()
		if seen[fp] || inCycle[fp] {
			stats.Deduplicated++
			continue
		}
		inCycle[fp] = true
		fresh = append(fresh, post)
	}

	s.logger.Debug("dedup complete", "fresh", len(fresh), "dropped", stats.Deduplicated)
	return fresh
}

// prepare builds scoring candidates: current velocity plus external
// page text for link posts. Scrape failures cost only the summary.
func (s *ScanService) prepare(ctx context.Context, posts []domain.Post, stats *domain.ScanStats) []domain.Candidate {
	candidates := make([]domain.Candidate, len(posts))
	for i, post := range posts {
		candidates[i] = domain.Candidate{
			Post:     post,
			Velocity: s.deps.Tracker.Velocity(post.Fingerprint()),
		}

		if post.URL == "" || s.deps.Fetcher == nil || !s.deps.Fetcher.Scrapeable(post.URL) {
			continue
		}
		text, err := s.deps.Fetcher.FetchText(ctx, post.URL)
		if err != nil {
			s.logger.Warn("external content fetch failed", "post_id", post.ID, "url", post.URL, "error", err)
			stats.Errors++
			continue
		}
		candidates[i].ExternalSummary = text
	}
	return candidates
}

func (s *ScanService) score(ctx context.Context, candidates []domain.Candidate, stats *domain.ScanStats) ([]domain.RiskAssessment, error) {
	var assessments []domain.RiskAssessment

	for _, batch := range classifier.FormBatches(candidates, s.config.MaxBatchSize) {
		batchAssessments, outcome, err := s.deps.Classifier.Classify(ctx, batch)
		if err != nil {
			s.logger.Error("scoring aborted", "error", err)
			return nil, err
		}
		if outcome.Degraded() {
			s.logger.Warn("batch degraded to heuristic", "reason", outcome.Reason, "batch_size", len(batch))
		}
		assessments = append(assessments, batchAssessments...)
	}

	for _, a := range assessments {
		if a.Heuristic {
			stats.Heuristic++
		}
	}
	stats.Scored = len(assessments)

	return assessments, nil
}

// extract runs claim extraction for every candidate, concurrently up to
// the configured cap. Results land at the candidate's own index, so
// completion order never changes output order.
func (s *ScanService) extract(ctx context.Context, candidates []domain.Candidate, extractions []domain.Extraction, stats *domain.ScanStats) {
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for i := range candidates {
		g.Go(func() error {
			extractions[i] = s.deps.Extractor.Extract(ctx, candidates[i].Post, candidates[i].ExternalSummary)
			return nil
		})
	}
	_ = g.Wait()

	for _, e := range extractions {
		stats.Claims += len(e.Claims)
		if e.Outcome.Degraded() {
			stats.Errors++
		}
	}
}

// verify resolves every extracted claim, concurrently up to the cap.
// A claim's failure is recorded in its own result and never blocks
// sibling claims.
func (s *ScanService) verify(ctx context.Context, extractions []domain.Extraction, verifications [][]domain.VerificationResult, stats *domain.ScanStats) {
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for i := range extractions {
		verifications[i] = make([]domain.VerificationResult, len(extractions[i].Claims))
		for j := range extractions[i].Claims {
			g.Go(func() error {
				verifications[i][j] = s.deps.Verifier.Verify(ctx, extractions[i].Claims[j])
				return nil
			})
		}
	}
	_ = g.Wait()

	for i := range verifications {
		for _, v := range verifications[i] {
			if v.Verdict == domain.VerdictError {
				stats.Errors++
			} else {
				stats.Verified++
			}
		}
	}
}

// report assembles the cycle's report, archives it together with the
// fingerprint marks in one transaction, and publishes it. Once this
// stage is entered a report is always returned; storage and broker
// failures are logged, not raised.
func (s *ScanService) report(
	ctx context.Context,
	candidates []domain.Candidate,
	assessments []domain.RiskAssessment,
	extractions []domain.Extraction,
	verifications [][]domain.VerificationResult,
	stats *domain.ScanStats,
) *domain.ScanReport {
	report := s.assemble(candidates, assessments, extractions, verifications)

	fingerprints := make([]domain.Fingerprint, len(candidates))
	for i, cand := range candidates {
		fingerprints[i] = cand.Post.Fingerprint()
	}

	err := s.deps.TxManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.deps.Reports.Insert(txCtx, report); err != nil {
			return err
		}
		return s.deps.Dedup.Mark(txCtx, fingerprints)
	})
	if err != nil {
		// The report still goes out; the posts will be eligible again
		// next cycle because their fingerprints were not marked.
		s.logger.Error("report archive failed", "error", err)
		stats.Errors++
	}

	if s.deps.Publisher != nil {
		if err := s.deps.Publisher.Publish(ctx, report); err != nil {
			s.logger.Error("report publish failed", "error", err)
			stats.Errors++
		}
	}

	return report
}

// assemble orders posts by risk level, then velocity, then fetch order,
// and projects each into the report contract.
func (s *ScanService) assemble(
	candidates []domain.Candidate,
	assessments []domain.RiskAssessment,
	extractions []domain.Extraction,
	verifications [][]domain.VerificationResult,
) *domain.ScanReport {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if ra, rb := assessments[ia].Level.Rank(), assessments[ib].Level.Rank(); ra != rb {
			return ra > rb
		}
		return velocityKey(assessments[ia].Velocity) > velocityKey(assessments[ib].Velocity)
	})

	report := &domain.ScanReport{
		Timestamp:  time.Now().UTC(),
		TotalPosts: len(candidates),
		Posts:      make([]domain.PostReport, 0, len(candidates)),
	}

	for _, i := range order {
		post := candidates[i].Post
		entry := domain.PostReport{
			ID:          post.ID,
			Title:       post.Title,
			Community:   post.Community,
			Score:       post.Score,
			NumComments: post.NumComments,
			URL:         post.URL,
			CreatedAt:   post.CreatedAt,
			RiskLevel:   assessments[i].Level,
			Rationale:   assessments[i].Rationale,
			Heuristic:   assessments[i].Heuristic,
		}

		if assessments[i].Velocity.Valid {
			perHour := assessments[i].Velocity.PerHour
			entry.VelocityScore = &perHour
		}

		for _, claim := range extractions[i].Claims {
			entry.Claims = append(entry.Claims, claim.Text)
		}
		for _, result := range verifications[i] {
			entry.Verifications = append(entry.Verifications, domain.VerificationReport{
				Claim:        result.Claim.Text,
				Verdict:      result.Verdict,
				Confidence:   result.Confidence,
				SourcesFound: result.SourcesFound,
				Reasoning:    result.Reasoning,
			})
		}

		report.Posts = append(report.Posts, entry)
	}

	return report
}

// velocityKey orders valid velocities above any invalid one.
func velocityKey(v domain.VelocityScore) float64 {
	if !v.Valid {
		return -1e18
	}
	return v.PerHour
}

func (s *ScanService) concurrency() int {
	if s.config.ConcurrencyCap < 1 {
		return 1
	}
	return s.config.ConcurrencyCap
}
