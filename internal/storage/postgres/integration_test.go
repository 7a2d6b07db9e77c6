//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"trend_sentinel/internal/domain"
	"trend_sentinel/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_seen_fingerprints.up.sql"),
			filepath.Join(migrationsPath, "002_create_scan_reports.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM seen_fingerprints")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM scan_reports")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func fingerprints(posts ...domain.Post) []domain.Fingerprint {
	fps := make([]domain.Fingerprint, len(posts))
	for i, p := range posts {
		fps[i] = p.Fingerprint()
	}
	return fps
}

func (s *PostgresIntegrationSuite) TestFingerprintStore_SeenIsEmptyForNewPosts() {
	store := NewFingerprintStore(s.db)

	seen, err := store.Seen(s.ctx, fingerprints(
		domain.Post{ID: "a1", Community: "worldnews"},
		domain.Post{ID: "a2", Community: "worldnews"},
	))
	s.NoError(err)
	s.Empty(seen)
}

func (s *PostgresIntegrationSuite) TestFingerprintStore_MarkThenSeen() {
	store := NewFingerprintStore(s.db)

	first := domain.Post{ID: "a1", Community: "worldnews"}
	second := domain.Post{ID: "a2", Community: "health"}

	err := store.Mark(s.ctx, fingerprints(first))
	s.NoError(err)

	seen, err := store.Seen(s.ctx, fingerprints(first, second))
	s.NoError(err)
	s.Len(seen, 1)
	s.True(seen[first.Fingerprint()])
	s.False(seen[second.Fingerprint()])
}

func (s *PostgresIntegrationSuite) TestFingerprintStore_MarkIsIdempotent() {
	store := NewFingerprintStore(s.db)
	fps := fingerprints(domain.Post{ID: "a1", Community: "worldnews"})

	s.NoError(store.Mark(s.ctx, fps))
	s.NoError(store.Mark(s.ctx, fps))

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM seen_fingerprints")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestFingerprintStore_SameIDDifferentCommunity() {
	store := NewFingerprintStore(s.db)

	worldnews := domain.Post{ID: "a1", Community: "worldnews"}
	health := domain.Post{ID: "a1", Community: "health"}

	s.NoError(store.Mark(s.ctx, fingerprints(worldnews)))

	seen, err := store.Seen(s.ctx, fingerprints(health))
	s.NoError(err)
	s.Empty(seen)
}

func (s *PostgresIntegrationSuite) TestReportStore_Insert() {
	store := NewReportStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	report := &domain.ScanReport{
		Timestamp:  now,
		TotalPosts: 1,
		Posts: []domain.PostReport{
			{
				ID:            "a1",
				Title:         "Test post",
				Community:     "worldnews",
				RiskLevel:     domain.RiskHigh,
				VelocityScore: utils.Ptr(72.5),
				Rationale:     "unsourced claim",
			},
		},
	}

	id, err := store.Insert(s.ctx, report)
	s.NoError(err)
	s.NotEmpty(id)

	var totalPosts int
	err = s.db.GetContext(s.ctx, &totalPosts, "SELECT total_posts FROM scan_reports WHERE id = $1", id)
	s.NoError(err)
	s.Equal(1, totalPosts)

	var riskLevel string
	err = s.db.GetContext(s.ctx, &riskLevel, "SELECT payload->'posts'->0->>'risk_level' FROM scan_reports WHERE id = $1", id)
	s.NoError(err)
	s.Equal("HIGH", riskLevel)
}

func (s *PostgresIntegrationSuite) TestTransaction_MarkAndArchiveCommitTogether() {
	tm := NewTransactionManager(s.db)
	fingerprintStore := NewFingerprintStore(s.db)
	reportStore := NewReportStore(s.db)

	post := domain.Post{ID: "a1", Community: "worldnews"}
	report := &domain.ScanReport{Timestamp: time.Now().UTC(), TotalPosts: 1}

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := reportStore.Insert(ctx, report); err != nil {
			return err
		}
		return fingerprintStore.Mark(ctx, fingerprints(post))
	})
	s.NoError(err)

	seen, err := fingerprintStore.Seen(s.ctx, fingerprints(post))
	s.NoError(err)
	s.True(seen[post.Fingerprint()])

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM scan_reports")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackLeavesNothingBehind() {
	tm := NewTransactionManager(s.db)
	fingerprintStore := NewFingerprintStore(s.db)
	reportStore := NewReportStore(s.db)

	post := domain.Post{ID: "a1", Community: "worldnews"}

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := reportStore.Insert(ctx, &domain.ScanReport{Timestamp: time.Now().UTC()}); err != nil {
			return err
		}
		if err := fingerprintStore.Mark(ctx, fingerprints(post)); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	seen, err := fingerprintStore.Seen(s.ctx, fingerprints(post))
	s.NoError(err)
	s.Empty(seen)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM scan_reports")
	s.NoError(err)
	s.Equal(0, count)
}
