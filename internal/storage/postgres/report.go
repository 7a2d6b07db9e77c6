package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trend_sentinel/internal/domain"
)

// ReportStore archives published scan reports. The full report is kept
// as JSONB so historical reports survive schema evolution.
type ReportStore struct {
	db *sqlx.DB
}

func NewReportStore(db *sqlx.DB) *ReportStore {
	return &ReportStore{db: db}
}

// Insert archives one report and returns its id. Joins the ambient
// transaction when one is present in the context.
func (s *ReportStore) Insert(ctx context.Context, report *domain.ScanReport) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `
		INSERT INTO scan_reports (id, created_at, total_posts, payload)
		VALUES ($1, $2, $3, $4)`

	exec := GetExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx, query, id, report.Timestamp, report.TotalPosts, payload); err != nil {
		return "", err
	}

	return id, nil
}
