package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trend_sentinel/internal/domain"
)

// FingerprintStore persists the set of post fingerprints that have
// already appeared in a published report. It backs cross-cycle dedup.
type FingerprintStore struct {
	db *sqlx.DB
}

func NewFingerprintStore(db *sqlx.DB) *FingerprintStore {
	return &FingerprintStore{db: db}
}

// Seen returns the subset of the given fingerprints that are already
// recorded. Fingerprints absent from the result are new.
func (s *FingerprintStore) Seen(ctx context.Context, fingerprints []domain.Fingerprint) (map[domain.Fingerprint]bool, error) {
	seen := make(map[domain.Fingerprint]bool)
	if len(fingerprints) == 0 {
		return seen, nil
	}

	values := make([]string, len(fingerprints))
	for i, fp := range fingerprints {
		values[i] = string(fp)
	}

	query := `SELECT fingerprint FROM seen_fingerprints WHERE fingerprint = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(values))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, err
		}
		seen[domain.Fingerprint(fp)] = true
	}

	return seen, rows.Err()
}

// Mark records fingerprints as reported. Idempotent; marking an already
// recorded fingerprint is not an error. Joins the ambient transaction
// when one is present in the context.
func (s *FingerprintStore) Mark(ctx context.Context, fingerprints []domain.Fingerprint) error {
	if len(fingerprints) == 0 {
		return nil
	}

	values := make([]string, len(fingerprints))
	for i, fp := range fingerprints {
		values[i] = string(fp)
	}

	query := `
		INSERT INTO seen_fingerprints (fingerprint)
		SELECT unnest($1::text[])
		ON CONFLICT (fingerprint) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query, pq.Array(values))
	return err
}
