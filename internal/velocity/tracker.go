package velocity

import (
	"sync"
	"time"

	"trend_sentinel/internal/domain"
)

// Tracker keeps rolling engagement observations per fingerprint and
// derives a growth rate from them. Observations live in memory for the
// lifetime of the process; the dedup store is the only state that
// survives restarts.
type Tracker struct {
	mu            sync.Mutex
	observations  map[domain.Fingerprint][]domain.Observation
	commentWeight float64
	retention     time.Duration
}

func NewTracker(commentWeight float64, retention time.Duration) *Tracker {
	return &Tracker{
		observations:  make(map[domain.Fingerprint][]domain.Observation),
		commentWeight: commentWeight,
		retention:     retention,
	}
}

// Record appends an observation and prunes entries that fell out of the
// retention window. The most recent observation is never pruned, so a
// post that reappears after a long gap still has a reference point.
func (t *Tracker) Record(fp domain.Fingerprint, obs domain.Observation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	history := append(t.observations[fp], obs)

	newest := history[len(history)-1]
	for _, o := range history {
		if o.Timestamp.After(newest.Timestamp) {
			newest = o
		}
	}

	cutoff := newest.Timestamp.Add(-t.retention)
	kept := history[:0]
	for _, o := range history {
		if !o.Timestamp.Before(cutoff) || o == newest {
			kept = append(kept, o)
		}
	}

	t.observations[fp] = kept
}

// Velocity computes (Δscore + weight·Δcomments) / Δtime between the
// earliest and latest retained observations. Fewer than two
// observations, or two with equal timestamps, yield an invalid score.
func (t *Tracker) Velocity(fp domain.Fingerprint) domain.VelocityScore {
	t.mu.Lock()
	defer t.mu.Unlock()

	history := t.observations[fp]
	if len(history) < 2 {
		return domain.VelocityScore{}
	}

	earliest, latest := history[0], history[0]
	for _, o := range history[1:] {
		if o.Timestamp.Before(earliest.Timestamp) {
			earliest = o
		}
		if o.Timestamp.After(latest.Timestamp) {
			latest = o
		}
	}

	elapsed := latest.Timestamp.Sub(earliest.Timestamp)
	if elapsed <= 0 {
		return domain.VelocityScore{}
	}

	growth := float64(latest.Score-earliest.Score) +
		t.commentWeight*float64(latest.NumComments-earliest.NumComments)

	return domain.VelocityScore{
		PerHour: growth / elapsed.Hours(),
		Valid:   true,
	}
}

// Tracked returns the number of fingerprints with at least one observation.
func (t *Tracker) Tracked() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observations)
}
