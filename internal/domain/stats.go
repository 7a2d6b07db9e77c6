package domain

import "time"

// ScanStats holds statistics about one scan cycle.
type ScanStats struct {
	Fetched      int
	Deduplicated int
	Scored       int
	Heuristic    int
	Claims       int
	Verified     int
	Errors       int
	Duration     time.Duration
}
