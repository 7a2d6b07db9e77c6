package domain

import "time"

// ScanReport is the single externally visible artifact of one pipeline
// run. Its JSON shape is the data contract consumers depend on; field
// names must not change.
type ScanReport struct {
	Timestamp  time.Time    `json:"timestamp"`
	TotalPosts int          `json:"total_posts"`
	Posts      []PostReport `json:"posts"`
}

// PostReport is one post's entry in a scan report. VelocityScore is null
// when there was insufficient data to compute a velocity.
type PostReport struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Community     string               `json:"community"`
	Score         int                  `json:"score"`
	NumComments   int                  `json:"num_comments"`
	URL           string               `json:"url"`
	CreatedAt     time.Time            `json:"created_at"`
	RiskLevel     RiskLevel            `json:"risk_level"`
	VelocityScore *float64             `json:"velocity_score"`
	Rationale     string               `json:"rationale"`
	Heuristic     bool                 `json:"heuristic"`
	Claims        []string             `json:"claims"`
	Verifications []VerificationReport `json:"verifications"`
}

// VerificationReport is the report-level projection of a VerificationResult.
type VerificationReport struct {
	Claim        string     `json:"claim"`
	Verdict      Verdict    `json:"verdict"`
	Confidence   Confidence `json:"confidence"`
	SourcesFound int        `json:"sources_found"`
	Reasoning    string     `json:"reasoning"`
}
