package domain

// RiskLevel is the coarse misinformation-likelihood classification.
// Levels are totally ordered HIGH > MEDIUM > LOW.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// Valid reports whether the level is one of the three known values.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// Rank maps the level onto the total order, higher is riskier.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// RecommendedAction returns the follow-up appropriate for the level.
func (r RiskLevel) RecommendedAction() string {
	switch r {
	case RiskHigh:
		return "verify immediately"
	case RiskMedium:
		return "monitor"
	default:
		return "none"
	}
}

// RiskAssessment is the scoring decision for one post in one cycle.
// Created once, immutable. Heuristic marks assessments produced by the
// local threshold fallback instead of the classification capability.
type RiskAssessment struct {
	Fingerprint Fingerprint
	Level       RiskLevel
	Velocity    VelocityScore
	Rationale   string
	Action      string
	Heuristic   bool
}
