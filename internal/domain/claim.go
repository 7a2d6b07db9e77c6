package domain

// Claim is a candidate verifiable assertion extracted from a post.
type Claim struct {
	Fingerprint Fingerprint
	Text        string
}

// Verdict is the outcome of verifying one claim. VerdictError is used
// exclusively when the verification capability itself failed; an
// inconclusive but successful check yields VerdictUncertain.
type Verdict string

const (
	VerdictTrue      Verdict = "true"
	VerdictFalse     Verdict = "false"
	VerdictMixed     Verdict = "mixed"
	VerdictUncertain Verdict = "uncertain"
	VerdictError     Verdict = "error"
)

// Valid reports whether the verdict is a known value.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictMixed, VerdictUncertain, VerdictError:
		return true
	}
	return false
}

// Confidence expresses how strongly the evidence supports the verdict.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether the confidence is a known value.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// VerificationResult is the terminal record of verifying one claim.
type VerificationResult struct {
	Claim        Claim
	Verdict      Verdict
	Confidence   Confidence
	SourcesFound int
	Reasoning    string
}

// Evidence is one search hit consulted during verification.
type Evidence struct {
	Title   string
	Snippet string
	URL     string
}

// EvidenceAnalysis is the validated conclusion the analysis capability
// draws from a set of evidence. Verdict here never carries VerdictError;
// capability failures surface as errors, not analyses.
type EvidenceAnalysis struct {
	Verdict    Verdict
	Confidence Confidence
	Reasoning  string
}

// ExtractionUnavailable is the sentinel summary used when claim
// extraction failed for a post.
const ExtractionUnavailable = "extraction unavailable"

// Extraction is the claim-extraction stage output for one post. Zero
// claims is a valid outcome for non-factual content.
type Extraction struct {
	Summary string
	Claims  []Claim
	Outcome Outcome
}
