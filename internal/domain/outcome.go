package domain

// OutcomeStatus tells how a pipeline stage arrived at its value.
type OutcomeStatus string

const (
	OutcomeOK       OutcomeStatus = "ok"
	OutcomeFallback OutcomeStatus = "fallback"
	OutcomeFailed   OutcomeStatus = "failed"
)

// Outcome annotates a stage result so the orchestrator and tests can
// distinguish a real external result from degraded fallback behavior
// without inspecting error strings.
type Outcome struct {
	Status OutcomeStatus
	Reason string
}

func OK() Outcome {
	return Outcome{Status: OutcomeOK}
}

func Fallback(reason string) Outcome {
	return Outcome{Status: OutcomeFallback, Reason: reason}
}

func Failed(reason string) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason}
}

// Degraded reports whether the stage fell back or failed.
func (o Outcome) Degraded() bool {
	return o.Status != OutcomeOK
}
