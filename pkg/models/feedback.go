package models

// Reviewer feedback outcomes on past divergence alerts.
const (
	OutcomeCorrect       = "correct"
	OutcomeFalsePositive = "false_positive"
	OutcomeFalseNegative = "false_negative"
)

// ValidOutcome reports whether s is a known feedback outcome.
func ValidOutcome(s string) bool {
	switch s {
	case OutcomeCorrect, OutcomeFalsePositive, OutcomeFalseNegative:
		return true
	}
	return false
}

// FeedbackRequest records a reviewer's judgement of a session's
// divergence outcome; it drives per-tenant threshold adaptation.
type FeedbackRequest struct {
	SessionID string `json:"session_id"`
	Outcome   string `json:"outcome"`
	Reviewer  string `json:"reviewer,omitempty"`
}

// FeedbackSample is one stored observation used by the threshold store.
type FeedbackSample struct {
	Similarity float64 `json:"similarity"`
	Threshold  float64 `json:"threshold"`
	WasAlert   bool    `json:"was_alert"`
	Outcome    string  `json:"outcome"`
}

// ThresholdResponse reports a tenant's current divergence threshold.
type ThresholdResponse struct {
	TenantID    string  `json:"tenant_id"`
	Threshold   float64 `json:"threshold"`
	SampleCount int     `json:"sample_count"`
	UsingPrior  bool    `json:"using_prior"`
}
