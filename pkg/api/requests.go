package api

import (
	"github.com/procureguard/trimatch/pkg/models"
)

// SubmitReconciliationRequest is the HTTP request body for
// POST /api/v1/reconciliations.
type SubmitReconciliationRequest struct {
	SessionID string                `json:"session_id,omitempty"`
	TenantID  string                `json:"tenant_id"`
	Documents models.DocumentBundle `json:"documents"`
	Metadata  map[string]any        `json:"metadata,omitempty"`
}

// SubmitFeedbackRequest is the HTTP request body for
// POST /api/v1/sessions/:id/feedback.
type SubmitFeedbackRequest struct {
	Outcome  string `json:"outcome"`
	Reviewer string `json:"reviewer,omitempty"`
}
