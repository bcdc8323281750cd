package api

import (
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/pkg/services"
)

// SubmitResponse is returned by POST /api/v1/reconciliations.
type SubmitResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/sessions/:id/cancel.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// SessionEventsResponse is returned by GET /api/v1/sessions/:id/events.
// LastEventID is the cursor for the next catch-up call.
type SessionEventsResponse struct {
	SessionID   string               `json:"session_id"`
	Events      []*ent.ProgressEvent `json:"events"`
	LastEventID int                  `json:"last_event_id"`
}

// FilterOptionsResponse is returned by GET /api/v1/sessions/filter-options.
type FilterOptionsResponse struct {
	Vendors  []string `json:"vendors"`
	Tenants  []string `json:"tenants"`
	Statuses []string `json:"statuses"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string                    `json:"status"`
	Version  string                    `json:"version"`
	Checks   map[string]HealthCheck    `json:"checks"`
	Warnings []*services.SystemWarning `json:"warnings,omitempty"`
}

// HealthCheck is one component's health line in HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
