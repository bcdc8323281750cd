package models

import (
	"time"

	"github.com/procureguard/trimatch/ent"
)

// CreateSessionRequest contains fields for submitting a reconciliation
type CreateSessionRequest struct {
	SessionID       string         `json:"session_id"`
	TenantID        string         `json:"tenant_id"`
	Documents       DocumentBundle `json:"documents"`
	SessionMetadata map[string]any `json:"session_metadata,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Status         string     `json:"status,omitempty"`
	TenantID       string     `json:"tenant_id,omitempty"`
	VendorName     string     `json:"vendor_name,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// SessionResponse wraps a ReconSession with optional loaded edges
type SessionResponse struct {
	*ent.ReconSession
	// Edges can be accessed via ReconSession.Edges when loaded
}

// SessionListResponse contains paginated session list
type SessionListResponse struct {
	Sessions   []*ent.ReconSession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
