package models

import "github.com/procureguard/trimatch/ent"

// CreateEventRequest contains fields for persisting a progress event
type CreateEventRequest struct {
	SessionID string         `json:"session_id"`
	Channel   string         `json:"channel"`
	Payload   map[string]any `json:"payload"`
}

// EventResponse wraps a ProgressEvent
type EventResponse struct {
	*ent.ProgressEvent
}

// EventsResponse contains list of events since a given ID
type EventsResponse struct {
	Events []*ent.ProgressEvent `json:"events"`
}
