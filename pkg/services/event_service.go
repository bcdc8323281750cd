package services

import (
	"context"
	"fmt"
	"time"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/pkg/models"
)

// EventService manages persisted progress events for catch-up replay
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists a progress event
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.ProgressEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.ProgressEvent.Create().
		SetSessionID(req.SessionID).
		SetChannel(req.Channel).
		SetEventType(eventTypeFromPayload(req.Payload)).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// eventTypeFromPayload pulls the routed event type out of the payload
// envelope so rows are queryable without unpacking JSON.
func eventTypeFromPayload(payload map[string]any) string {
	if t, ok := payload["type"].(string); ok {
		return t
	}
	return "unknown"
}

// GetEventsSince retrieves events on a channel after the given ID, oldest
// first, capped at limit
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.ProgressEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	events, err := s.client.ProgressEvent.Query().
		Where(
			progressevent.ChannelEQ(channel),
			progressevent.IDGT(sinceID),
		).
		Order(ent.Asc(progressevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupSessionEvents removes all events for a session
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.ProgressEvent.Delete().
		Where(progressevent.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than TTL
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ProgressEvent.Delete().
		Where(progressevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
