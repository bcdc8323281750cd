package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes progress events for WebSocket delivery.
// Durable events are stored in the progress_events table then broadcast via
// NOTIFY. Transient events (agent_progress) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct, see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from sessionID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishWorkflowStarted persists a workflow_started event to the session
// channel and broadcasts a transient copy to the global sessions channel.
// Both publishes are best-effort: if the durable one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishWorkflowStarted(ctx context.Context, sessionID string, payload WorkflowStartedPayload) error {
	return p.publishLifecycle(ctx, sessionID, EventTypeWorkflowStarted, payload)
}

// PublishAgentStarted persists and broadcasts an agent_started event.
func (p *EventPublisher) PublishAgentStarted(ctx context.Context, sessionID string, payload AgentStartedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentStartedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeAgentStarted, payloadJSON)
}

// PublishAgentProgress broadcasts an agent_progress transient event (no DB
// persistence). Used for high-frequency intra-stage updates, lost on
// disconnect.
func (p *EventPublisher) PublishAgentProgress(ctx context.Context, sessionID string, payload AgentProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(sessionID), payloadJSON)
}

// PublishAgentCompleted persists and broadcasts an agent_completed event.
func (p *EventPublisher) PublishAgentCompleted(ctx context.Context, sessionID string, payload AgentCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeAgentCompleted, payloadJSON)
}

// PublishDivergenceAlert persists and broadcasts a divergence_alert event.
func (p *EventPublisher) PublishDivergenceAlert(ctx context.Context, sessionID string, payload DivergenceAlertPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DivergenceAlertPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeDivergenceAlert, payloadJSON)
}

// PublishDivergenceClear persists and broadcasts a divergence_clear event.
func (p *EventPublisher) PublishDivergenceClear(ctx context.Context, sessionID string, payload DivergenceClearPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DivergenceClearPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeDivergenceClear, payloadJSON)
}

// PublishWorkflowComplete persists the terminal workflow_complete event to
// the session channel and broadcasts a transient copy to the global sessions
// channel. The bus closes session subscriptions once this event is delivered.
func (p *EventPublisher) PublishWorkflowComplete(ctx context.Context, sessionID string, payload WorkflowCompletePayload) error {
	return p.publishLifecycle(ctx, sessionID, EventTypeWorkflowComplete, payload)
}

// PublishWorkflowError persists a workflow_error event to the session
// channel and broadcasts a transient copy to the global sessions channel.
func (p *EventPublisher) PublishWorkflowError(ctx context.Context, sessionID string, payload WorkflowErrorPayload) error {
	return p.publishLifecycle(ctx, sessionID, EventTypeWorkflowError, payload)
}

// publishLifecycle routes run lifecycle events: durable on the session
// channel, transient on the global sessions channel for list views.
func (p *EventPublisher) publishLifecycle(ctx context.Context, sessionID, eventType string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), eventType, payloadJSON); err != nil {
		slog.Warn("Failed to publish lifecycle event to session channel",
			"session_id", sessionID, "event_type", eventType, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish lifecycle event to global channel",
			"session_id", sessionID, "event_type", eventType, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, sessionID, channel, eventType string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to progress_events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO progress_events (session_id, channel, event_type, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		sessionID, channel, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with dbEventId for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction, held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit: INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds dbEventId to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for dbEventId injection: %w", err)
	}
	m["dbEventId"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"sessionId"`
		Stage     string `json:"stage"`
		DBEventID *int64 `json:"dbEventId,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"sessionId": routing.SessionID,
		"truncated": true,
	}
	if routing.Stage != "" {
		truncated["stage"] = routing.Stage
	}
	if routing.DBEventID != nil {
		truncated["dbEventId"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
