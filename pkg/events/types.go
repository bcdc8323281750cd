// Package events provides real-time progress delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Progress Event Lifecycle
// ════════════════════════════════════════════════════════════════
//
// A reconciliation run emits a fixed sequence of progress events on its
// session channel. Clients differentiate durable events (replayable via
// catchup) from transient ones (lost on reconnect).
//
// Durable (stored in progress_events + NOTIFY):
//
//	workflow_started   {totalStages}
//	agent_started      {stage, message}          (per stage)
//	agent_completed    {stage, durationMs}       (per stage)
//	divergence_alert   {similarity, threshold, perturbationSummary}
//	divergence_clear   {similarity}
//	workflow_complete  {status, verdictSummary}  (terminal)
//	workflow_error     {stage, message}
//
// Transient (NOTIFY only, no DB persistence):
//
//	agent_progress     {stage, message}  (high frequency, ephemeral)
//	ping               {}                (bus keepalive, never persisted)
//
// workflow_complete is terminal: after the bus delivers it, every
// subscription on that session channel is closed server-side. A client
// that reconnects afterwards replays the durable history via catchup and
// sees the terminal event again.
//
// workflow_started, workflow_complete and workflow_error are additionally
// broadcast (transiently) on the global "sessions" channel so dashboard
// views can track every run without subscribing per session.
//
// ════════════════════════════════════════════════════════════════
package events

// Durable event types (stored in DB + NOTIFY).
const (
	// Run lifecycle
	EventTypeWorkflowStarted  = "workflow_started"
	EventTypeWorkflowComplete = "workflow_complete"
	EventTypeWorkflowError    = "workflow_error"

	// Stage lifecycle
	EventTypeAgentStarted   = "agent_started"
	EventTypeAgentCompleted = "agent_completed"

	// Shadow-pass verdicts from the divergence guard
	EventTypeDivergenceAlert = "divergence_alert"
	EventTypeDivergenceClear = "divergence_clear"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Intra-stage progress messages: high-frequency, ephemeral.
	EventTypeAgentProgress = "agent_progress"

	// Keepalive emitted by the bus itself, never routed through Postgres.
	EventTypePing = "ping"
)

// GlobalSessionsChannel is the channel for run-level lifecycle events.
// The session list view subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// sessionChannelPrefix namespaces per-session channels. Only channels with
// this prefix participate in terminal-close semantics on workflow_complete.
const sessionChannelPrefix = "session:"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{sessionId}"
func SessionChannel(sessionID string) string {
	return sessionChannelPrefix + sessionID
}

// IsSessionChannel reports whether a channel carries per-session events.
func IsSessionChannel(channel string) bool {
	return len(channel) > len(sessionChannelPrefix) && channel[:len(sessionChannelPrefix)] == sessionChannelPrefix
}

// ClientMessage is the JSON structure for client to server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`     // channel name (e.g. "session:abc-123")
	LastEventID *int   `json:"lastEventId,omitempty"` // for catchup
}
