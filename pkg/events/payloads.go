package events

import "time"

// BasePayload carries the envelope fields present on every event.
// Payload structs embed it so routing code (and the frontend) can rely on
// type, sessionId and timestamp being present at the top level.
type BasePayload struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"` // empty only for ping
	Timestamp string `json:"timestamp"`           // RFC3339Nano
}

func newBase(eventType, sessionID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// WorkflowStartedPayload is the payload for workflow_started events.
// Published once when the supervisor picks up a session.
type WorkflowStartedPayload struct {
	BasePayload
	TotalStages int `json:"totalStages"`
}

// NewWorkflowStartedPayload builds a workflow_started payload with the
// current timestamp.
func NewWorkflowStartedPayload(sessionID string, totalStages int) WorkflowStartedPayload {
	return WorkflowStartedPayload{
		BasePayload: newBase(EventTypeWorkflowStarted, sessionID),
		TotalStages: totalStages,
	}
}

// AgentStartedPayload is the payload for agent_started events.
// Published when a stage agent begins executing.
type AgentStartedPayload struct {
	BasePayload
	Stage   string `json:"stage"`
	Message string `json:"message,omitempty"`
}

// NewAgentStartedPayload builds an agent_started payload.
func NewAgentStartedPayload(sessionID, stage, message string) AgentStartedPayload {
	return AgentStartedPayload{
		BasePayload: newBase(EventTypeAgentStarted, sessionID),
		Stage:       stage,
		Message:     message,
	}
}

// AgentProgressPayload is the payload for agent_progress transient events.
// Published for intra-stage progress: high frequency, ephemeral.
type AgentProgressPayload struct {
	BasePayload
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// NewAgentProgressPayload builds an agent_progress payload.
func NewAgentProgressPayload(sessionID, stage, message string) AgentProgressPayload {
	return AgentProgressPayload{
		BasePayload: newBase(EventTypeAgentProgress, sessionID),
		Stage:       stage,
		Message:     message,
	}
}

// AgentCompletedPayload is the payload for agent_completed events.
// Published when a stage agent finishes, whatever the outcome.
type AgentCompletedPayload struct {
	BasePayload
	Stage      string `json:"stage"`
	DurationMs int64  `json:"durationMs"`
}

// NewAgentCompletedPayload builds an agent_completed payload.
func NewAgentCompletedPayload(sessionID, stage string, durationMs int64) AgentCompletedPayload {
	return AgentCompletedPayload{
		BasePayload: newBase(EventTypeAgentCompleted, sessionID),
		Stage:       stage,
		DurationMs:  durationMs,
	}
}

// DivergenceAlertPayload is the payload for divergence_alert events.
// Published when the shadow pass similarity falls below the active threshold.
type DivergenceAlertPayload struct {
	BasePayload
	Similarity          float64 `json:"similarity"`
	Threshold           float64 `json:"threshold"`
	PerturbationSummary string  `json:"perturbationSummary,omitempty"`
}

// NewDivergenceAlertPayload builds a divergence_alert payload.
func NewDivergenceAlertPayload(sessionID string, similarity, threshold float64, perturbationSummary string) DivergenceAlertPayload {
	return DivergenceAlertPayload{
		BasePayload:         newBase(EventTypeDivergenceAlert, sessionID),
		Similarity:          similarity,
		Threshold:           threshold,
		PerturbationSummary: perturbationSummary,
	}
}

// DivergenceClearPayload is the payload for divergence_clear events.
// Published when the shadow pass completes without triggering an alert.
type DivergenceClearPayload struct {
	BasePayload
	Similarity float64 `json:"similarity"`
}

// NewDivergenceClearPayload builds a divergence_clear payload.
func NewDivergenceClearPayload(sessionID string, similarity float64) DivergenceClearPayload {
	return DivergenceClearPayload{
		BasePayload: newBase(EventTypeDivergenceClear, sessionID),
		Similarity:  similarity,
	}
}

// WorkflowCompletePayload is the payload for workflow_complete events.
// Terminal: the bus closes every subscription on the session channel after
// delivering it.
type WorkflowCompletePayload struct {
	BasePayload
	Status         string `json:"status"` // terminal session status: matched, discrepancy_found, divergence_alert, exception, failed, cancelled
	VerdictSummary string `json:"verdictSummary,omitempty"`
}

// NewWorkflowCompletePayload builds a workflow_complete payload.
func NewWorkflowCompletePayload(sessionID, status, verdictSummary string) WorkflowCompletePayload {
	return WorkflowCompletePayload{
		BasePayload:    newBase(EventTypeWorkflowComplete, sessionID),
		Status:         status,
		VerdictSummary: verdictSummary,
	}
}

// WorkflowErrorPayload is the payload for workflow_error events.
// Published when a stage records an error, fatal or not.
type WorkflowErrorPayload struct {
	BasePayload
	Stage   string `json:"stage,omitempty"`
	Message string `json:"message"`
}

// NewWorkflowErrorPayload builds a workflow_error payload.
func NewWorkflowErrorPayload(sessionID, stage, message string) WorkflowErrorPayload {
	return WorkflowErrorPayload{
		BasePayload: newBase(EventTypeWorkflowError, sessionID),
		Stage:       stage,
		Message:     message,
	}
}

// PingPayload is the payload for ping keepalive events. It carries no
// session: the bus fans it out to every live subscription.
type PingPayload struct {
	BasePayload
}

// NewPingPayload builds a ping payload.
func NewPingPayload() PingPayload {
	return PingPayload{BasePayload: newBase(EventTypePing, "")}
}
