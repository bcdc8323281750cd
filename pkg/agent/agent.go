// Package agent implements the six reconciliation stages as discrete
// agents sharing one execution contract. Each agent reads the state
// slots written by earlier stages and fills exactly its own; ordering,
// deadlines, trace and the stage-level started/completed events belong
// to the supervisor, not to the agents.
package agent

import (
	"context"

	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/retrieval"
)

// Agent is one stage of the reconciliation pipeline. A returned error
// means the stage failed outright; recoverable trouble is recorded on
// the state as non-fatal errors instead, so the supervisor can keep
// routing.
type Agent interface {
	Stage() pipeline.Stage
	Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error
}

// Router is the slice of llm.Router the agents call. Defined as an
// interface here so tests can script completions and vectors without a
// provider chain.
type Router interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error)
	ReasoningVector(ctx context.Context, prompt string) (*llm.Vector, error)
}

// EventPublisher publishes progress events for WebSocket delivery.
// Implemented by events.EventPublisher and events.Bus; defined as an
// interface here to avoid a circular import between pkg/agent and the
// event persistence wiring and to enable testing with mocks.
//
// Each method accepts a specific typed payload struct, no untyped maps.
type EventPublisher interface {
	PublishWorkflowStarted(ctx context.Context, sessionID string, payload events.WorkflowStartedPayload) error
	PublishAgentStarted(ctx context.Context, sessionID string, payload events.AgentStartedPayload) error
	PublishAgentProgress(ctx context.Context, sessionID string, payload events.AgentProgressPayload) error
	PublishAgentCompleted(ctx context.Context, sessionID string, payload events.AgentCompletedPayload) error
	PublishDivergenceAlert(ctx context.Context, sessionID string, payload events.DivergenceAlertPayload) error
	PublishDivergenceClear(ctx context.Context, sessionID string, payload events.DivergenceClearPayload) error
	PublishWorkflowComplete(ctx context.Context, sessionID string, payload events.WorkflowCompletePayload) error
	PublishWorkflowError(ctx context.Context, sessionID string, payload events.WorkflowErrorPayload) error
}

// ThresholdSource resolves the per-tenant divergence threshold.
// Implemented by threshold.Store; defined as an interface here so tests
// can pin a threshold without feeding two hundred samples.
type ThresholdSource interface {
	Threshold(tenantID string) float64
}

// ExecutionContext carries the dependencies an agent needs during one
// stage execution. Created by the supervisor per session run and shared
// across that session's stages.
type ExecutionContext struct {
	SessionID string
	TenantID  string

	// Dependencies (injected by the supervisor).
	Router     Router
	Publisher  EventPublisher
	Thresholds ThresholdSource

	// Retriever overrides chunk retrieval for the extraction stage.
	// nil means retrieve from the session's own document bundle.
	Retriever retrieval.Source

	// Tenant policy inputs consumed by the compliance stage.
	KnownVendors        []string
	PriorInvoiceNumbers []string

	// SuppressDegradedAlerts downgrades divergence alerts computed from
	// deterministic fallback vectors to a non-alerting metric.
	SuppressDegradedAlerts bool
}

// publishProgress emits a fine-grained progress tick. Delivery is best
// effort: a slow subscriber or missing publisher never fails a stage.
func publishProgress(ctx context.Context, execCtx *ExecutionContext, stage pipeline.Stage, message string) {
	if execCtx.Publisher == nil {
		return
	}
	payload := events.NewAgentProgressPayload(execCtx.SessionID, string(stage), message)
	_ = execCtx.Publisher.PublishAgentProgress(ctx, execCtx.SessionID, payload)
}
