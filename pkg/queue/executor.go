package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/agent"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/retrieval"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/threshold"
)

// Supervisor implements SessionExecutor by routing a session through the
// pipeline state machine. Stage order is strict; the only legal jump is
// over compliance when quantitative did not complete. A triggered
// divergence alert never halts the run: reconciliation and drafting
// still execute, and the verdict carries DIVERGENCE_ALERT.
type Supervisor struct {
	cfg        *config.Config
	client     *ent.Client
	router     agent.Router
	publisher  agent.EventPublisher
	thresholds *threshold.Store
	retriever  retrieval.Source

	agents map[pipeline.Stage]agent.Agent
}

// NewSupervisor creates the session executor.
// publisher may be nil (event streaming disabled).
// retriever may be nil (each session reads its own document bundle); a
// vector-store adapter can be dropped in here.
func NewSupervisor(cfg *config.Config, client *ent.Client, router agent.Router, publisher agent.EventPublisher, thresholds *threshold.Store, retriever retrieval.Source) *Supervisor {
	agents := make(map[pipeline.Stage]agent.Agent, pipeline.TotalStages)
	for _, a := range []agent.Agent{
		agent.NewExtractionAgent(),
		agent.NewQuantitativeAgent(),
		agent.NewComplianceAgent(),
		agent.NewDivergenceAgent(),
		agent.NewReconcilerAgent(),
		agent.NewDraftingAgent(),
	} {
		agents[a.Stage()] = a
	}
	return &Supervisor{
		cfg:        cfg,
		client:     client,
		router:     router,
		publisher:  publisher,
		thresholds: thresholds,
		retriever:  retriever,
		agents:     agents,
	}
}

// runServices groups the persistence services one pipeline run touches.
type runServices struct {
	sessions   *services.SessionService
	stages     *services.StageService
	feedback   *services.FeedbackService
	workpapers *services.WorkpaperService
}

func newRunServices(client *ent.Client, store *threshold.Store) *runServices {
	return &runServices{
		sessions:   services.NewSessionService(client),
		stages:     services.NewStageService(client),
		feedback:   services.NewFeedbackService(client, store),
		workpapers: services.NewWorkpaperService(client),
	}
}

// stageRun captures the outcome of a single stage execution.
type stageRun struct {
	stage   pipeline.Stage
	outcome pipeline.Outcome
	err     error
}

// Execute runs the session through the pipeline.
// Stage records, the divergence audit record and the workpaper are
// written progressively during the run; only the terminal session status
// is left to the worker.
func (s *Supervisor) Execute(ctx context.Context, sess *ent.ReconSession) *ExecutionResult {
	logger := slog.With("session_id", sess.ID, "tenant_id", sess.TenantID)
	logger.Info("Supervisor: starting pipeline run")

	var bundle models.DocumentBundle
	if err := json.Unmarshal([]byte(sess.DocumentBundle), &bundle); err != nil {
		logger.Error("Failed to decode document bundle", "error", err)
		return &ExecutionResult{
			Status: reconsession.StatusFailed,
			Errors: []pipeline.StateError{{
				Stage:   pipeline.StageExtraction,
				Kind:    pipeline.KindParseError,
				Message: fmt.Sprintf("document bundle: %v", err),
				Fatal:   true,
			}},
			Error: fmt.Errorf("decoding document bundle: %w", err),
		}
	}

	svc := newRunServices(s.client, s.thresholds)
	state := pipeline.NewState(sess.ID, sess.TenantID, bundle)
	execCtx := &agent.ExecutionContext{
		SessionID:              sess.ID,
		TenantID:               sess.TenantID,
		Router:                 s.router,
		Publisher:              s.publisher,
		Thresholds:             s.thresholds,
		Retriever:              s.retriever,
		KnownVendors:           s.cfg.Compliance.KnownVendors,
		SuppressDegradedAlerts: s.cfg.Divergence.SuppressDegradedAlerts,
	}

	// A session rescued from a dead pod reruns from extraction; drop the
	// abandoned attempt's stage rows so the indexes are free again.
	if cleared, err := svc.stages.ClearStageExecutions(ctx, sess.ID); err != nil {
		logger.Warn("Failed to clear stage executions from a previous attempt", "error", err)
	} else if cleared > 0 {
		logger.Info("Cleared stage executions from a previous attempt", "count", cleared)
	}

	s.publishWorkflowStarted(ctx, sess.ID)

	for state.NextAction != pipeline.StageEnd {
		if r := s.mapInterruption(ctx, state); r != nil {
			logger.Info("Supervisor: run interrupted", "status", r.Status)
			return r
		}

		stage := state.NextAction
		run := s.executeStage(ctx, svc, execCtx, state, stage)
		s.applyStageEffects(ctx, svc, execCtx, state, stage)

		if r := s.mapInterruption(ctx, state); r != nil {
			logger.Info("Supervisor: run interrupted", "status", r.Status, "stage", stage)
			return r
		}

		next, terminal := s.route(ctx, logger, svc, state, run)
		if terminal != nil {
			return terminal
		}
		state.NextAction = next
	}
	state.CurrentStage = pipeline.StageEnd

	return s.finalResult(logger, state)
}

// executeStage records, deadlines and runs one stage, then writes its
// terminal stage record and boundary events.
func (s *Supervisor) executeStage(ctx context.Context, svc *runServices, execCtx *agent.ExecutionContext, state *pipeline.State, stage pipeline.Stage) stageRun {
	logger := slog.With("session_id", state.SessionID, "stage", stage)
	state.CurrentStage = stage

	if err := svc.sessions.SetCurrentStage(ctx, state.SessionID, string(stage)); err != nil {
		logger.Warn("Failed to record current stage", "error", err)
	}

	exec, err := svc.stages.BeginStage(ctx, models.CreateStageExecutionRequest{
		SessionID:  state.SessionID,
		Stage:      string(stage),
		StageIndex: stageIndex(stage),
	})
	if err != nil {
		// Record keeping is part of the contract; without the row the
		// run is not auditable, so this is fatal.
		logger.Error("Failed to create stage execution record", "error", err)
		state.AddError(stage, pipeline.KindUpstreamUnavailable,
			fmt.Sprintf("stage record: %v", err), true)
		return stageRun{stage: stage, outcome: pipeline.OutcomeFailed, err: err}
	}

	s.publishAgentStarted(ctx, state.SessionID, stage)

	deadline := s.cfg.Queue.StageTimeout
	if stage == pipeline.StageDivergenceGuard {
		// The guard runs two reasoning passes; give it more room.
		deadline = s.cfg.Queue.GuardStageTimeout
	}
	stageCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	startedAt := time.Now()
	agErr := s.agents[stage].Execute(stageCtx, execCtx, state)
	finishedAt := time.Now()

	outcome := pipeline.OutcomeCompleted
	switch {
	case ctx.Err() != nil:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			outcome = pipeline.OutcomeTimeout
		} else {
			outcome = pipeline.OutcomeCancelled
		}
	case errors.Is(stageCtx.Err(), context.DeadlineExceeded):
		// Stage soft deadline: non-fatal, the router decides what the
		// missing slot means downstream.
		outcome = pipeline.OutcomeTimeout
		state.AddError(stage, pipeline.KindTimeout,
			fmt.Sprintf("stage deadline of %v expired", deadline), false)
		logger.Warn("Stage deadline expired", "deadline", deadline)
	case agErr != nil:
		outcome = pipeline.OutcomeFailed
		if len(state.ErrorsFor(stage)) == 0 {
			state.AddError(stage, pipeline.KindContractViolation, agErr.Error(), false)
		}
		logger.Warn("Stage failed", "error", agErr)
	}

	state.AppendTrace(stage, startedAt, finishedAt, outcome)

	errorMsg := joinedStageErrors(state, stage)
	if errorMsg == "" && agErr != nil {
		errorMsg = agErr.Error()
	}
	if err := svc.stages.CompleteStage(ctx, exec.ID, outcome, errorMsg,
		stageSummary(stage, state), stageDegraded(stage, state)); err != nil {
		logger.Warn("Failed to record stage completion", "error", err)
	}

	s.publishAgentCompleted(state.SessionID, stage, finishedAt.Sub(startedAt).Milliseconds())
	if errorMsg != "" {
		s.publishWorkflowError(state.SessionID, stage, errorMsg)
	}

	logger.Info("Stage finished", "outcome", outcome, "duration_ms", finishedAt.Sub(startedAt).Milliseconds())
	return stageRun{stage: stage, outcome: outcome, err: agErr}
}

// route picks the stage after a finished one, or the terminal result
// when the run cannot continue.
func (s *Supervisor) route(ctx context.Context, logger *slog.Logger, svc *runServices, state *pipeline.State, run stageRun) (pipeline.Stage, *ExecutionResult) {
	if state.HasFatal() {
		logger.Warn("Fatal error recorded, stopping pipeline", "stage", run.stage)
		return pipeline.StageEnd, &ExecutionResult{
			Status: reconsession.StatusFailed,
			Errors: state.Errors,
			Error:  fmt.Errorf("fatal error in %s stage", run.stage),
		}
	}

	switch run.stage {
	case pipeline.StageExtraction:
		count := 0
		if state.Extracted != nil {
			count = state.Extracted.Count()
		}
		if count < 2 {
			// One document cannot be matched against anything.
			state.AddError(pipeline.StageExtraction, pipeline.KindUnavailableInput,
				fmt.Sprintf("only %d of 3 documents extracted, matching needs at least two", count), true)
			return pipeline.StageEnd, &ExecutionResult{
				Status: reconsession.StatusFailed,
				Errors: state.Errors,
				Error:  fmt.Errorf("extraction yielded %d of 3 documents", count),
			}
		}
		if count == 2 {
			logger.Warn("Continuing with a partial document set", "extracted", count)
		}
		return pipeline.StageQuantitative, nil

	case pipeline.StageQuantitative:
		if run.outcome != pipeline.OutcomeCompleted {
			// Compliance cross-checks its claims against the
			// quantitative findings; without them it is skipped.
			logger.Warn("Quantitative stage did not complete, skipping compliance", "outcome", run.outcome)
			s.skipStage(ctx, svc, state, pipeline.StageCompliance, "quantitative stage did not complete")
			return pipeline.StageDivergenceGuard, nil
		}
		return pipeline.StageCompliance, nil

	case pipeline.StageCompliance:
		return pipeline.StageDivergenceGuard, nil

	case pipeline.StageDivergenceGuard:
		// A triggered alert still runs reconciliation and drafting; the
		// verdict derivation reads the recorded metrics.
		return pipeline.StageReconciliation, nil

	case pipeline.StageReconciliation:
		return pipeline.StageDrafting, nil

	default:
		return pipeline.StageEnd, nil
	}
}

// finalResult freezes the state into the terminal execution result.
func (s *Supervisor) finalResult(logger *slog.Logger, state *pipeline.State) *ExecutionResult {
	verdict := state.Verdict
	if verdict == nil {
		state.AddError(pipeline.StageReconciliation, pipeline.KindContractViolation,
			"pipeline reached the end without a verdict", true)
		return &ExecutionResult{
			Status: reconsession.StatusFailed,
			Errors: state.Errors,
			Error:  errors.New("no verdict produced"),
		}
	}

	if d := state.Divergence; d != nil && d.AlertTriggered && verdict.OverallStatus != models.StatusDivergenceAlert {
		// A triggered guard outranks the match result.
		state.AddError(pipeline.StageReconciliation, pipeline.KindContractViolation,
			fmt.Sprintf("verdict %s did not reflect the divergence alert", verdict.OverallStatus), false)
		verdict.OverallStatus = models.StatusDivergenceAlert
		verdict.Recommendation = models.RecommendEscalate
	}

	status := sessionStatusFor(verdict.OverallStatus)
	logger.Info("Supervisor: pipeline run complete",
		"status", status,
		"verdict", verdict.OverallStatus,
		"stages_traced", len(state.Trace),
		"errors", len(state.Errors),
	)
	return &ExecutionResult{Status: status, Verdict: verdict, Errors: state.Errors}
}

// mapInterruption translates a dead session context into the terminal
// result. The hard session timeout maps to failed with a TIMEOUT error;
// an external cancel maps to cancelled.
func (s *Supervisor) mapInterruption(ctx context.Context, state *pipeline.State) *ExecutionResult {
	if ctx.Err() == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		state.AddError(state.CurrentStage, pipeline.KindTimeout,
			fmt.Sprintf("session timed out after %v", s.cfg.Queue.SessionTimeout), true)
		return &ExecutionResult{
			Status: reconsession.StatusFailed,
			Errors: state.Errors,
			Error:  fmt.Errorf("session timed out after %v", s.cfg.Queue.SessionTimeout),
		}
	}
	state.AddError(state.CurrentStage, pipeline.KindCancelled, "cancelled by request", false)
	return &ExecutionResult{
		Status: reconsession.StatusCancelled,
		Errors: state.Errors,
		Error:  context.Canceled,
	}
}

// applyStageEffects persists the write-through side effects of a
// finished stage: denormalized extraction fields and the duplicate
// invoice probe input, the divergence audit record, the workpaper.
func (s *Supervisor) applyStageEffects(ctx context.Context, svc *runServices, execCtx *agent.ExecutionContext, state *pipeline.State, stage pipeline.Stage) {
	switch stage {
	case pipeline.StageExtraction:
		vendor, invoiceNumber := extractedIdentity(state.Extracted)
		if vendor != "" || invoiceNumber != "" {
			if err := svc.sessions.RecordExtractedFields(ctx, state.SessionID, vendor, invoiceNumber); err != nil {
				slog.Warn("Failed to record extracted fields", "session_id", state.SessionID, "error", err)
			}
		}
		priors, err := svc.sessions.ListPriorInvoiceNumbers(ctx, state.TenantID, vendor,
			state.SessionID, s.cfg.Compliance.InvoiceHistoryLimit)
		if err != nil {
			slog.Warn("Failed to load prior invoice numbers", "session_id", state.SessionID, "error", err)
			return
		}
		execCtx.PriorInvoiceNumbers = priors

	case pipeline.StageDivergenceGuard:
		if state.Divergence == nil {
			return
		}
		if _, err := svc.feedback.RecordDivergence(ctx, state.SessionID, state.TenantID, state.Divergence); err != nil {
			slog.Warn("Failed to persist divergence record", "session_id", state.SessionID, "error", err)
			state.AddError(pipeline.StageDivergenceGuard, pipeline.KindUpstreamUnavailable,
				fmt.Sprintf("divergence record not persisted: %v", err), false)
		}

	case pipeline.StageDrafting:
		if state.Workpaper == nil {
			return
		}
		if _, err := svc.workpapers.SaveWorkpaper(ctx, state.SessionID, state.Workpaper); err != nil {
			slog.Warn("Failed to persist workpaper", "session_id", state.SessionID, "error", err)
			state.AddError(pipeline.StageDrafting, pipeline.KindUpstreamUnavailable,
				fmt.Sprintf("workpaper not persisted: %v", err), false)
		}
	}
}

// skipStage writes the terminal skipped record and trace entry for a
// stage the router jumped over.
func (s *Supervisor) skipStage(ctx context.Context, svc *runServices, state *pipeline.State, stage pipeline.Stage, reason string) {
	if _, err := svc.stages.RecordSkippedStage(ctx, state.SessionID, string(stage), stageIndex(stage), reason); err != nil {
		slog.Warn("Failed to record skipped stage",
			"session_id", state.SessionID, "stage", stage, "error", err)
	}
	now := time.Now()
	state.AppendTrace(stage, now, now, pipeline.OutcomeSkipped)
}

// extractedIdentity pulls the vendor and invoice number that get
// denormalized onto the session row. Vendor prefers the invoice's own
// letterhead, then the purchase order's.
func extractedIdentity(data *models.ExtractedData) (vendor, invoiceNumber string) {
	if data == nil {
		return "", ""
	}
	if inv := data.Invoice; inv != nil {
		vendor = inv.VendorName
		invoiceNumber = inv.DocumentNumber
	}
	if vendor == "" && data.PO != nil {
		vendor = data.PO.VendorName
	}
	if vendor == "" && data.GRN != nil {
		vendor = data.GRN.VendorName
	}
	return vendor, invoiceNumber
}

// sessionStatusFor maps a verdict status to the session's terminal status.
func sessionStatusFor(v models.OverallStatus) reconsession.Status {
	switch v {
	case models.StatusFullMatch:
		return reconsession.StatusMatched
	case models.StatusPartialMatch, models.StatusMismatch:
		return reconsession.StatusDiscrepancyFound
	case models.StatusDivergenceAlert:
		return reconsession.StatusDivergenceAlert
	default:
		return reconsession.StatusException
	}
}

// stageIndex returns the 0-based pipeline position of a stage.
func stageIndex(stage pipeline.Stage) int {
	for i, st := range pipeline.Stages() {
		if st == stage {
			return i
		}
	}
	return -1
}

// stageSummary renders the one-line result stored on the stage record.
func stageSummary(stage pipeline.Stage, state *pipeline.State) string {
	switch stage {
	case pipeline.StageExtraction:
		count := 0
		if state.Extracted != nil {
			count = state.Extracted.Count()
		}
		return fmt.Sprintf("extracted %d of 3 documents", count)
	case pipeline.StageQuantitative:
		if state.Quantitative == nil {
			return ""
		}
		if state.Quantitative.MathVerified {
			return "arithmetic verified, no findings"
		}
		return fmt.Sprintf("%d quantitative findings", len(state.Quantitative.Flags))
	case pipeline.StageCompliance:
		if state.Compliance == nil {
			return ""
		}
		return fmt.Sprintf("risk score %.1f with %d flags",
			state.Compliance.RiskScore, len(state.Compliance.Flags))
	case pipeline.StageDivergenceGuard:
		if state.Divergence == nil {
			return ""
		}
		if state.Divergence.AlertTriggered {
			return fmt.Sprintf("similarity %.3f below threshold %.2f",
				state.Divergence.Similarity, state.Divergence.Threshold)
		}
		return fmt.Sprintf("similarity %.3f against threshold %.2f",
			state.Divergence.Similarity, state.Divergence.Threshold)
	case pipeline.StageReconciliation:
		if state.Verdict == nil {
			return ""
		}
		return fmt.Sprintf("verdict %s at confidence %.2f",
			state.Verdict.OverallStatus, state.Verdict.Confidence)
	case pipeline.StageDrafting:
		if state.Workpaper == nil {
			return ""
		}
		return fmt.Sprintf("workpaper composed with %d citations", len(state.Workpaper.Citations))
	}
	return ""
}

// stageDegraded reports whether the stage's output came from a fallback
// path, for the degraded flag on the stage record.
func stageDegraded(stage pipeline.Stage, state *pipeline.State) bool {
	switch stage {
	case pipeline.StageCompliance:
		return state.Compliance != nil && state.Compliance.Degraded
	case pipeline.StageDivergenceGuard:
		return state.Divergence != nil && state.Divergence.Degraded
	default:
		for _, e := range state.ErrorsFor(stage) {
			if e.Kind == pipeline.KindUpstreamUnavailable {
				return true
			}
		}
		return false
	}
}

// joinedStageErrors joins the messages collected against a stage for the
// stage record and the workflow_error event.
func joinedStageErrors(state *pipeline.State, stage pipeline.Stage) string {
	errs := state.ErrorsFor(stage)
	if len(errs) == 0 {
		return ""
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// --- Event boundary publishes, best-effort ---

func (s *Supervisor) publishWorkflowStarted(ctx context.Context, sessionID string) {
	if s.publisher == nil {
		return
	}
	payload := events.NewWorkflowStartedPayload(sessionID, pipeline.TotalStages)
	if err := s.publisher.PublishWorkflowStarted(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish workflow_started", "session_id", sessionID, "error", err)
	}
}

func (s *Supervisor) publishAgentStarted(ctx context.Context, sessionID string, stage pipeline.Stage) {
	if s.publisher == nil {
		return
	}
	payload := events.NewAgentStartedPayload(sessionID, string(stage), "")
	if err := s.publisher.PublishAgentStarted(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish agent_started", "session_id", sessionID, "stage", stage, "error", err)
	}
}

// publishAgentCompleted uses a background context; the session context
// may already be cancelled at a stage boundary.
func (s *Supervisor) publishAgentCompleted(sessionID string, stage pipeline.Stage, durationMs int64) {
	if s.publisher == nil {
		return
	}
	payload := events.NewAgentCompletedPayload(sessionID, string(stage), durationMs)
	if err := s.publisher.PublishAgentCompleted(context.Background(), sessionID, payload); err != nil {
		slog.Warn("Failed to publish agent_completed", "session_id", sessionID, "stage", stage, "error", err)
	}
}

func (s *Supervisor) publishWorkflowError(sessionID string, stage pipeline.Stage, message string) {
	if s.publisher == nil {
		return
	}
	payload := events.NewWorkflowErrorPayload(sessionID, string(stage), message)
	if err := s.publisher.PublishWorkflowError(context.Background(), sessionID, payload); err != nil {
		slog.Warn("Failed to publish workflow_error", "session_id", sessionID, "stage", stage, "error", err)
	}
}
