package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// StageService manages stage execution records
type StageService struct {
	client *ent.Client
}

// NewStageService creates a new StageService
func NewStageService(client *ent.Client) *StageService {
	return &StageService{client: client}
}

// statusForOutcome maps a pipeline outcome to the persisted stage status.
func statusForOutcome(outcome pipeline.Outcome) stageexecution.Status {
	switch outcome {
	case pipeline.OutcomeCompleted:
		return stageexecution.StatusCompleted
	case pipeline.OutcomeTimeout:
		return stageexecution.StatusTimedOut
	case pipeline.OutcomeCancelled:
		return stageexecution.StatusCancelled
	case pipeline.OutcomeSkipped:
		return stageexecution.StatusSkipped
	default:
		return stageexecution.StatusFailed
	}
}

// BeginStage creates an active execution record as the supervisor enters a stage
func (s *StageService) BeginStage(httpCtx context.Context, req models.CreateStageExecutionRequest) (*ent.StageExecution, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Stage == "" {
		return nil, NewValidationError("stage", "required")
	}
	if req.StageIndex < 0 {
		return nil, NewValidationError("stage_index", "must be non-negative")
	}

	// Use timeout context derived from incoming context
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	executionID := uuid.New().String()
	execution, err := s.client.StageExecution.Create().
		SetID(executionID).
		SetSessionID(req.SessionID).
		SetStage(req.Stage).
		SetStageIndex(req.StageIndex).
		SetStatus(stageexecution.StatusActive).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}

	return execution, nil
}

// CompleteStage records the terminal outcome of a stage execution. Runs on
// a background context so an expired stage deadline or an external cancel
// cannot lose the record.
func (s *StageService) CompleteStage(ctx context.Context, executionID string, outcome pipeline.Outcome, errorMsg, summary string, degraded bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Fetch the execution first for started_at
	exec, err := s.client.StageExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get stage execution: %w", err)
	}

	now := time.Now()
	update := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(statusForOutcome(outcome)).
		SetCompletedAt(now)

	if exec.StartedAt != nil {
		durationMs := int(now.Sub(*exec.StartedAt).Milliseconds())
		update = update.SetDurationMs(durationMs)
	}
	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}
	if summary != "" {
		update = update.SetSummary(summary)
	}
	if degraded {
		update = update.SetDegraded(true)
	}

	err = update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete stage execution: %w", err)
	}

	return nil
}

// RecordSkippedStage writes a terminal skipped record for a stage the
// supervisor routed past without running.
func (s *StageService) RecordSkippedStage(ctx context.Context, sessionID string, stage string, stageIndex int, reason string) (*ent.StageExecution, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	executionID := uuid.New().String()
	builder := s.client.StageExecution.Create().
		SetID(executionID).
		SetSessionID(sessionID).
		SetStage(stage).
		SetStageIndex(stageIndex).
		SetStatus(stageexecution.StatusSkipped).
		SetCompletedAt(time.Now())

	if reason != "" {
		builder.SetSummary(reason)
	}

	execution, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record skipped stage: %w", err)
	}

	return execution, nil
}

// ClearStageExecutions deletes every stage record for a session. The
// supervisor calls this before a run so a session rescued from a dead pod
// can re-execute without colliding with the (session_id, stage_index)
// uniqueness of the abandoned attempt's rows.
func (s *StageService) ClearStageExecutions(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := s.client.StageExecution.Delete().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear stage executions: %w", err)
	}

	return deleted, nil
}

// GetStageExecutions retrieves all stage executions for a session in order
func (s *StageService) GetStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error) {
	executions, err := s.client.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage executions: %w", err)
	}

	return executions, nil
}

// GetStageExecutionByID retrieves a stage execution by ID
func (s *StageService) GetStageExecutionByID(ctx context.Context, executionID string) (*ent.StageExecution, error) {
	execution, err := s.client.StageExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage execution: %w", err)
	}

	return execution, nil
}
