package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/threshold"
)

// FeedbackService persists divergence guard outcomes and feeds reviewer
// judgements into the per-tenant threshold store.
type FeedbackService struct {
	client *ent.Client
	store  *threshold.Store
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(client *ent.Client, store *threshold.Store) *FeedbackService {
	return &FeedbackService{client: client, store: store}
}

// RecordDivergence writes the audit record for one divergence guard run
// together with an unlabeled feedback sample awaiting reviewer judgement.
// A rerun of the guard (requeued session) refreshes the unlabeled sample
// instead of failing on the per-session uniqueness.
func (s *FeedbackService) RecordDivergence(ctx context.Context, sessionID, tenantID string, metrics *models.DivergenceMetrics) (*ent.DivergenceRecord, error) {
	if metrics == nil {
		return nil, NewValidationError("metrics", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Convert perturbations to JSON for storage
	var perturbationsJSON []map[string]any
	if len(metrics.Perturbations) > 0 {
		pBytes, err := json.Marshal(metrics.Perturbations)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal perturbations: %w", err)
		}
		if err := json.Unmarshal(pBytes, &perturbationsJSON); err != nil {
			return nil, fmt.Errorf("failed to unmarshal perturbations: %w", err)
		}
	}

	recordBuilder := tx.DivergenceRecord.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetTenantID(tenantID).
		SetSimilarity(metrics.Similarity).
		SetThreshold(metrics.Threshold).
		SetAlertTriggered(metrics.AlertTriggered).
		SetDegraded(metrics.Degraded)

	if metrics.Reason != "" {
		recordBuilder.SetReason(metrics.Reason)
	}
	if perturbationsJSON != nil {
		recordBuilder.SetPerturbations(perturbationsJSON)
	}
	if metrics.PrimarySummary != "" {
		recordBuilder.SetPrimarySummary(metrics.PrimarySummary)
	}
	if metrics.ShadowSummary != "" {
		recordBuilder.SetShadowSummary(metrics.ShadowSummary)
	}

	record, err := recordBuilder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create divergence record: %w", err)
	}

	// One feedback sample per session. A second guard run updates the
	// pending sample rather than duplicating it.
	updated, err := tx.FeedbackSample.Update().
		Where(
			feedbacksample.SessionIDEQ(sessionID),
			feedbacksample.OutcomeEQ(feedbacksample.OutcomeUnlabeled),
		).
		SetSimilarity(metrics.Similarity).
		SetThreshold(metrics.Threshold).
		SetWasAlert(metrics.AlertTriggered).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh feedback sample: %w", err)
	}
	if updated == 0 {
		err = tx.FeedbackSample.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetTenantID(tenantID).
			SetSimilarity(metrics.Similarity).
			SetThreshold(metrics.Threshold).
			SetWasAlert(metrics.AlertTriggered).
			Exec(writeCtx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Sample exists and is already labeled, keep it
				err = nil
			} else {
				return nil, fmt.Errorf("failed to create feedback sample: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit divergence record: %w", err)
	}

	return record, nil
}

// RecordFeedback labels a session's divergence outcome with the reviewer's
// judgement and returns the tenant's recomputed threshold. A session can
// be labeled once; repeat submissions return ErrAlreadyExists.
func (s *FeedbackService) RecordFeedback(ctx context.Context, req models.FeedbackRequest) (*models.ThresholdResponse, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if !models.ValidOutcome(req.Outcome) {
		return nil, NewValidationError("outcome", "must be one of correct, false_positive, false_negative")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sample, err := s.client.FeedbackSample.Query().
		Where(feedbacksample.SessionIDEQ(req.SessionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback sample: %w", err)
	}
	if sample.Outcome != feedbacksample.OutcomeUnlabeled {
		return nil, ErrAlreadyExists
	}

	update := s.client.FeedbackSample.UpdateOne(sample).
		SetOutcome(feedbacksample.Outcome(req.Outcome)).
		SetLabeledAt(time.Now())
	if req.Reviewer != "" {
		update = update.SetReviewer(req.Reviewer)
	}

	if err := update.Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to label feedback sample: %w", err)
	}

	s.store.AddSample(sample.TenantID, models.FeedbackSample{
		Similarity: sample.Similarity,
		Threshold:  sample.Threshold,
		WasAlert:   sample.WasAlert,
		Outcome:    req.Outcome,
	})

	resp := s.TenantThreshold(sample.TenantID)
	return &resp, nil
}

// TenantThreshold reports the tenant's current threshold from the in-memory store
func (s *FeedbackService) TenantThreshold(tenantID string) models.ThresholdResponse {
	tau, sampleCount, usingPrior := s.store.Snapshot(tenantID)
	return models.ThresholdResponse{
		TenantID:    tenantID,
		Threshold:   tau,
		SampleCount: sampleCount,
		UsingPrior:  usingPrior,
	}
}

// Rehydrate loads all labeled feedback from the database into the
// threshold store. Called once at startup so learned thresholds survive
// restarts. Returns the number of samples loaded.
func (s *FeedbackService) Rehydrate(ctx context.Context) (int, error) {
	samples, err := s.client.FeedbackSample.Query().
		Where(feedbacksample.OutcomeNEQ(feedbacksample.OutcomeUnlabeled)).
		Order(ent.Asc(feedbacksample.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load feedback samples: %w", err)
	}

	byTenant := make(map[string][]models.FeedbackSample)
	for _, sample := range samples {
		byTenant[sample.TenantID] = append(byTenant[sample.TenantID], models.FeedbackSample{
			Similarity: sample.Similarity,
			Threshold:  sample.Threshold,
			WasAlert:   sample.WasAlert,
			Outcome:    string(sample.Outcome),
		})
	}
	for tenantID, tenantSamples := range byTenant {
		s.store.LoadSamples(tenantID, tenantSamples)
	}

	return len(samples), nil
}
