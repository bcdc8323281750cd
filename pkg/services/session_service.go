package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// MaxBundleBytes bounds the serialized document bundle accepted at submission.
const MaxBundleBytes = 1 << 20

// BundleMasker strips payment credentials from chunk text before the
// bundle persists or reaches an LLM provider. Implemented by
// masking.Service; nil disables masking.
type BundleMasker interface {
	MaskBundle(bundle *models.DocumentBundle) int
}

// SessionService manages reconciliation session lifecycle
type SessionService struct {
	client *ent.Client
	masker BundleMasker
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// SetMasker attaches payment-credential masking to session creation.
func (s *SessionService) SetMasker(m BundleMasker) {
	s.masker = m
}

// CreateSession validates the document bundle and creates a pending session
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.ReconSession, error) {
	// Validate input
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if err := validateBundle(&req.Documents); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if s.masker != nil {
		if n := s.masker.MaskBundle(&req.Documents); n > 0 {
			slog.Info("Masked payment credentials in submitted bundle",
				"session_id", sessionID, "chunks", n)
		}
	}

	bundleJSON, err := json.Marshal(req.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document bundle: %w", err)
	}
	if len(bundleJSON) > MaxBundleBytes {
		return nil, NewValidationError("documents", fmt.Sprintf("bundle is %d bytes, limit is %d", len(bundleJSON), MaxBundleBytes))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionBuilder := s.client.ReconSession.Create().
		SetID(sessionID).
		SetTenantID(req.TenantID).
		SetDocumentBundle(string(bundleJSON)).
		SetStatus(reconsession.StatusPending)

	if req.SessionMetadata != nil {
		sessionBuilder.SetSessionMetadata(req.SessionMetadata)
	}

	session, err := sessionBuilder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// validateBundle checks that all three document kinds are present with
// usable chunk text. Declared kinds are normalized so stored bundles are
// self-describing.
func validateBundle(bundle *models.DocumentBundle) error {
	for _, kind := range models.Kinds() {
		doc := bundle.ByKind(kind)
		fieldName := "documents." + strings.ToLower(string(kind))

		if doc.Kind == "" {
			doc.Kind = kind
		} else if doc.Kind != kind {
			return NewValidationError(fieldName, fmt.Sprintf("declared kind %q does not match slot", doc.Kind))
		}
		if len(doc.Chunks) == 0 {
			return NewValidationError(fieldName, "at least one chunk required")
		}
		for i, chunk := range doc.Chunks {
			if strings.TrimSpace(chunk.Text) == "" {
				return NewValidationError(fieldName, fmt.Sprintf("chunk %d has empty text", i))
			}
		}
	}
	return nil
}

// GetSession retrieves a session by ID with optional edge loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withEdges bool) (*ent.ReconSession, error) {
	query := s.client.ReconSession.Query().Where(reconsession.IDEQ(sessionID))

	if withEdges {
		query = query.
			WithStageExecutions(func(q *ent.StageExecutionQuery) {
				q.Order(ent.Asc(stageexecution.FieldStageIndex))
			}).
			WithDivergenceRecords(func(q *ent.DivergenceRecordQuery) {
				q.Order(ent.Asc(divergencerecord.FieldCreatedAt))
			})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.ReconSession.Query()

	// Apply filters. Status accepts a comma-separated list.
	if filters.Status != "" {
		parts := strings.Split(filters.Status, ",")
		statuses := make([]reconsession.Status, 0, len(parts))
		for _, p := range parts {
			statuses = append(statuses, reconsession.Status(strings.TrimSpace(p)))
		}
		query = query.Where(reconsession.StatusIn(statuses...))
	}
	if filters.TenantID != "" {
		query = query.Where(reconsession.TenantIDEQ(filters.TenantID))
	}
	if filters.VendorName != "" {
		query = query.Where(reconsession.VendorNameEQ(filters.VendorName))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(reconsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(reconsession.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(reconsession.DeletedAtIsNil())
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	// Get sessions
	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(reconsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// isTerminalStatus reports whether a status ends the session lifecycle.
func isTerminalStatus(status reconsession.Status) bool {
	switch status {
	case reconsession.StatusMatched,
		reconsession.StatusDiscrepancyFound,
		reconsession.StatusDivergenceAlert,
		reconsession.StatusException,
		reconsession.StatusFailed,
		reconsession.StatusCancelled:
		return true
	}
	return false
}

// UpdateSessionStatus updates a session's status
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status reconsession.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ReconSession.UpdateOneID(sessionID).
		SetStatus(status)

	if isTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}

// CompleteSession writes the terminal outcome of a pipeline run: status,
// verdict document, summary and accumulated stage errors. Runs on a
// background context so a cancelled request cannot lose the terminal write.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string, status reconsession.Status, verdict *models.Verdict, errors []pipeline.StateError, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.ReconSession.UpdateOneID(sessionID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		ClearCurrentStage()

	if verdict != nil {
		verdictBytes, err := json.Marshal(verdict)
		if err != nil {
			return fmt.Errorf("failed to marshal verdict: %w", err)
		}
		var verdictJSON map[string]any
		if err := json.Unmarshal(verdictBytes, &verdictJSON); err != nil {
			return fmt.Errorf("failed to unmarshal verdict: %w", err)
		}
		update = update.SetVerdict(verdictJSON)

		if len(verdict.DiscrepancySummary) > 0 {
			update = update.SetVerdictSummary(strings.Join(verdict.DiscrepancySummary, "\n"))
		}
	}

	if len(errors) > 0 {
		errBytes, err := json.Marshal(errors)
		if err != nil {
			return fmt.Errorf("failed to marshal state errors: %w", err)
		}
		var errJSON []map[string]any
		if err := json.Unmarshal(errBytes, &errJSON); err != nil {
			return fmt.Errorf("failed to unmarshal state errors: %w", err)
		}
		update = update.SetStateErrors(errJSON)
	}

	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}

	return nil
}

// CancelSession requests cancellation. Pending sessions cancel immediately;
// in-progress sessions move to cancelling and the worker finalizes them.
// Terminal sessions return ErrNotCancellable.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) (*ent.ReconSession, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ReconSession.Query().
		Where(reconsession.IDEQ(sessionID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	switch session.Status {
	case reconsession.StatusPending:
		session, err = tx.ReconSession.UpdateOne(session).
			SetStatus(reconsession.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
	case reconsession.StatusInProgress:
		session, err = tx.ReconSession.UpdateOne(session).
			SetStatus(reconsession.StatusCancelling).
			Save(writeCtx)
	case reconsession.StatusCancelling:
		// Already requested, idempotent
	default:
		return nil, ErrNotCancellable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return session, nil
}

// ClaimNextPendingSession atomically claims the oldest pending session for
// this pod. SKIP LOCKED lets concurrent replicas claim distinct rows without
// blocking each other.
func (s *SessionService) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.ReconSession, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ReconSession.Query().
		Where(reconsession.StatusEQ(reconsession.StatusPending)).
		Order(ent.Asc(reconsession.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending sessions
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}

	now := time.Now()
	session, err = tx.ReconSession.UpdateOne(session).
		SetStatus(reconsession.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// Heartbeat refreshes the liveness timestamp of an in-flight session
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	err := s.client.ReconSession.UpdateOneID(sessionID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat session: %w", err)
	}
	return nil
}

// FindOrphanedSessions finds active sessions whose pod stopped heartbeating
func (s *SessionService) FindOrphanedSessions(ctx context.Context, timeoutDuration time.Duration) ([]*ent.ReconSession, error) {
	threshold := time.Now().Add(-timeoutDuration)

	sessions, err := s.client.ReconSession.Query().
		Where(
			reconsession.StatusIn(reconsession.StatusInProgress, reconsession.StatusCancelling),
			reconsession.LastHeartbeatAtNotNil(),
			reconsession.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}

	return sessions, nil
}

// RequeueOrphanedSession returns an orphaned in-progress session to the
// pending queue so another replica can claim it. Returns false if the
// session moved on in the meantime.
func (s *SessionService) RequeueOrphanedSession(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.client.ReconSession.Update().
		Where(
			reconsession.IDEQ(sessionID),
			reconsession.StatusEQ(reconsession.StatusInProgress),
		).
		SetStatus(reconsession.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		ClearCurrentStage().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue session: %w", err)
	}
	return count > 0, nil
}

// SetCurrentStage records the stage the supervisor is executing
func (s *SessionService) SetCurrentStage(ctx context.Context, sessionID string, stage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ReconSession.UpdateOneID(sessionID).
		SetCurrentStage(stage).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current stage: %w", err)
	}
	return nil
}

// RecordExtractedFields denormalizes vendor and invoice number from the
// extraction stage onto the session row for list filters and the
// duplicate-invoice probe of later sessions.
func (s *SessionService) RecordExtractedFields(ctx context.Context, sessionID string, vendorName, invoiceNumber string) error {
	if vendorName == "" && invoiceNumber == "" {
		return nil
	}

	update := s.client.ReconSession.UpdateOneID(sessionID)
	if vendorName != "" {
		update = update.SetVendorName(vendorName)
	}
	if invoiceNumber != "" {
		update = update.SetInvoiceNumber(invoiceNumber)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record extracted fields: %w", err)
	}
	return nil
}

// ListPriorInvoiceNumbers returns invoice numbers seen for a tenant in
// other sessions, most recent first. Used by the duplicate-invoice check.
func (s *SessionService) ListPriorInvoiceNumbers(ctx context.Context, tenantID, vendorName, excludeSessionID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.client.ReconSession.Query().
		Where(
			reconsession.TenantIDEQ(tenantID),
			reconsession.InvoiceNumberNotNil(),
			reconsession.DeletedAtIsNil(),
		)
	if vendorName != "" {
		query = query.Where(reconsession.VendorNameEQ(vendorName))
	}
	if excludeSessionID != "" {
		query = query.Where(reconsession.IDNEQ(excludeSessionID))
	}

	numbers, err := query.
		Order(ent.Desc(reconsession.FieldCreatedAt)).
		Limit(limit).
		Select(reconsession.FieldInvoiceNumber).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prior invoice numbers: %w", err)
	}

	// Dedupe preserving recency order
	seen := make(map[string]bool, len(numbers))
	unique := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}

	return unique, nil
}

// SoftDeleteOldSessions soft deletes sessions older than retention period
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Sessions that never completed (abandoned pending, lost in_progress)
	// have no completed_at and age out on created_at instead.
	count, err := s.client.ReconSession.Update().
		Where(
			reconsession.Or(
				reconsession.CompletedAtLT(cutoff),
				reconsession.And(
					reconsession.CompletedAtIsNil(),
					reconsession.CreatedAtLT(cutoff),
				),
			),
			reconsession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}

	return count, nil
}

// RestoreSession restores a soft-deleted session
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	// Use background context with timeout
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ReconSession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return nil
}

// GetActiveSessions returns non-terminal sessions, oldest first, for the
// dashboard's live view.
func (s *SessionService) GetActiveSessions(ctx context.Context) ([]*ent.ReconSession, error) {
	sessions, err := s.client.ReconSession.Query().
		Where(
			reconsession.StatusIn(
				reconsession.StatusPending,
				reconsession.StatusInProgress,
				reconsession.StatusCancelling,
			),
			reconsession.DeletedAtIsNil(),
		).
		Order(ent.Asc(reconsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	return sessions, nil
}

// GetDistinctVendors returns the vendor names seen across live sessions,
// for filter dropdowns.
func (s *SessionService) GetDistinctVendors(ctx context.Context) ([]string, error) {
	vendors, err := s.client.ReconSession.Query().
		Where(reconsession.VendorNameNotNil(), reconsession.DeletedAtIsNil()).
		Unique(true).
		Order(ent.Asc(reconsession.FieldVendorName)).
		Select(reconsession.FieldVendorName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct vendors: %w", err)
	}

	return vendors, nil
}

// GetDistinctTenants returns the tenant ids with at least one live session.
func (s *SessionService) GetDistinctTenants(ctx context.Context) ([]string, error) {
	tenants, err := s.client.ReconSession.Query().
		Where(reconsession.DeletedAtIsNil()).
		Unique(true).
		Order(ent.Asc(reconsession.FieldTenantID)).
		Select(reconsession.FieldTenantID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct tenants: %w", err)
	}

	return tenants, nil
}

// SearchSessions performs full-text search on document_bundle and verdict_summary
func (s *SessionService) SearchSessions(ctx context.Context, query string, limit int) ([]*ent.ReconSession, error) {
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.client.ReconSession.Query().
		Where(reconsession.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', document_bundle) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(verdict_summary, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(reconsession.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}

	return sessions, nil
}
