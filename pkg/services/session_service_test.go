package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/masking"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	testdb "github.com/procureguard/trimatch/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates pending session with stored bundle", func(t *testing.T) {
		req := testCreateRequest("tenant-a")

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, session.ID)
		assert.Equal(t, "tenant-a", session.TenantID)
		assert.Equal(t, reconsession.StatusPending, session.Status)
		assert.False(t, session.CreatedAt.IsZero())
		assert.Nil(t, session.StartedAt)
		assert.Contains(t, session.DocumentBundle, "Acme Industrial Supply")
	})

	t.Run("generates session_id when omitted", func(t *testing.T) {
		req := testCreateRequest("tenant-a")
		req.SessionID = ""

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("stores session metadata", func(t *testing.T) {
		req := testCreateRequest("tenant-a")
		req.SessionMetadata = map[string]any{"source": "edi-860"}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "edi-860", session.SessionMetadata["source"])
	})

	t.Run("validates required fields", func(t *testing.T) {
		missingPO := testCreateRequest("tenant-a")
		missingPO.Documents.PO.Chunks = nil

		emptyChunk := testCreateRequest("tenant-a")
		emptyChunk.Documents.GRN.Chunks = []models.Chunk{{Text: "   "}}

		kindMismatch := testCreateRequest("tenant-a")
		kindMismatch.Documents.PO.Kind = models.KindInvoice

		noTenant := testCreateRequest("")

		tests := []struct {
			name string
			req  models.CreateSessionRequest
		}{
			{name: "missing tenant_id", req: noTenant},
			{name: "missing po chunks", req: missingPO},
			{name: "empty chunk text", req: emptyChunk},
			{name: "kind mismatch", req: kindMismatch},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects oversized bundle", func(t *testing.T) {
		req := testCreateRequest("tenant-a")
		req.Documents.Invoice.Chunks[0].Text = strings.Repeat("x", MaxBundleBytes)

		_, err := service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate session_id", func(t *testing.T) {
		req := testCreateRequest("tenant-a")

		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		// Try to create again with same ID
		_, err = service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("retrieves existing session", func(t *testing.T) {
		created, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		session, err := service.GetSession(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, session.ID)
	})

	t.Run("loads edges when requested", func(t *testing.T) {
		created, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		_, err = client.StageExecution.Create().
			SetID(uuid.New().String()).
			SetSessionID(created.ID).
			SetStage("extraction").
			SetStageIndex(0).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.DivergenceRecord.Create().
			SetID(uuid.New().String()).
			SetSessionID(created.ID).
			SetTenantID(created.TenantID).
			SetSimilarity(0.91).
			SetThreshold(0.85).
			Save(ctx)
		require.NoError(t, err)

		session, err := service.GetSession(ctx, created.ID, true)
		require.NoError(t, err)
		assert.Len(t, session.Edges.StageExecutions, 1)
		assert.Len(t, session.Edges.DivergenceRecords, 1)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.GetSession(ctx, "nonexistent", false)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	// Create test sessions
	for i := 0; i < 5; i++ {
		_, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
	}
	_, err := service.CreateSession(ctx, testCreateRequest("tenant-b"))
	require.NoError(t, err)

	t.Run("lists all sessions", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.TotalCount, 6)
		assert.Len(t, result.Sessions, result.TotalCount)
	})

	t.Run("applies pagination", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Limit:  2,
			Offset: 0,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 2)
		assert.Equal(t, 2, result.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Status: string(reconsession.StatusPending),
		})
		require.NoError(t, err)
		for _, session := range result.Sessions {
			assert.Equal(t, reconsession.StatusPending, session.Status)
		}
	})

	t.Run("filters by tenant", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			TenantID: "tenant-b",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
		for _, session := range result.Sessions {
			assert.Equal(t, "tenant-b", session.TenantID)
		}
	})

	t.Run("filters by vendor", func(t *testing.T) {
		created, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		err = service.RecordExtractedFields(ctx, created.ID, "Globex Manufacturing", "INV-777")
		require.NoError(t, err)

		result, err := service.ListSessions(ctx, models.SessionFilters{
			VendorName: "Globex Manufacturing",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
		assert.Equal(t, created.ID, result.Sessions[0].ID)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		created, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = client.ReconSession.UpdateOneID(created.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// List should exclude it
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		for _, session := range result.Sessions {
			assert.NotEqual(t, created.ID, session.ID)
		}

		// List with include_deleted should show it
		resultWithDeleted, err := service.ListSessions(ctx, models.SessionFilters{
			IncludeDeleted: true,
		})
		require.NoError(t, err)
		found := false
		for _, session := range resultWithDeleted.Sessions {
			if session.ID == created.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})
}

func TestSessionService_UpdateSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("updates status", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, reconsession.StatusInProgress)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusInProgress, updated.Status)
		assert.Nil(t, updated.CompletedAt)
	})

	t.Run("sets completed_at for terminal states", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, reconsession.StatusMatched)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusMatched, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.UpdateSessionStatus(ctx, "nonexistent", reconsession.StatusFailed)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_CompleteSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("writes verdict and clears current stage", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = service.SetCurrentStage(ctx, session.ID, "drafting")
		require.NoError(t, err)

		verdict := &models.Verdict{
			OverallStatus:      models.StatusPartialMatch,
			Confidence:         0.82,
			DiscrepancySummary: []string{"quantity shortfall on line 1", "price deviation on line 2"},
			Recommendation:     models.RecommendHold,
		}
		stateErrors := []pipeline.StateError{
			{Stage: pipeline.StageCompliance, Kind: pipeline.KindTimeout, Message: "stage deadline expired", Fatal: false},
		}

		err = service.CompleteSession(ctx, session.ID, reconsession.StatusDiscrepancyFound, verdict, stateErrors, "")
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusDiscrepancyFound, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.CurrentStage)
		assert.Equal(t, "PARTIAL_MATCH", updated.Verdict["overall_status"])
		require.NotNil(t, updated.VerdictSummary)
		assert.Contains(t, *updated.VerdictSummary, "quantity shortfall")
		require.Len(t, updated.StateErrors, 1)
		assert.Equal(t, "TIMEOUT", updated.StateErrors[0]["kind"])
	})

	t.Run("records failure message without verdict", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = service.CompleteSession(ctx, session.ID, reconsession.StatusFailed, nil, nil, "all three documents failed extraction")
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "all three documents failed extraction", *updated.ErrorMessage)
		assert.Empty(t, updated.Verdict)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.CompleteSession(ctx, "nonexistent", reconsession.StatusFailed, nil, nil, "boom")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_CancelSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("cancels pending session immediately", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		cancelled, err := service.CancelSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CompletedAt)
	})

	t.Run("moves in-progress session to cancelling", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		err = service.UpdateSessionStatus(ctx, session.ID, reconsession.StatusInProgress)
		require.NoError(t, err)

		cancelled, err := service.CancelSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusCancelling, cancelled.Status)
		assert.Nil(t, cancelled.CompletedAt)

		// Second request is idempotent
		again, err := service.CancelSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusCancelling, again.Status)
	})

	t.Run("rejects terminal session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		err = service.UpdateSessionStatus(ctx, session.ID, reconsession.StatusMatched)
		require.NoError(t, err)

		_, err = service.CancelSession(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, ErrNotCancellable, err)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.CancelSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ClaimNextPendingSession(t *testing.T) {
	t.Run("claims oldest pending session", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		session1, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond) // Ensure different timestamps

		_, err = service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Claim should get first session
		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, session1.ID, claimed.ID)
		assert.Equal(t, reconsession.StatusInProgress, claimed.Status)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)
	})

	t.Run("returns nil when no pending sessions", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("allows concurrent claims without conflict", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		// Create sessions
		for i := 0; i < 3; i++ {
			_, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
			require.NoError(t, err)
		}

		// Simulate concurrent claims
		claimed1, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed1)

		claimed2, err := service.ClaimNextPendingSession(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed2)

		// Should be different sessions
		assert.NotEqual(t, claimed1.ID, claimed2.ID)
	})
}

func TestSessionService_ConcurrentClaiming(t *testing.T) {
	t.Run("multiple workers claim different sessions without conflict", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()
		// Create 10 pending sessions
		numSessions := 10
		for i := 0; i < numSessions; i++ {
			_, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
			require.NoError(t, err)
		}

		// Launch 10 goroutines claiming sessions concurrently
		numWorkers := 10
		type result struct {
			session *ent.ReconSession
			err     error
		}
		results := make(chan result, numWorkers)

		for i := 0; i < numWorkers; i++ {
			go func(workerID int) {
				podID := fmt.Sprintf("pod-%d", workerID)
				session, err := service.ClaimNextPendingSession(ctx, podID)
				results <- result{session: session, err: err}
			}(i)
		}

		// Collect all results
		var claimedSessions []*ent.ReconSession
		var errors []error
		for i := 0; i < numWorkers; i++ {
			res := <-results
			if res.err != nil {
				errors = append(errors, res.err)
			} else if res.session != nil {
				claimedSessions = append(claimedSessions, res.session)
			}
		}

		// Verify no errors occurred
		require.Empty(t, errors, "concurrent claiming should not produce errors")

		// Workers might return nil if another worker got there first
		assert.LessOrEqual(t, len(claimedSessions), numSessions, "should not claim more than available")
		assert.GreaterOrEqual(t, len(claimedSessions), 1, "should claim at least one session")

		// The critical test: no session claimed twice
		seenIDs := make(map[string]bool)
		for _, session := range claimedSessions {
			assert.False(t, seenIDs[session.ID], "session %s was claimed multiple times", session.ID)
			seenIDs[session.ID] = true
		}

		// Verify all claimed sessions are in_progress status with correct pod_id
		for _, session := range claimedSessions {
			assert.Equal(t, reconsession.StatusInProgress, session.Status)
			assert.NotNil(t, session.PodID, "claimed session should have pod_id set")
		}
	})
}

func TestSessionService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("refreshes liveness timestamp", func(t *testing.T) {
		_, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		first := *claimed.LastHeartbeatAt

		time.Sleep(10 * time.Millisecond)
		err = service.Heartbeat(ctx, claimed.ID)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, claimed.ID, false)
		require.NoError(t, err)
		assert.True(t, updated.LastHeartbeatAt.After(first))
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.Heartbeat(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_FindOrphanedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("finds orphaned sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Set to in-progress with old heartbeat
		err = client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusInProgress).
			SetLastHeartbeatAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		// Find orphaned (timeout 1 hour)
		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		assert.Len(t, orphaned, 1)
		assert.Equal(t, session.ID, orphaned[0].ID)
	})

	t.Run("includes stale cancelling sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusCancelling).
			SetLastHeartbeatAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		found := false
		for _, s := range orphaned {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("excludes recent sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusInProgress).
			SetLastHeartbeatAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Should not find it
		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		for _, s := range orphaned {
			assert.NotEqual(t, session.ID, s.ID)
		}
	})
}

func TestSessionService_RequeueOrphanedSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("returns in-progress session to pending", func(t *testing.T) {
		_, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		claimed, err := service.ClaimNextPendingSession(ctx, "pod-dead")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		requeued, err := service.RequeueOrphanedSession(ctx, claimed.ID)
		require.NoError(t, err)
		assert.True(t, requeued)

		updated, err := service.GetSession(ctx, claimed.ID, false)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusPending, updated.Status)
		assert.Nil(t, updated.PodID)
		assert.Nil(t, updated.StartedAt)
		assert.Nil(t, updated.LastHeartbeatAt)
	})

	t.Run("skips session that moved on", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)
		err = service.UpdateSessionStatus(ctx, session.ID, reconsession.StatusMatched)
		require.NoError(t, err)

		requeued, err := service.RequeueOrphanedSession(ctx, session.ID)
		require.NoError(t, err)
		assert.False(t, requeued)
	})
}

func TestSessionService_PriorInvoiceNumbers(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	mkSession := func(tenant, vendor, invoiceNumber string) *ent.ReconSession {
		session, err := service.CreateSession(ctx, testCreateRequest(tenant))
		require.NoError(t, err)
		err = service.RecordExtractedFields(ctx, session.ID, vendor, invoiceNumber)
		require.NoError(t, err)
		return session
	}

	s1 := mkSession("tenant-a", "Acme Industrial Supply", "INV-100")
	mkSession("tenant-a", "Acme Industrial Supply", "INV-101")
	mkSession("tenant-a", "Globex Manufacturing", "INV-200")
	mkSession("tenant-b", "Acme Industrial Supply", "INV-900")

	t.Run("records extracted fields", func(t *testing.T) {
		updated, err := service.GetSession(ctx, s1.ID, false)
		require.NoError(t, err)
		require.NotNil(t, updated.VendorName)
		assert.Equal(t, "Acme Industrial Supply", *updated.VendorName)
		require.NotNil(t, updated.InvoiceNumber)
		assert.Equal(t, "INV-100", *updated.InvoiceNumber)
	})

	t.Run("lists tenant invoice numbers excluding current session", func(t *testing.T) {
		numbers, err := service.ListPriorInvoiceNumbers(ctx, "tenant-a", "", s1.ID, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"INV-101", "INV-200"}, numbers)
	})

	t.Run("filters by vendor", func(t *testing.T) {
		numbers, err := service.ListPriorInvoiceNumbers(ctx, "tenant-a", "Globex Manufacturing", "", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"INV-200"}, numbers)
	})

	t.Run("scopes to tenant", func(t *testing.T) {
		numbers, err := service.ListPriorInvoiceNumbers(ctx, "tenant-b", "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"INV-900"}, numbers)
	})

	t.Run("dedupes repeated numbers", func(t *testing.T) {
		mkSession("tenant-a", "Acme Industrial Supply", "INV-100")

		numbers, err := service.ListPriorInvoiceNumbers(ctx, "tenant-a", "", "", 0)
		require.NoError(t, err)
		count := 0
		for _, n := range numbers {
			if n == "INV-100" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("soft deletes old completed sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Set completed 100 days ago
		err = client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusMatched).
			SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		// Soft delete old sessions (90 day retention)
		count, err := service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		// Verify soft deleted
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, updated.DeletedAt)
	})

	t.Run("soft deletes stale never-completed sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Still pending, created 100 days ago, never picked up
		err = client.ReconSession.UpdateOneID(session.ID).
			SetCreatedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, updated.DeletedAt)
	})

	t.Run("preserves recent sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusMatched).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Soft delete old sessions
		_, err = service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)

		// Should not be deleted
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})
}

func TestSessionService_RestoreSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("restores soft-deleted session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Soft delete
		err = client.ReconSession.UpdateOneID(session.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Restore
		err = service.RestoreSession(ctx, session.ID)
		require.NoError(t, err)

		// Verify restored
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.RestoreSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_SearchSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("searches document bundle", func(t *testing.T) {
		req := testCreateRequest("tenant-a")
		req.Documents = testBundleFor("Initech Office Systems")
		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		// Search for the vendor (plain text query)
		results, err := service.SearchSessions(ctx, "initech office", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("searches verdict summary", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		err = client.ReconSession.UpdateOneID(session.ID).
			SetVerdictSummary("unresolved freight surcharge on invoice").
			Exec(ctx)
		require.NoError(t, err)

		// Search (plain text query)
		results, err := service.SearchSessions(ctx, "freight surcharge", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})
}

func TestSessionService_CreateSessionMasksCredentials(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	service.SetMasker(masking.NewService(&config.MaskingConfig{Enabled: true}))
	ctx := context.Background()

	req := testCreateRequest("tenant-a")
	req.Documents.Invoice.Chunks = append(req.Documents.Invoice.Chunks, models.Chunk{
		ID:   "inv-1-c1",
		Text: "Remit to IBAN GB29NWBK60161331926819, card on file 4111 1111 1111 1111",
	})

	session, err := service.CreateSession(ctx, req)
	require.NoError(t, err)

	assert.NotContains(t, session.DocumentBundle, "GB29NWBK60161331926819")
	assert.NotContains(t, session.DocumentBundle, "4111 1111 1111 1111")
	assert.Contains(t, session.DocumentBundle, "***MASKED_IBAN***")
	assert.Contains(t, session.DocumentBundle, "***MASKED_CARD_1111***")
	// Reconciliation figures survive.
	assert.Contains(t, session.DocumentBundle, "2500.00")
}
