package services

import (
	"context"
	"testing"

	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/threshold"
	testdb "github.com/procureguard/trimatch/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Initialize all services
	sessionService := NewSessionService(client.Client)
	stageService := NewStageService(client.Client)
	eventService := NewEventService(client.Client)
	feedbackService := NewFeedbackService(client.Client, threshold.NewStore())
	workpaperService := NewWorkpaperService(client.Client)

	t.Run("full session lifecycle", func(t *testing.T) {
		// 1. Submit a reconciliation
		req := testCreateRequest("tenant-acme")
		session, err := sessionService.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusPending, session.Status)

		channel := "session:" + session.ID

		// 2. Worker claims it
		claimed, err := sessionService.ClaimNextPendingSession(ctx, "pod-0")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, session.ID, claimed.ID)
		assert.Equal(t, reconsession.StatusInProgress, claimed.Status)

		// runStage drives one stage the way the worker does: mark it
		// current, open the execution record, do the stage's work, then
		// close the record and publish the boundary event.
		runStage := func(index int, stage pipeline.Stage, summary string, work func()) {
			t.Helper()
			require.NoError(t, sessionService.SetCurrentStage(ctx, session.ID, string(stage)))
			exec, err := stageService.BeginStage(ctx, models.CreateStageExecutionRequest{
				SessionID:  session.ID,
				Stage:      string(stage),
				StageIndex: index,
			})
			require.NoError(t, err)
			if work != nil {
				work()
			}
			require.NoError(t, stageService.CompleteStage(ctx, exec.ID, pipeline.OutcomeCompleted, "", summary, false))
			_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
				SessionID: session.ID,
				Channel:   channel,
				Payload: map[string]any{
					"type":        "stage_completed",
					"stage":       string(stage),
					"stage_index": index,
				},
			})
			require.NoError(t, err)
		}

		// 3. Extraction surfaces the header fields used for history lookups
		runStage(0, pipeline.StageExtraction, "3 documents extracted", func() {
			require.NoError(t, sessionService.RecordExtractedFields(ctx, session.ID, "Acme Industrial Supply", "INV-2026-042"))
			require.NoError(t, sessionService.Heartbeat(ctx, session.ID))
		})

		// 4. Quantitative verification
		runStage(1, pipeline.StageQuantitative, "1 line triple verified", nil)

		// 5. Compliance checks
		runStage(2, pipeline.StageCompliance, "no policy violations", nil)

		// 6. Divergence guard fires an alert and records the measurement
		runStage(3, pipeline.StageDivergenceGuard, "similarity 0.71 below threshold 0.85", func() {
			record, err := feedbackService.RecordDivergence(ctx, session.ID, "tenant-acme", testMetrics(0.71, true))
			require.NoError(t, err)
			assert.True(t, record.AlertTriggered)
		})

		// 7. Reconciliation still produces a verdict under an alert
		runStage(4, pipeline.StageReconciliation, "verdict DIVERGENCE_ALERT", nil)

		// 8. Drafting composes and stores the workpaper
		runStage(5, pipeline.StageDrafting, "workpaper composed", func() {
			_, err := workpaperService.SaveWorkpaper(ctx, session.ID, testWorkpaper(session.ID, "Escalated for review: shadow run diverged."))
			require.NoError(t, err)
		})

		// 9. Terminal write carries the verdict
		verdict := &models.Verdict{
			OverallStatus: models.StatusDivergenceAlert,
			Confidence:    0.55,
			LineItemMatches: []models.TripleMatch{
				{POIndex: intPtr(0), GRNIndex: intPtr(0), InvoiceIndex: intPtr(0), DescriptionScore: 100, Status: models.TripleFullMatch},
			},
			DiscrepancySummary: []string{"shadow run diverged on invoice total"},
			Recommendation:     models.RecommendEscalate,
		}
		err = sessionService.CompleteSession(ctx, session.ID, reconsession.StatusDivergenceAlert, verdict, nil, "")
		require.NoError(t, err)
		_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   channel,
			Payload:   map[string]any{"type": "session_completed", "status": string(reconsession.StatusDivergenceAlert)},
		})
		require.NoError(t, err)

		// 10. Verify the terminal session and its edges
		final, err := sessionService.GetSession(ctx, session.ID, true)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusDivergenceAlert, final.Status)
		assert.NotNil(t, final.CompletedAt)
		assert.Nil(t, final.CurrentStage)
		assert.Equal(t, "DIVERGENCE_ALERT", final.Verdict["overall_status"])
		require.NotNil(t, final.VerdictSummary)
		assert.Contains(t, *final.VerdictSummary, "diverged")

		require.Len(t, final.Edges.StageExecutions, 6)
		for i, exec := range final.Edges.StageExecutions {
			assert.Equal(t, i, exec.StageIndex)
			assert.Equal(t, stageexecution.StatusCompleted, exec.Status)
		}
		assert.Len(t, final.Edges.DivergenceRecords, 1)

		// 11. Reviewer judges the alert a false positive
		resp, err := feedbackService.RecordFeedback(ctx, models.FeedbackRequest{
			SessionID: session.ID,
			Outcome:   models.OutcomeFalsePositive,
			Reviewer:  "reviewer@acme.example",
		})
		require.NoError(t, err)
		assert.Equal(t, "tenant-acme", resp.TenantID)
		assert.Equal(t, 1, resp.SampleCount)
		assert.True(t, resp.UsingPrior)

		// 12. Workpaper is served from storage
		wp, err := workpaperService.GetWorkpaper(ctx, session.ID)
		require.NoError(t, err)
		assert.Contains(t, wp.HTML, "Escalated for review")

		// 13. A reconnecting subscriber replays the whole run
		events, err := eventService.GetEventsSince(ctx, channel, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 7)
		assert.Equal(t, "stage_completed", events[0].EventType)
		assert.Equal(t, "session_completed", events[6].EventType)

		// 14. Retention cleanup drops the replay buffer
		count, err := eventService.CleanupSessionEvents(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})
}

func intPtr(i int) *int {
	return &i
}
