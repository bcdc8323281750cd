package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
)

// TestCancelRunningSession interrupts a run parked in the compliance
// stage and verifies the partial stage trail it leaves behind.
func TestCancelRunningSession(t *testing.T) {
	started := make(chan struct{})
	rules := []*ScriptRule{
		{Contains: "Document type: purchase order", Text: docJSON("PO-2024-001")},
		{Contains: "Document type: goods receipt note", Text: docJSON("GRN-2024-007")},
		{Contains: "Document type: invoice", Text: docJSON("INV-2024-113")},
		{Contains: "compliance auditor", Started: started, Hold: true},
	}
	app := NewTestApp(t, WithProviders(NewScriptedProvider(rules...)))
	ctx := context.Background()

	id := sessionID("e2e-cancel")
	ws := app.WatchSession(t, id)
	app.Submit(t, id, "tenant-cancel", matchedBundle())

	select {
	case <-started:
	case <-time.After(15 * time.Second):
		t.Fatal("compliance stage never started")
	}

	resp := app.CancelSession(t, id)
	assert.Equal(t, "cancelling", resp["status"])

	_, err := ws.WaitForWorkflowComplete("cancelled", 15*time.Second)
	require.NoError(t, err)
	app.WaitForSessionStatus(t, id, "cancelled", 5*time.Second)

	// Completed stages keep their rows; compliance is marked cancelled
	// and nothing after it ever ran.
	stages, err := app.EntClient.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(id)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, stageexecution.StatusCompleted, stages[0].Status)
	assert.Equal(t, stageexecution.StatusCompleted, stages[1].Status)
	assert.Equal(t, "compliance", stages[2].Stage)
	assert.Equal(t, stageexecution.StatusCancelled, stages[2].Status)
}

// TestCancelPendingSession cancels a session no worker ever claims.
func TestCancelPendingSession(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(0))
	ctx := context.Background()

	id := sessionID("e2e-cancel-pending")
	app.Submit(t, id, "tenant-cancel", matchedBundle())

	resp := app.CancelSession(t, id)
	assert.Equal(t, "cancelled", resp["status"])

	row, err := app.EntClient.ReconSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusCancelled, row.Status)
}
