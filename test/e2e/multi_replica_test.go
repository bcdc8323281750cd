package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/reconsession"
	testdb "github.com/procureguard/trimatch/test/database"
)

// TestEventsCrossReplicas boots two replicas on one schema. The worker
// lives on pod A; a WebSocket client watches through pod B and must see
// the whole run via PostgreSQL NOTIFY.
func TestEventsCrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	podA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("e2e-pod-a"), WithWorkerCount(1))
	podB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("e2e-pod-b"), WithWorkerCount(0))

	id := sessionID("e2e-xreplica")
	ws := podB.WatchSession(t, id)
	podA.Submit(t, id, "tenant-xreplica", matchedBundle())

	_, err := ws.WaitForWorkflowComplete("matched", 30*time.Second)
	require.NoError(t, err)

	// The relayed stream carries the same stage progression a local
	// subscriber would see.
	assert.NotEmpty(t, ws.EventsByType("workflow_started"))
	assert.Len(t, ws.EventsByType("agent_completed"), 6)

	// Either replica serves the terminal state from the shared schema.
	assert.Equal(t, "matched", podB.GetSession(t, id)["status"])
	assert.Equal(t, "matched", podA.GetSession(t, id)["status"])
}

// TestCrossPodCancellation claims on pod A and cancels through pod B.
// B can only flip the status to cancelling; A's heartbeat has to notice
// and abort the run.
func TestCrossPodCancellation(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	started := make(chan struct{})
	rules := []*ScriptRule{
		{Contains: "Document type: purchase order", Text: docJSON("PO-2024-001")},
		{Contains: "Document type: goods receipt note", Text: docJSON("GRN-2024-007")},
		{Contains: "Document type: invoice", Text: docJSON("INV-2024-113")},
		{Contains: "compliance auditor", Started: started, Hold: true},
	}
	podA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)), WithPodID("e2e-pod-a"),
		WithWorkerCount(1), WithProviders(NewScriptedProvider(rules...)))
	podB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)), WithPodID("e2e-pod-b"),
		WithWorkerCount(0))

	id := sessionID("e2e-xcancel")
	podA.Submit(t, id, "tenant-xcancel", matchedBundle())

	select {
	case <-started:
	case <-time.After(15 * time.Second):
		t.Fatal("compliance stage never started on pod A")
	}

	resp := podB.CancelSession(t, id)
	assert.Equal(t, "cancelling", resp["status"])

	podA.WaitForSessionStatus(t, id, "cancelled", 15*time.Second)

	row, err := podA.EntClient.ReconSession.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusCancelled, row.Status)
	assert.Equal(t, "e2e-pod-a", *row.PodID)
}
