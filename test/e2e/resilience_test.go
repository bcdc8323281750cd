package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/reconsession"
)

// TestProviderOutageDegradesToException runs a full pipeline with every
// live provider down. The router's deterministic terminal answers each
// call, the run finishes instead of crashing, and the absence of real
// extraction evidence turns the verdict into an escalated exception.
func TestProviderOutageDegradesToException(t *testing.T) {
	app := NewTestApp(t, WithProviders(NewFailingProvider()))
	ctx := context.Background()

	id := sessionID("e2e-outage")
	ws := app.WatchSession(t, id)
	app.Submit(t, id, "tenant-outage", matchedBundle())

	terminal, err := ws.WaitForWorkflowComplete("exception", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, terminal.Parsed["sessionId"])

	// Degraded completions surface as stage-level errors on the stream.
	require.NotEmpty(t, ws.EventsByType("workflow_error"))

	session := app.GetSession(t, id)
	verdict, ok := session["verdict"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "EXCEPTION", verdict["overall_status"])
	assert.Equal(t, "ESCALATE", verdict["recommendation"])

	// State errors record which calls were served degraded.
	row, err := app.EntClient.ReconSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusException, row.Status)
	kinds := make(map[string]bool)
	for _, e := range row.StateErrors {
		if k, ok := e["kind"].(string); ok {
			kinds[k] = true
		}
	}
	assert.True(t, kinds["UPSTREAM_UNAVAILABLE"], "expected UPSTREAM_UNAVAILABLE in %v", row.StateErrors)

	// The hollow extraction carries only zero amounts, which perturb to
	// themselves: the guard short-circuits on identical streams and
	// stays quiet even though the vectors would have been degraded.
	rec, err := app.EntClient.DivergenceRecord.Query().
		Where(divergencerecord.SessionIDEQ(id)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, rec.AlertTriggered)
	assert.InDelta(t, 1.0, rec.Similarity, 1e-9)

	// Drafting still produced a reviewable artifact.
	status, html := app.GetWorkpaper(t, id)
	assert.Equal(t, 200, status)
	assert.NotEmpty(t, html)
}
