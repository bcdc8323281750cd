package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/reconsession"
)

// TestSessionHardTimeout parks the compliance stage past the session's
// wall-clock limit and verifies the run fails with a TIMEOUT error.
func TestSessionHardTimeout(t *testing.T) {
	rules := []*ScriptRule{
		{Contains: "Document type: purchase order", Text: docJSON("PO-2024-001")},
		{Contains: "Document type: goods receipt note", Text: docJSON("GRN-2024-007")},
		{Contains: "Document type: invoice", Text: docJSON("INV-2024-113")},
		{Contains: "compliance auditor", Hold: true},
	}
	app := NewTestApp(t,
		WithProviders(NewScriptedProvider(rules...)),
		WithSessionTimeout(2*time.Second),
	)
	ctx := context.Background()

	id := sessionID("e2e-timeout")
	ws := app.WatchSession(t, id)
	app.Submit(t, id, "tenant-timeout", matchedBundle())

	_, err := ws.WaitForWorkflowComplete("failed", 30*time.Second)
	require.NoError(t, err)

	row, err := app.EntClient.ReconSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "timed out")

	timedOut := false
	for _, e := range row.StateErrors {
		if k, ok := e["kind"].(string); ok && k == "TIMEOUT" {
			timedOut = true
			if msg, ok := e["message"].(string); ok {
				assert.True(t, strings.Contains(msg, "timed out"))
			}
		}
	}
	assert.True(t, timedOut, "expected a TIMEOUT state error, got %v", row.StateErrors)
}
