package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
)

// TestExtractionFailureFailsRun scripts free-text answers for every
// extraction prompt. No document parses, matching has nothing to work
// with, and the run terminates as failed straight from extraction.
func TestExtractionFailureFailsRun(t *testing.T) {
	rules := []*ScriptRule{
		{Contains: "Document type: purchase order", Text: "the quarterly figures look fine to me"},
		{Contains: "Document type: goods receipt note", Text: "the quarterly figures look fine to me"},
		{Contains: "Document type: invoice", Text: "the quarterly figures look fine to me"},
	}
	app := NewTestApp(t, WithProviders(NewScriptedProvider(rules...)))
	ctx := context.Background()

	id := sessionID("e2e-parsefail")
	ws := app.WatchSession(t, id)
	app.Submit(t, id, "tenant-parsefail", matchedBundle())

	_, err := ws.WaitForWorkflowComplete("failed", 30*time.Second)
	require.NoError(t, err)

	// The extraction stage reported its errors before the run died.
	errEvents := ws.EventsByType("workflow_error")
	require.NotEmpty(t, errEvents)
	assert.Equal(t, "extraction", errEvents[0].Parsed["stage"])

	row, err := app.EntClient.ReconSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "extraction")

	// Each document's parse failure is on the record, and the final
	// two-document floor violation is the fatal one.
	parseErrors, fatals := 0, 0
	for _, e := range row.StateErrors {
		if e["kind"] == "PARSE_ERROR" {
			parseErrors++
		}
		if fatal, ok := e["fatal"].(bool); ok && fatal {
			fatals++
		}
	}
	assert.Equal(t, 3, parseErrors)
	assert.GreaterOrEqual(t, fatals, 1)

	// Extraction is the only stage with a row; nothing downstream ran.
	stages, err := app.EntClient.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(id)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, "extraction", stages[0].Stage)
	assert.Equal(t, stageexecution.StatusFailed, stages[0].Status)
}
