package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/reconsession"
)

// TestConcurrentSessions pushes a small burst through two workers and
// verifies every run reaches the same clean terminal state with its own
// artifacts.
func TestConcurrentSessions(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(2))

	const n = 4
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%d", sessionID("e2e-burst"), i)
		app.Submit(t, ids[i], "tenant-burst", matchedBundle())
	}

	for _, id := range ids {
		session := app.WaitForSessionStatus(t, id, "matched", 60*time.Second)
		assert.Equal(t, "INV-2024-113", session["invoice_number"])

		status, html := app.GetWorkpaper(t, id)
		require.Equal(t, 200, status)
		assert.NotEmpty(t, html)
	}

	// Nothing is left pending or stuck in flight.
	count, err := app.EntClient.ReconSession.Query().
		Where(reconsession.StatusNEQ(reconsession.StatusMatched)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
