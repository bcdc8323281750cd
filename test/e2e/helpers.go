package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/models"
)

// Submit posts a reconciliation bundle and returns the parsed 202 body.
func (app *TestApp) Submit(t *testing.T, sessionID, tenantID string, bundle models.DocumentBundle) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"session_id": sessionID,
		"tenant_id":  tenantID,
		"documents":  bundle,
	}
	return app.postJSON(t, "/api/v1/reconciliations", body, http.StatusAccepted)
}

// GetSession retrieves a session by ID.
func (app *TestApp) GetSession(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+sessionID, http.StatusOK)
}

// WaitForSessionStatus polls the session endpoint until the status
// matches, returning the final session body.
func (app *TestApp) WaitForSessionStatus(t *testing.T, sessionID, status string, timeout time.Duration) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]interface{}
	for time.Now().Before(deadline) {
		last = app.GetSession(t, sessionID)
		if last["status"] == status {
			return last
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("session %s never reached status %q (last: %v)", sessionID, status, last["status"])
	return nil
}

// CancelSession posts a cancellation request.
func (app *TestApp) CancelSession(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+sessionID+"/cancel", nil, http.StatusOK)
}

// SubmitFeedback labels a session's divergence outcome and returns the
// resulting tenant threshold.
func (app *TestApp) SubmitFeedback(t *testing.T, sessionID, outcome string) map[string]interface{} {
	t.Helper()
	body := map[string]string{"outcome": outcome, "reviewer": "e2e"}
	return app.postJSON(t, "/api/v1/sessions/"+sessionID+"/feedback", body, http.StatusOK)
}

// GetThreshold reads a tenant's learned divergence threshold.
func (app *TestApp) GetThreshold(t *testing.T, tenantID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/tenants/"+tenantID+"/threshold", http.StatusOK)
}

// GetSessionEvents reads the durable progress event history.
func (app *TestApp) GetSessionEvents(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+sessionID+"/events", http.StatusOK)
}

// GetWorkpaper fetches the rendered workpaper, returning status and body.
func (app *TestApp) GetWorkpaper(t *testing.T, sessionID string) (int, string) {
	t.Helper()
	resp, err := http.Get(app.BaseURL + "/api/v1/sessions/" + sessionID + "/workpaper")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// WatchSession opens a WebSocket, subscribes to the session's channel
// and waits for the confirmation. Close is registered via t.Cleanup.
func (app *TestApp) WatchSession(t *testing.T, sessionID string) *WSClient {
	t.Helper()
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	require.NoError(t, ws.SubscribeAndConfirm(events.SessionChannel(sessionID), 5*time.Second))
	return ws
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// sessionID returns a unique, readable session identifier.
func sessionID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
