package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionChannelPayloads_ContainSessionID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `sessionId` in the
// JSON payload. ANY payload that is broadcast on a session-specific channel
// (session:{id}) MUST include a non-empty `sessionId` field, otherwise the
// frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees sessionId is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A constructor that forgets to populate BasePayload.SessionID
func TestSessionChannelPayloads_ContainSessionID(t *testing.T) {
	const testSessionID = "sess-contract-test"

	// Every payload type that flows through SessionChannel(sessionID).
	// If you add a new payload that goes through a session channel,
	// add it here: the test will fail if sessionId is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name:    "WorkflowStartedPayload",
			payload: NewWorkflowStartedPayload(testSessionID, 6),
		},
		{
			name:    "AgentStartedPayload",
			payload: NewAgentStartedPayload(testSessionID, "extraction", "starting"),
		},
		{
			name:    "AgentProgressPayload",
			payload: NewAgentProgressPayload(testSessionID, "extraction", "document 1 of 3"),
		},
		{
			name:    "AgentCompletedPayload",
			payload: NewAgentCompletedPayload(testSessionID, "extraction", 950),
		},
		{
			name:    "DivergenceAlertPayload",
			payload: NewDivergenceAlertPayload(testSessionID, 0.71, 0.85, "42.00->44.10"),
		},
		{
			name:    "DivergenceClearPayload",
			payload: NewDivergenceClearPayload(testSessionID, 0.98),
		},
		{
			name:    "WorkflowCompletePayload",
			payload: NewWorkflowCompletePayload(testSessionID, "completed", "FULL_MATCH / APPROVE"),
		},
		{
			name:    "WorkflowErrorPayload",
			payload: NewWorkflowErrorPayload(testSessionID, "quantitative", "parse error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))

			sessionID, ok := decoded["sessionId"].(string)
			require.True(t, ok, "payload must carry a string sessionId field")
			assert.Equal(t, testSessionID, sessionID)

			eventType, ok := decoded["type"].(string)
			require.True(t, ok, "payload must carry a string type field")
			assert.NotEmpty(t, eventType)
		})
	}
}
