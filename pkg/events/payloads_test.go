package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadConstructors(t *testing.T) {
	t.Run("workflow started", func(t *testing.T) {
		payload := NewWorkflowStartedPayload("sess-1", 6)

		assert.Equal(t, EventTypeWorkflowStarted, payload.Type)
		assert.Equal(t, "sess-1", payload.SessionID)
		assert.Equal(t, 6, payload.TotalStages)

		ts, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), ts, time.Minute)
	})

	t.Run("agent started", func(t *testing.T) {
		payload := NewAgentStartedPayload("sess-1", "extraction", "parsing documents")

		assert.Equal(t, EventTypeAgentStarted, payload.Type)
		assert.Equal(t, "extraction", payload.Stage)
		assert.Equal(t, "parsing documents", payload.Message)
	})

	t.Run("agent progress", func(t *testing.T) {
		payload := NewAgentProgressPayload("sess-1", "extraction", "document 2 of 3")

		assert.Equal(t, EventTypeAgentProgress, payload.Type)
		assert.Equal(t, "document 2 of 3", payload.Message)
	})

	t.Run("agent completed", func(t *testing.T) {
		payload := NewAgentCompletedPayload("sess-1", "quantitative", 1250)

		assert.Equal(t, EventTypeAgentCompleted, payload.Type)
		assert.Equal(t, "quantitative", payload.Stage)
		assert.Equal(t, int64(1250), payload.DurationMs)
	})

	t.Run("divergence alert", func(t *testing.T) {
		payload := NewDivergenceAlertPayload("sess-1", 0.72, 0.85, "100.00->105.00")

		assert.Equal(t, EventTypeDivergenceAlert, payload.Type)
		assert.Equal(t, 0.72, payload.Similarity)
		assert.Equal(t, 0.85, payload.Threshold)
		assert.Equal(t, "100.00->105.00", payload.PerturbationSummary)
	})

	t.Run("divergence clear", func(t *testing.T) {
		payload := NewDivergenceClearPayload("sess-1", 0.97)

		assert.Equal(t, EventTypeDivergenceClear, payload.Type)
		assert.Equal(t, 0.97, payload.Similarity)
	})

	t.Run("workflow complete", func(t *testing.T) {
		payload := NewWorkflowCompletePayload("sess-1", "completed", "FULL_MATCH / APPROVE")

		assert.Equal(t, EventTypeWorkflowComplete, payload.Type)
		assert.Equal(t, "completed", payload.Status)
		assert.Equal(t, "FULL_MATCH / APPROVE", payload.VerdictSummary)
	})

	t.Run("workflow error", func(t *testing.T) {
		payload := NewWorkflowErrorPayload("sess-1", "extraction", "all documents failed to parse")

		assert.Equal(t, EventTypeWorkflowError, payload.Type)
		assert.Equal(t, "extraction", payload.Stage)
		assert.Equal(t, "all documents failed to parse", payload.Message)
	})

	t.Run("ping carries no session", func(t *testing.T) {
		payload := NewPingPayload()

		assert.Equal(t, EventTypePing, payload.Type)
		assert.Empty(t, payload.SessionID)
		assert.NotEmpty(t, payload.Timestamp)
	})
}

// The frontend and the e2e harness decode events by these exact key names.
func TestPayloadWireKeys(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		keys    []string
	}{
		{
			name:    "workflow started",
			payload: NewWorkflowStartedPayload("s1", 6),
			keys:    []string{"type", "sessionId", "timestamp", "totalStages"},
		},
		{
			name:    "agent completed",
			payload: NewAgentCompletedPayload("s1", "compliance", 840),
			keys:    []string{"type", "sessionId", "stage", "durationMs"},
		},
		{
			name:    "divergence alert",
			payload: NewDivergenceAlertPayload("s1", 0.7, 0.85, "2.00->2.10"),
			keys:    []string{"similarity", "threshold", "perturbationSummary"},
		},
		{
			name:    "workflow complete",
			payload: NewWorkflowCompletePayload("s1", "completed", "MISMATCH / HOLD"),
			keys:    []string{"status", "verdictSummary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			for _, key := range tt.keys {
				assert.Contains(t, decoded, key)
			}
		})
	}
}

func TestAgentCompletedPayload_JSON(t *testing.T) {
	payload := AgentCompletedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeAgentCompleted,
			SessionID: "sess-123",
			Timestamp: "2026-05-10T12:00:00Z",
		},
		Stage:      "reconciliation",
		DurationMs: 2300,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded AgentCompletedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeAgentCompleted, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "reconciliation", decoded.Stage)
	assert.Equal(t, int64(2300), decoded.DurationMs)
	assert.Equal(t, "2026-05-10T12:00:00Z", decoded.Timestamp)
}

func TestDivergenceAlertPayload_JSON(t *testing.T) {
	payload := DivergenceAlertPayload{
		BasePayload: BasePayload{
			Type:      EventTypeDivergenceAlert,
			SessionID: "sess-456",
			Timestamp: "2026-05-10T12:00:00Z",
		},
		Similarity:          0.6421,
		Threshold:           0.85,
		PerturbationSummary: "1500.00->1575.00; 12.50->11.88",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded DivergenceAlertPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeDivergenceAlert, decoded.Type)
	assert.Equal(t, 0.6421, decoded.Similarity)
	assert.Equal(t, 0.85, decoded.Threshold)
	assert.Equal(t, "1500.00->1575.00; 12.50->11.88", decoded.PerturbationSummary)
}
