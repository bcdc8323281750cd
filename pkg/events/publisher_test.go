package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{
				Type:      EventTypeWorkflowError,
				SessionID: "abc-123",
			},
			Stage:   "extraction",
			Message: "some message",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeWorkflowError)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{
				Type:      EventTypeWorkflowError,
				SessionID: "abc-123",
			},
			Stage:   "extraction",
			Message: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(AgentProgressPayload{
			BasePayload: BasePayload{
				Type: EventTypeAgentProgress,
			},
			Stage:   "extraction",
			Message: "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{
				Type:      EventTypeWorkflowError,
				SessionID: "sess-789",
			},
			Stage:   "drafting",
			Message: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeWorkflowError)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"stage":"drafting"`)
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to WorkflowErrorPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{Type: "t"},
			Message:     strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects dbEventId into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AgentCompletedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeAgentCompleted,
				SessionID: "sess-1",
			},
			Stage:      "quantitative",
			DurationMs: 1500,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"dbEventId":42`)
		assert.Contains(t, result, "quantitative")
	})

	t.Run("truncated payload preserves dbEventId", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowErrorPayload{
			BasePayload: BasePayload{
				Type:      EventTypeWorkflowError,
				SessionID: "sess-789",
			},
			Stage:   "compliance",
			Message: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"dbEventId":42`)
		assert.Contains(t, result, `"stage":"compliance"`)
	})

	t.Run("truncated payload without stage omits it", func(t *testing.T) {
		payload, _ := json.Marshal(WorkflowCompletePayload{
			BasePayload: BasePayload{
				Type:      EventTypeWorkflowComplete,
				SessionID: "sess-9",
			},
			Status:         "completed",
			VerdictSummary: strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"dbEventId":99`)
		assert.NotContains(t, result, `"stage"`)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
