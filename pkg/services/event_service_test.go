package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/procureguard/trimatch/pkg/models"
	testdb "github.com/procureguard/trimatch/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, testCreateRequest("tenant-a"))
	require.NoError(t, err)

	t.Run("persists event with serial id", func(t *testing.T) {
		evt, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   "session:" + session.ID,
			Payload:   map[string]any{"type": "stage_started", "stage": "extraction"},
		})
		require.NoError(t, err)
		assert.Greater(t, evt.ID, 0)
		assert.Equal(t, "stage_started", evt.EventType)
		assert.Equal(t, "extraction", evt.Payload["stage"])

		evt2, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   "session:" + session.ID,
			Payload:   map[string]any{"type": "stage_completed", "stage": "extraction"},
		})
		require.NoError(t, err)
		assert.Greater(t, evt2.ID, evt.ID)
	})

	t.Run("defaults missing type to unknown", func(t *testing.T) {
		evt, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   "sessions",
			Payload:   map[string]any{"stage": "extraction"},
		})
		require.NoError(t, err)
		assert.Equal(t, "unknown", evt.EventType)
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := sessionService.CreateSession(ctx, testCreateRequest("tenant-a"))
	require.NoError(t, err)
	channel := "session:" + session.ID

	// Create a run of events
	var ids []int
	for i := 0; i < 5; i++ {
		evt, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   channel,
			Payload:   map[string]any{"type": "agent_progress", "seq": i},
		})
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}

	t.Run("returns events after cursor in order", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, ids[1], 100)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ids[2], events[0].ID)
		assert.Equal(t, ids[4], events[2].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, ids[0], events[0].ID)
	})

	t.Run("scopes to channel", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "sessions", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("removes session events", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
				SessionID: session.ID,
				Channel:   fmt.Sprintf("session:%s", session.ID),
				Payload:   map[string]any{"type": "agent_progress", "seq": i},
			})
			require.NoError(t, err)
		}

		count, err := eventService.CleanupSessionEvents(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		events, err := eventService.GetEventsSince(ctx, fmt.Sprintf("session:%s", session.ID), 0, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("removes events past TTL", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, testCreateRequest("tenant-a"))
		require.NoError(t, err)

		// Insert an already-aged event; created_at is immutable so it has
		// to be set at creation time
		aged, err := client.ProgressEvent.Create().
			SetSessionID(session.ID).
			SetChannel("session:" + session.ID).
			SetEventType("workflow_started").
			SetPayload(map[string]any{"type": "workflow_started"}).
			SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		fresh, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   "session:" + session.ID,
			Payload:   map[string]any{"type": "workflow_completed"},
		})
		require.NoError(t, err)

		count, err := eventService.CleanupOrphanedEvents(ctx, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		remaining, err := eventService.GetEventsSince(ctx, "session:"+session.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, fresh.ID, remaining[0].ID)
		assert.NotEqual(t, aged.ID, remaining[0].ID)
	})
}
