package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/database"
	"github.com/procureguard/trimatch/pkg/services"
	testdb "github.com/procureguard/trimatch/test/database"
	"github.com/procureguard/trimatch/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	bus          *Bus
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	sessionID    string // Pre-created ReconSession (satisfies FK on events)
	channel      string // session:<sessionID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create ReconSession required by FK on events table
	sessionID := uuid.New().String()
	_, err := dbClient.ReconSession.Create().
		SetID(sessionID).
		SetTenantID("tenant-integration").
		SetStatus(reconsession.StatusPending).
		SetDocumentBundle("{}").
		Save(ctx)
	require.NoError(t, err)

	channel := SessionChannel(sessionID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	bus := NewBus()
	manager := NewConnectionManager(bus, catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, bus)
	require.NoError(t, listener.Start(ctx))
	bus.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		bus:          bus,
		manager:      manager,
		listener:     listener,
		server:       server,
		sessionID:    sessionID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the
// connection. The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (workflow started)
	err := env.publisher.PublishWorkflowStarted(ctx, env.sessionID, NewWorkflowStartedPayload(env.sessionID, 6))
	require.NoError(t, err)

	// Publish second event (first stage started)
	err = env.publisher.PublishAgentStarted(ctx, env.sessionID, NewAgentStartedPayload(env.sessionID, "extraction", "extracting line items"))
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.sessionID, events[0].SessionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeWorkflowStarted, events[0].Payload["type"])
	assert.Equal(t, float64(6), events[0].Payload["totalStages"])

	assert.Equal(t, EventTypeAgentStarted, events[1].Payload["type"])
	assert.Equal(t, "extraction", events[1].Payload["stage"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (stage progress)
	err := env.publisher.PublishAgentProgress(ctx, env.sessionID, NewAgentProgressPayload(env.sessionID, "extraction", "parsed 12 of 40 lines"))
	require.NoError(t, err)

	// Query DB, should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishAgentStarted(ctx, env.sessionID, NewAgentStartedPayload(env.sessionID, "quantitative", ""))
	require.NoError(t, err)

	// Read from WebSocket, the event should arrive via pg_notify → listener → bus
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentStarted, msg["type"])
	assert.Equal(t, "quantitative", msg["stage"])
	assert.Equal(t, env.sessionID, msg["sessionId"])
	// dbEventId should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["dbEventId"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t, env.channel)

	// Publish transient event (no DB persistence)
	err := env.publisher.PublishAgentProgress(ctx, env.sessionID, NewAgentProgressPayload(env.sessionID, "extraction", "calling extraction model"))
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentProgress, msg["type"])
	assert.Equal(t, "calling extraction model", msg["message"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_StageProgressProtocol(t *testing.T) {
	// Verifies the full stage progress protocol:
	// 1. agent_started (persistent)
	// 2. agent_progress ticks (transient, small payloads)
	// 3. agent_completed (persistent, with duration)
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	// 1. Publish agent_started (persistent)
	err := env.publisher.PublishAgentStarted(ctx, env.sessionID, NewAgentStartedPayload(env.sessionID, "extraction", ""))
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentStarted, msg["type"])
	assert.Equal(t, "extraction", msg["stage"])

	// 2. Publish multiple agent_progress ticks (transient)
	ticks := []string{"parsing purchase order", "parsing goods receipt", "parsing invoice"}
	for _, tick := range ticks {
		err := env.publisher.PublishAgentProgress(ctx, env.sessionID, NewAgentProgressPayload(env.sessionID, "extraction", tick))
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeAgentProgress, msg["type"])
		assert.Equal(t, "extraction", msg["stage"])
		assert.Equal(t, tick, msg["message"])
	}

	// 3. Publish agent_completed (persistent, with duration)
	err = env.publisher.PublishAgentCompleted(ctx, env.sessionID, NewAgentCompletedPayload(env.sessionID, "extraction", 1530))
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeAgentCompleted, msg["type"])
	assert.Equal(t, float64(1530), msg["durationMs"])

	// Only the 2 persistent events should be in DB (started + completed).
	// The 3 agent_progress ticks are transient, not persisted.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 2, "only persistent events should be in DB")
	assert.Equal(t, EventTypeAgentStarted, events[0].Payload["type"])
	assert.Equal(t, EventTypeAgentCompleted, events[1].Payload["type"])
}

func TestIntegration_GlobalChannelMirroring(t *testing.T) {
	// Workflow lifecycle events are mirrored to the global sessions channel
	// (transient copy, no dbEventId) so dashboards see every session without
	// per-session subscriptions.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, GlobalSessionsChannel)

	err := env.publisher.PublishWorkflowStarted(ctx, env.sessionID, NewWorkflowStartedPayload(env.sessionID, 6))
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeWorkflowStarted, msg["type"])
	assert.Equal(t, env.sessionID, msg["sessionId"])
	assert.Nil(t, msg["dbEventId"], "global mirror copies are transient")

	// The durable copy still lands on the session channel.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeWorkflowStarted, events[0].Payload["type"])
}

func TestIntegration_TerminalClose(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	// Publishing workflow_complete delivers the event, then the server
	// closes the subscription.
	err := env.publisher.PublishWorkflowComplete(ctx, env.sessionID, NewWorkflowCompletePayload(env.sessionID, "completed", "FULL_MATCH / APPROVE"))
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeWorkflowComplete, msg["type"])
	assert.Equal(t, "completed", msg["status"])

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "subscription.closed", msg["type"])
	assert.Equal(t, CloseReasonComplete, msg["reason"])

	assert.Equal(t, 0, env.bus.subscriberCount(env.channel))

	// The completion event is persisted for catchup by late readers.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeWorkflowComplete, events[0].Payload["type"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	stages := []string{"extraction", "quantitative", "compliance"}
	for _, stage := range stages {
		err := env.publisher.PublishAgentStarted(ctx, env.sessionID, NewAgentStartedPayload(env.sessionID, stage, ""))
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe, auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for _, stage := range stages {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeAgentStarted, msg["type"])
		assert.Equal(t, stage, msg["stage"])
		assert.NotNil(t, msg["dbEventId"])
	}

	// Explicit catchup from the first event's ID, should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for _, stage := range stages[1:] {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, stage, msg["stage"])
	}

	// No more messages, verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
