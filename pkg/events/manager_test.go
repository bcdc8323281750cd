package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests. Unlike the real
// querier it holds events in memory, but it respects sinceID and limit.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []CatchupEvent
	for _, evt := range m.events {
		if evt.ID > sinceID {
			result = append(result, evt)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func setupTestManager(t *testing.T) (*Bus, *ConnectionManager, *httptest.Server) {
	t.Helper()
	return setupTestManagerWithQuerier(t, &mockCatchupQuerier{})
}

func setupTestManagerWithQuerier(t *testing.T, querier CatchupQuerier) (*Bus, *ConnectionManager, *httptest.Server) {
	t.Helper()

	bus := NewBus()
	manager := NewConnectionManager(bus, querier, 5*time.Second)
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
	return bus, manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeWS subscribes a connection to a channel and reads the
// subscription.confirmed reply. The bus subscription exists once the
// confirmation has been read, so no settling sleep is needed.
func subscribeWS(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))

	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Equal(t, channel, msg["channel"])
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, _, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connectionId"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	bus, manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	subscribeWS(t, conn, "session:test-123")

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, bus.subscriberCount("session:test-123"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	bus, _, server := setupTestManager(t)

	// Connect two clients and subscribe both to same channel
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)

	// Read connection.established for both
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := "session:broadcast-test"
	subscribeWS(t, conn1, channel)
	subscribeWS(t, conn2, channel)

	// Broadcast a message
	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	bus.Broadcast(channel, payload)

	// Both clients should receive the message
	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "test", msg1["type"])
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "test", msg2["type"])
	assert.Equal(t, "hello", msg2["data"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, _, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	// Send ping
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	err := conn.Write(ctx, websocket.MessageText, pingMsg)
	require.NoError(t, err)

	// Expect pong
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	// Subscribing replays the channel's durable history so late subscribers
	// don't miss anything.
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeWorkflowStarted, "seq": 1}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeAgentStarted, "seq": 2}},
		{ID: 12, Payload: map[string]interface{}{"type": EventTypeAgentCompleted, "seq": 3}},
	}
	_, _, server := setupTestManagerWithQuerier(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeWS(t, conn, "session:catchup-auto")

	for i := 1; i <= 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
		assert.Equal(t, float64(i+9), msg["dbEventId"], "catchup must inject the DB row id")
	}
}

func TestConnectionManager_ExplicitCatchup(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeWorkflowStarted, "seq": 1}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeAgentStarted, "seq": 2}},
		{ID: 12, Payload: map[string]interface{}{"type": EventTypeAgentCompleted, "seq": 3}},
	}
	_, _, server := setupTestManagerWithQuerier(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeWS(t, conn, "session:catchup-explicit")

	// Drain the auto-catchup replay.
	for i := 1; i <= 3; i++ {
		readJSON(t, conn)
	}

	// Explicit catchup from the first event's ID returns only the tail.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	lastEventID := 10
	catchupMsg, _ := json.Marshal(ClientMessage{Action: "catchup", Channel: "session:catchup-explicit", LastEventID: &lastEventID})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
	}

	// No more messages, verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	// Create querier that returns more events than catchup limit
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID: i + 1,
			Payload: map[string]interface{}{
				"type": EventTypeAgentProgress,
				"seq":  i,
			},
		}
	}
	_, _, server := setupTestManagerWithQuerier(t, &mockCatchupQuerier{events: manyEvents})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeWS(t, conn, "session:overflow-test")

	// The auto-catchup replays up to the limit and then reports overflow.
	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["hasMore"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// Catchup error should be logged but not crash the connection.
	// Verify the connection remains usable after a catchup query failure.
	_, _, server := setupTestManagerWithQuerier(t, &mockCatchupQuerier{err: fmt.Errorf("database unreachable")})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeWS(t, conn, "session:err-test")

	// Connection should still be alive, ping/pong works
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	bus, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "session:concurrent-test"
	subscribeWS(t, conn, channel)

	// Broadcast 20 messages concurrently
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "concurrent", "idx": idx})
			bus.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	bus, _, _ := setupTestManager(t)

	// Should not panic
	payload, _ := json.Marshal(map[string]string{"type": "test"})
	bus.Broadcast("nonexistent-channel", payload)
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	bus, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribe to two channels
	subscribeWS(t, conn, "session:ch1")
	subscribeWS(t, conn, "session:ch2")

	// Broadcast to channel 1 only
	payload, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch1"})
	bus.Broadcast("session:ch1", payload)

	msg := readJSON(t, conn)
	assert.Equal(t, "ch1", msg["channel"])

	// Broadcast to channel 2 only
	payload2, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch2"})
	bus.Broadcast("session:ch2", payload2)

	msg2 := readJSON(t, conn)
	assert.Equal(t, "ch2", msg2["channel"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	bus, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "session:unsub-test"
	subscribeWS(t, conn, channel)

	// Unsubscribe
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, unsubMsg))

	// Wait for the server to process the unsubscribe.
	require.Eventually(t, func() bool {
		return bus.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast, should NOT be received
	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	bus.Broadcast(channel, payload)

	// Try to read, should timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()

	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// Client subscribed to ch1 should NOT receive ch2 broadcasts
	bus, _, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2) // connection.established

	// conn1 subscribes to ch1, conn2 subscribes to ch2
	subscribeWS(t, conn1, "session:ch1")
	subscribeWS(t, conn2, "session:ch2")

	// Broadcast to ch1, only conn1 should receive
	payload1, _ := json.Marshal(map[string]string{"type": "test", "target": "ch1"})
	bus.Broadcast("session:ch1", payload1)

	msg := readJSON(t, conn1)
	assert.Equal(t, "ch1", msg["target"])

	// conn2 should NOT receive ch1's message, verify with timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_TerminalClose(t *testing.T) {
	bus, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := SessionChannel("terminal-test")
	subscribeWS(t, conn, channel)

	// The terminal event is delivered, then the server closes the
	// subscription and tells the client.
	payload, _ := json.Marshal(NewWorkflowCompletePayload("terminal-test", "completed", "FULL_MATCH / APPROVE"))
	bus.Broadcast(channel, payload)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeWorkflowComplete, msg["type"])

	msg = readJSON(t, conn)
	assert.Equal(t, "subscription.closed", msg["type"])
	assert.Equal(t, channel, msg["channel"])
	assert.Equal(t, CloseReasonComplete, msg["reason"])

	assert.Equal(t, 0, bus.subscriberCount(channel))

	// The connection itself stays usable.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Subscribe with empty channel should return error
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: ""})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Unsubscribe with empty channel should return error
	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: ""})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, unsubMsg))
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Catchup with empty channel should return error
	lastEventID := 0
	catchupMsg, _ := json.Marshal(ClientMessage{Action: "catchup", Channel: "", LastEventID: &lastEventID})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, catchupMsg))
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection should still be alive after validation errors
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	bus, manager, server := setupTestManager(t)

	// Connect and subscribe
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	// Read connection.established
	_, _, err = conn.Read(ctx)
	require.NoError(t, err)

	// Subscribe
	channel := "session:cleanup-test"
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, bus.subscriberCount(channel))

	// Close the connection
	conn.Close(websocket.StatusNormalClosure, "")

	// Connection and its bus subscriptions should be cleaned up
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && bus.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast should not panic
	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		bus.Broadcast(channel, payload)
	})
}
