package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup response.
// If more events are missed, a catchup.overflow message tells the client to
// do a full REST reload.
const catchupLimit = 200

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries events for catchup. Implemented by EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager manages WebSocket connections and speaks the client
// subscribe/unsubscribe/catchup protocol. Channel routing and fan-out live
// in the Bus; the manager bridges bus subscriptions onto sockets. Each Go
// process (pod) has one ConnectionManager instance.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Bus for channel routing and fan-out
	bus *Bus

	// CatchupQuerier for catchup queries
	catchupQuerier CatchupQuerier

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads and
// writes (subscribe, unsubscribe, unregisterConnection) happen on the single
// goroutine that owns this connection (HandleConnection's read loop and its
// deferred cleanup). Pump goroutines read their own *Subscription but never
// touch the map. If a Connection is ever mutated from a different goroutine
// (e.g. an admin "kick" feature), subscriptions must be protected by a mutex.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]*Subscription // channels this connection is subscribed to
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(bus *Bus, catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		bus:            bus,
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]*Subscription),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	// Send connection established message
	m.sendJSON(c, map[string]string{
		"type":         "connection.established",
		"connectionId": connID,
	})

	// Read loop, processes client messages until connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or error, exit read loop
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up: deliver all prior events so late subscribers don't miss anything.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe opens a bus subscription for the channel and starts a pump
// goroutine forwarding bus events onto the socket. The bus performs LISTEN
// synchronously before Subscribe returns, which guarantees that the
// subsequent auto-catchup runs with LISTEN already active, closing the gap
// where events published between catchup and LISTEN would be lost.
//
// Returns an error if the bus subscription fails so the caller can inform
// the client instead of sending a false subscription.confirmed.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	if _, exists := c.subscriptions[channel]; exists {
		return nil // Already subscribed
	}

	sub, err := m.bus.Subscribe(c.ctx, channel)
	if err != nil {
		return fmt.Errorf("subscribe to channel %s: %w", channel, err)
	}
	c.subscriptions[channel] = sub

	go m.pump(c, sub)
	return nil
}

// unsubscribe closes the connection's bus subscription for a channel.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	if sub, exists := c.subscriptions[channel]; exists {
		sub.Close()
		delete(c.subscriptions, channel)
	}
}

// pump forwards bus events for one subscription onto the socket until the
// subscription closes. When the subscriber lags (bus dropped events), the
// client is told how many events it missed so it can catchup by dbEventId.
//
// A stale c.subscriptions entry may remain after a server-side close. This
// is harmless: Subscription.Close is idempotent, and unsubscribe /
// unregisterConnection handle already-closed subscriptions gracefully.
func (m *ConnectionManager) pump(c *Connection, sub *Subscription) {
	var reported int64
	for event := range sub.Events() {
		if dropped := sub.Lagged(); dropped > reported {
			m.sendJSON(c, map[string]interface{}{
				"type":    "subscription.lagged",
				"channel": sub.Channel,
				"dropped": dropped - reported,
			})
			reported = dropped
		}
		if err := m.sendRaw(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.ID, "channel", sub.Channel, "error", err)
			// Writer is broken; release the bus subscription so the bus
			// stops buffering for a dead socket. The read loop's cleanup
			// handles the connection itself.
			sub.Close()
			return
		}
	}

	switch sub.CloseReason() {
	case CloseReasonComplete:
		// Terminal event delivered; tell the client the stream is over.
		m.sendJSON(c, map[string]string{
			"type":    "subscription.closed",
			"channel": sub.Channel,
			"reason":  CloseReasonComplete,
		})
	case CloseReasonListenFailed:
		// This subscriber piggybacked on a LISTEN that later failed. The
		// client must treat this as authoritative: discard received events
		// and re-subscribe with back-off or fall back to REST polling.
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.ID, "channel", sub.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.error",
			"channel": sub.Channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// handleCatchup sends missed events since lastEventID to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchupQuerier == nil {
		return
	}

	// Query events from DB since lastEventID (capped at catchupLimit + 1 to detect overflow)
	events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	// Check if more events exist beyond the limit
	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// Send missed events in order, injecting dbEventId for position tracking.
	// The stored payload doesn't contain dbEventId (it's only added to the
	// NOTIFY payload at publish time), so we add it here from the DB row ID.
	for _, evt := range events {
		evt.Payload["dbEventId"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	// If more events were missed than the catchup limit, tell the client
	// to do a full REST reload instead of paginating catchup requests.
	if hasMore {
		m.sendJSON(c, map[string]interface{}{
			"type":    "catchup.overflow",
			"channel": channel,
			"hasMore": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	// Release all bus subscriptions
	for ch, sub := range c.subscriptions {
		sub.Close()
		delete(c.subscriptions, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
