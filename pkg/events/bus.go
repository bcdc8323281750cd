package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SubscriberBuffer is the delivery channel capacity of each subscription.
// When a subscriber falls behind by more than this many events, the oldest
// buffered event is dropped and the subscription's lagged counter grows.
const SubscriberBuffer = 128

// KeepAliveInterval is how often the bus emits a ping to every live
// subscription so idle WebSocket connections are not reaped by proxies.
const KeepAliveInterval = 15 * time.Second

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber joins a channel. Without this, a stalled connection would block
// the subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// Subscription close reasons, readable via CloseReason after the delivery
// channel is closed.
const (
	CloseReasonComplete     = "workflow_complete"
	CloseReasonUnsubscribed = "unsubscribed"
	CloseReasonListenFailed = "listen_failed"
	CloseReasonShutdown     = "shutdown"
)

// Remote propagates channel interest to a cross-pod transport, typically the
// PostgreSQL NOTIFY listener. The bus calls Subscribe when the first local
// subscriber joins a channel and Unsubscribe when the last one leaves.
type Remote interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Subscription is a single consumer's handle on a bus channel. Events arrive
// pre-marshaled on Events(); the channel is closed server-side after the
// terminal workflow_complete event, on Close, or on bus shutdown.
type Subscription struct {
	ID      string
	Channel string

	bus    *Bus
	ch     chan []byte
	lagged atomic.Int64

	// closed and closeReason are guarded by bus.mu. closeReason is safe to
	// read without the lock once Events() has been drained: the channel
	// close synchronizes with the final receive.
	closed      bool
	closeReason string
}

// Events returns the delivery channel. It is closed when the subscription
// ends; CloseReason explains why.
func (s *Subscription) Events() <-chan []byte {
	return s.ch
}

// Lagged returns how many events were dropped because this subscriber fell
// more than SubscriberBuffer events behind.
func (s *Subscription) Lagged() int64 {
	return s.lagged.Load()
}

// CloseReason returns why the subscription ended. Only meaningful after
// Events() has been closed and drained.
func (s *Subscription) CloseReason() string {
	return s.closeReason
}

// Close removes the subscription from the bus. Safe to call more than once
// and after a server-side close.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s, CloseReasonUnsubscribed)
}

// Bus fans events out to in-process subscribers, one delivery channel per
// subscription. Each Go process (pod) has one Bus instance; cross-pod
// distribution happens by pairing the Bus with a NotifyListener that feeds
// Broadcast from PostgreSQL NOTIFY.
//
// Delivery is FIFO per channel: Broadcast serializes senders through a
// mutex, so two events published in order are buffered in order on every
// subscription.
type Bus struct {
	// Channel subscriptions: channel → subscription_id → subscription
	subs map[string]map[string]*Subscription
	mu   sync.Mutex

	// Remote for dynamic LISTEN/UNLISTEN (set after construction)
	listener   Remote
	listenerMu sync.RWMutex

	// Keepalive cadence, overridable in tests
	keepAlive time.Duration
}

// NewBus creates a Bus with the default keepalive interval. Call Start to
// begin emitting pings.
func NewBus() *Bus {
	return &Bus{
		subs:      make(map[string]map[string]*Subscription),
		keepAlive: KeepAliveInterval,
	}
}

// SetListener sets the Remote used for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Bus and NotifyListener are created.
func (b *Bus) SetListener(l Remote) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Start launches the keepalive loop. The loop exits when ctx is cancelled.
func (b *Bus) Start(ctx context.Context) {
	go b.keepAliveLoop(ctx)
}

// Stop closes every live subscription with CloseReasonShutdown.
func (b *Bus) Stop() {
	b.mu.Lock()
	for channel, chanSubs := range b.subs {
		for _, sub := range chanSubs {
			sub.closed = true
			sub.closeReason = CloseReasonShutdown
			close(sub.ch)
		}
		delete(b.subs, channel)
	}
	b.mu.Unlock()
}

// Subscribe registers a new subscription on a channel and starts LISTEN if
// this is the channel's first subscriber. LISTEN is synchronous so that by
// the time Subscribe returns, remotely published events will reach the new
// subscription; this closes the gap where events published between catchup
// and LISTEN would be lost.
func (b *Bus) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	sub := &Subscription{
		ID:      uuid.New().String(),
		Channel: channel,
		bus:     b,
		ch:      make(chan []byte, SubscriberBuffer),
	}

	b.mu.Lock()
	chanSubs, exists := b.subs[channel]
	if !exists {
		chanSubs = make(map[string]*Subscription)
		b.subs[channel] = chanSubs
	}
	chanSubs[sub.ID] = sub
	b.mu.Unlock()

	if !exists {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				b.closeChannel(channel, CloseReasonListenFailed)
				return nil, fmt.Errorf("listen on channel %s: %w", channel, err)
			}
		}
	}

	return sub, nil
}

// unsubscribe removes one subscription and stops LISTEN if it was the
// channel's last subscriber.
func (b *Bus) unsubscribe(sub *Subscription, reason string) {
	b.mu.Lock()
	if sub.closed {
		b.mu.Unlock()
		return
	}
	sub.closed = true
	sub.closeReason = reason
	close(sub.ch)

	wasLast := false
	if chanSubs, exists := b.subs[sub.Channel]; exists {
		delete(chanSubs, sub.ID)
		if len(chanSubs) == 0 {
			delete(b.subs, sub.Channel)
			wasLast = true
		}
	}
	b.mu.Unlock()

	if wasLast {
		b.releaseRemote(sub.Channel)
	}
}

// closeChannel closes every subscription on a channel with the given reason.
// Used after a LISTEN failure (all subscribers are orphaned, including ones
// that piggybacked on the in-flight LISTEN) and after the terminal event.
func (b *Bus) closeChannel(channel, reason string) {
	b.mu.Lock()
	chanSubs := b.subs[channel]
	for _, sub := range chanSubs {
		sub.closed = true
		sub.closeReason = reason
		close(sub.ch)
	}
	delete(b.subs, channel)
	b.mu.Unlock()

	if len(chanSubs) > 0 {
		b.releaseRemote(channel)
	}
}

// releaseRemote stops LISTEN for a channel that has lost its last
// subscriber. The goroutine re-checks b.subs before issuing UNLISTEN to
// prevent a race where a rapid unsubscribe/resubscribe cycle would drop the
// LISTEN:
//
//	subscribe   → LISTEN active
//	unsubscribe → goroutine: UNLISTEN (deferred)
//	resubscribe → channel re-added to b.subs
//	goroutine   → sees resubscribed → skips UNLISTEN
func (b *Bus) releaseRemote(channel string) {
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		b.mu.Lock()
		_, resubscribed := b.subs[channel]
		b.mu.Unlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// Broadcast delivers a pre-marshaled event to every subscription on the
// channel. Delivery never blocks: a full subscription drops its oldest
// buffered event and increments its lagged counter.
//
// If the event is workflow_complete on a session channel, every
// subscription on that channel is closed after delivery.
func (b *Bus) Broadcast(channel string, event []byte) {
	terminal := IsSessionChannel(channel) && eventTypeOf(event) == EventTypeWorkflowComplete

	b.mu.Lock()
	chanSubs := b.subs[channel]
	for _, sub := range chanSubs {
		b.deliver(sub, event)
	}
	if terminal {
		for _, sub := range chanSubs {
			sub.closed = true
			sub.closeReason = CloseReasonComplete
			close(sub.ch)
		}
		delete(b.subs, channel)
	}
	b.mu.Unlock()

	if terminal && len(chanSubs) > 0 {
		b.releaseRemote(channel)
	}
}

// deliver buffers one event on a subscription. Caller holds b.mu.
func (b *Bus) deliver(sub *Subscription, event []byte) {
	select {
	case sub.ch <- event:
	default:
		// Buffer full: drop the oldest event to make room. Receivers only
		// drain, and b.mu serializes senders, so the retry cannot block.
		select {
		case <-sub.ch:
			sub.lagged.Add(1)
		default:
		}
		sub.ch <- event
	}
}

// keepAliveLoop emits a ping to every live subscription on a fixed cadence.
// Pings are bus-local: they are never persisted or routed through Postgres.
func (b *Bus) keepAliveLoop(ctx context.Context) {
	ticker := time.NewTicker(b.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			data, err := json.Marshal(NewPingPayload())
			if err != nil {
				continue
			}
			b.broadcastAll(data)
		}
	}
}

// broadcastAll delivers an event to every subscription on every channel.
func (b *Bus) broadcastAll(event []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, chanSubs := range b.subs {
		for _, sub := range chanSubs {
			b.deliver(sub, event)
		}
	}
}

// ActiveSubscriptions returns the count of live subscriptions across all
// channels.
func (b *Bus) ActiveSubscriptions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, chanSubs := range b.subs {
		n += len(chanSubs)
	}
	return n
}

// subscriberCount returns the number of subscriptions for a channel.
// Unexported, used by tests to poll instead of sleeping.
func (b *Bus) subscriberCount(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[channel])
}

// eventTypeOf peeks at the type field of a marshaled event. Returns "" for
// payloads that do not parse as a JSON object.
func eventTypeOf(event []byte) string {
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(event, &peek); err != nil {
		return ""
	}
	return peek.Type
}

// --- Direct publish methods ---
//
// These mirror EventPublisher's routing (session channel, plus the global
// channel for run lifecycle events) but deliver in-process only, with no
// persistence. Single-binary deployments and tests use the Bus itself as
// the progress emitter; multi-pod deployments publish through
// EventPublisher and let the NotifyListener feed Broadcast instead.

func (b *Bus) publishLocal(sessionID string, payload any, alsoGlobal bool) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %T: %w", payload, err)
	}
	b.Broadcast(SessionChannel(sessionID), data)
	if alsoGlobal {
		b.Broadcast(GlobalSessionsChannel, data)
	}
	return nil
}

// PublishWorkflowStarted delivers a workflow_started event locally.
func (b *Bus) PublishWorkflowStarted(ctx context.Context, sessionID string, payload WorkflowStartedPayload) error {
	return b.publishLocal(sessionID, payload, true)
}

// PublishAgentStarted delivers an agent_started event locally.
func (b *Bus) PublishAgentStarted(ctx context.Context, sessionID string, payload AgentStartedPayload) error {
	return b.publishLocal(sessionID, payload, false)
}

// PublishAgentProgress delivers an agent_progress event locally.
func (b *Bus) PublishAgentProgress(ctx context.Context, sessionID string, payload AgentProgressPayload) error {
	return b.publishLocal(sessionID, payload, false)
}

// PublishAgentCompleted delivers an agent_completed event locally.
func (b *Bus) PublishAgentCompleted(ctx context.Context, sessionID string, payload AgentCompletedPayload) error {
	return b.publishLocal(sessionID, payload, false)
}

// PublishDivergenceAlert delivers a divergence_alert event locally.
func (b *Bus) PublishDivergenceAlert(ctx context.Context, sessionID string, payload DivergenceAlertPayload) error {
	return b.publishLocal(sessionID, payload, false)
}

// PublishDivergenceClear delivers a divergence_clear event locally.
func (b *Bus) PublishDivergenceClear(ctx context.Context, sessionID string, payload DivergenceClearPayload) error {
	return b.publishLocal(sessionID, payload, false)
}

// PublishWorkflowComplete delivers the terminal workflow_complete event
// locally, closing every subscription on the session channel.
func (b *Bus) PublishWorkflowComplete(ctx context.Context, sessionID string, payload WorkflowCompletePayload) error {
	return b.publishLocal(sessionID, payload, true)
}

// PublishWorkflowError delivers a workflow_error event locally.
func (b *Bus) PublishWorkflowError(ctx context.Context, sessionID string, payload WorkflowErrorPayload) error {
	return b.publishLocal(sessionID, payload, true)
}
