package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote records LISTEN/UNLISTEN calls for bus tests.
type fakeRemote struct {
	mu           sync.Mutex
	listens      []string
	unlistens    []string
	failChannels map[string]error
}

func (r *fakeRemote) Subscribe(_ context.Context, channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failChannels[channel]; ok {
		return err
	}
	r.listens = append(r.listens, channel)
	return nil
}

func (r *fakeRemote) Unsubscribe(_ context.Context, channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unlistens = append(r.unlistens, channel)
	return nil
}

func (r *fakeRemote) listenCount(channel string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ch := range r.listens {
		if ch == channel {
			n++
		}
	}
	return n
}

func (r *fakeRemote) unlistenCount(channel string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ch := range r.unlistens {
		if ch == channel {
			n++
		}
	}
	return n
}

// readEvent reads one event from a subscription with a timeout.
func readEvent(t *testing.T, sub *Subscription) map[string]any {
	t.Helper()
	select {
	case data, ok := <-sub.Events():
		require.True(t, ok, "subscription closed while expecting an event")
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// requireClosed asserts the next receive observes the closed channel.
func requireClosed(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case data, ok := <-sub.Events():
		require.False(t, ok, "expected closed subscription, got event: %s", data)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestBus_FIFOOrdering(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(context.Background(), SessionChannel("fifo"))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		bus.Broadcast(SessionChannel("fifo"), []byte(fmt.Sprintf(`{"type":"agent_progress","seq":%d}`, i)))
	}

	for i := 0; i < 50; i++ {
		msg := readEvent(t, sub)
		assert.Equal(t, float64(i), msg["seq"], "events must arrive in publish order")
	}
}

func TestBus_DropOldestWhenFull(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(context.Background(), SessionChannel("slow"))
	require.NoError(t, err)

	// Publish more than the buffer holds without draining.
	const overflow = 7
	for i := 0; i < SubscriberBuffer+overflow; i++ {
		bus.Broadcast(SessionChannel("slow"), []byte(fmt.Sprintf(`{"type":"agent_progress","seq":%d}`, i)))
	}

	assert.Equal(t, int64(overflow), sub.Lagged(), "each overflowing event should drop exactly one")

	// The oldest events were dropped; delivery resumes at seq == overflow.
	first := readEvent(t, sub)
	assert.Equal(t, float64(overflow), first["seq"])

	// Drain the rest and verify the newest event survived.
	var last map[string]any
	for i := 1; i < SubscriberBuffer; i++ {
		last = readEvent(t, sub)
	}
	assert.Equal(t, float64(SubscriberBuffer+overflow-1), last["seq"])
}

func TestBus_TerminalCloseOnWorkflowComplete(t *testing.T) {
	bus := NewBus()
	channel := SessionChannel("done")

	sub1, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	sub2, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	require.Equal(t, 2, bus.subscriberCount(channel))

	bus.Broadcast(channel, mustMarshal(t, NewAgentStartedPayload("done", "drafting", "")))
	bus.Broadcast(channel, mustMarshal(t, NewWorkflowCompletePayload("done", "completed", "FULL_MATCH / APPROVE")))

	for _, sub := range []*Subscription{sub1, sub2} {
		msg := readEvent(t, sub)
		assert.Equal(t, EventTypeAgentStarted, msg["type"])

		msg = readEvent(t, sub)
		assert.Equal(t, EventTypeWorkflowComplete, msg["type"])

		// Terminal event delivered; the bus closes the subscription.
		requireClosed(t, sub)
		assert.Equal(t, CloseReasonComplete, sub.CloseReason())
	}

	assert.Equal(t, 0, bus.subscriberCount(channel))
}

func TestBus_TerminalDoesNotCloseGlobalChannel(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(context.Background(), GlobalSessionsChannel)
	require.NoError(t, err)

	// Lifecycle events are mirrored on the global channel; they must not
	// tear down dashboard subscriptions.
	bus.Broadcast(GlobalSessionsChannel, mustMarshal(t, NewWorkflowCompletePayload("some-session", "completed", "")))

	msg := readEvent(t, sub)
	assert.Equal(t, EventTypeWorkflowComplete, msg["type"])
	assert.Equal(t, 1, bus.subscriberCount(GlobalSessionsChannel))
	assert.Empty(t, sub.CloseReason())
}

func TestBus_SubscriptionClose(t *testing.T) {
	bus := NewBus()
	channel := SessionChannel("closer")

	sub, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	require.Equal(t, 1, bus.subscriberCount(channel))

	sub.Close()
	requireClosed(t, sub)
	assert.Equal(t, CloseReasonUnsubscribed, sub.CloseReason())
	assert.Equal(t, 0, bus.subscriberCount(channel))

	// Closing again is a no-op.
	assert.NotPanics(t, func() { sub.Close() })

	// Broadcasting to the emptied channel must not panic.
	assert.NotPanics(t, func() {
		bus.Broadcast(channel, []byte(`{"type":"agent_progress"}`))
	})
}

func TestBus_RemoteListenUnlisten(t *testing.T) {
	bus := NewBus()
	remote := &fakeRemote{}
	bus.SetListener(remote)

	channel := SessionChannel("remote")

	// First subscriber triggers LISTEN.
	sub1, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.listenCount(channel))

	// Second subscriber piggybacks on the existing LISTEN.
	sub2, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.listenCount(channel))

	// First unsubscribe leaves the LISTEN active.
	sub1.Close()
	assert.Equal(t, 0, remote.unlistenCount(channel))

	// Last unsubscribe releases it (asynchronously, after the re-check).
	sub2.Close()
	require.Eventually(t, func() bool {
		return remote.unlistenCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond, "UNLISTEN should fire after the last subscriber leaves")
}

func TestBus_RemoteListenFailure(t *testing.T) {
	bus := NewBus()
	channel := SessionChannel("broken")
	remote := &fakeRemote{failChannels: map[string]error{channel: fmt.Errorf("conn busy")}}
	bus.SetListener(remote)

	sub, err := bus.Subscribe(context.Background(), channel)
	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, 0, bus.subscriberCount(channel), "failed channel must not retain subscribers")

	// A healthy channel still works afterwards.
	ok, err := bus.Subscribe(context.Background(), SessionChannel("healthy"))
	require.NoError(t, err)
	require.NotNil(t, ok)
}

func TestBus_KeepAlivePing(t *testing.T) {
	bus := NewBus()
	bus.keepAlive = 20 * time.Millisecond
	bus.Start(t.Context())

	sub, err := bus.Subscribe(context.Background(), SessionChannel("idle"))
	require.NoError(t, err)

	msg := readEvent(t, sub)
	assert.Equal(t, EventTypePing, msg["type"])
	assert.NotEmpty(t, msg["timestamp"])
}

func TestBus_Stop(t *testing.T) {
	bus := NewBus()
	sub1, err := bus.Subscribe(context.Background(), SessionChannel("a"))
	require.NoError(t, err)
	sub2, err := bus.Subscribe(context.Background(), GlobalSessionsChannel)
	require.NoError(t, err)
	require.Equal(t, 2, bus.ActiveSubscriptions())

	bus.Stop()

	requireClosed(t, sub1)
	requireClosed(t, sub2)
	assert.Equal(t, CloseReasonShutdown, sub1.CloseReason())
	assert.Equal(t, CloseReasonShutdown, sub2.CloseReason())
	assert.Equal(t, 0, bus.ActiveSubscriptions())
}

func TestBus_DirectPublishRouting(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	sessionSub, err := bus.Subscribe(ctx, SessionChannel("s9"))
	require.NoError(t, err)
	globalSub, err := bus.Subscribe(ctx, GlobalSessionsChannel)
	require.NoError(t, err)

	// Stage events go to the session channel only.
	require.NoError(t, bus.PublishAgentStarted(ctx, "s9", NewAgentStartedPayload("s9", "extraction", "")))
	// Lifecycle events are mirrored on the global channel.
	require.NoError(t, bus.PublishWorkflowComplete(ctx, "s9", NewWorkflowCompletePayload("s9", "completed", "")))

	msg := readEvent(t, sessionSub)
	assert.Equal(t, EventTypeAgentStarted, msg["type"])
	msg = readEvent(t, sessionSub)
	assert.Equal(t, EventTypeWorkflowComplete, msg["type"])
	requireClosed(t, sessionSub)

	// The global subscriber sees only the lifecycle event and stays open.
	msg = readEvent(t, globalSub)
	assert.Equal(t, EventTypeWorkflowComplete, msg["type"])
	assert.Equal(t, 1, bus.subscriberCount(GlobalSessionsChannel))
}

func TestBus_ConcurrentBroadcast(t *testing.T) {
	bus := NewBus()
	channel := SessionChannel("concurrent")
	sub, err := bus.Subscribe(context.Background(), channel)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			bus.Broadcast(channel, []byte(fmt.Sprintf(`{"type":"agent_progress","idx":%d}`, idx)))
		}(i)
	}
	wg.Wait()

	seen := make(map[float64]bool)
	for i := 0; i < 20; i++ {
		msg := readEvent(t, sub)
		seen[msg["idx"].(float64)] = true
	}
	assert.Len(t, seen, 20, "all broadcasts should be delivered exactly once")
}
