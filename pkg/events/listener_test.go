package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	bus := NewBus()
	listener := NewNotifyListener("postgres://localhost/test", bus)

	assert.NotNil(t, listener)
	assert.Equal(t, "postgres://localhost/test", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Empty(t, listener.channels)
	assert.Same(t, bus, listener.bus)
	assert.False(t, listener.running.Load())
}

func TestNotifyListener_SubscribeWithoutConnection(t *testing.T) {
	// Subscribe before Start must fail rather than hang: the Bus relies on
	// the error to tear down the orphaned channel.
	listener := NewNotifyListener("postgres://invalid/test", NewBus())

	err := listener.Subscribe(context.Background(), "session:test-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
	assert.False(t, listener.isListening("session:test-1"))
}

func TestNotifyListener_UnsubscribeWithoutConnection(t *testing.T) {
	// Unsubscribing a channel that was never LISTENed is a no-op.
	listener := NewNotifyListener("postgres://invalid/test", NewBus())

	err := listener.Unsubscribe(context.Background(), "session:test-1")
	assert.NoError(t, err)
}
