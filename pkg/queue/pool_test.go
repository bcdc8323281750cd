package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() *WorkerPool {
	return NewWorkerPool(nil, testQueueConfig(), nil, nil, "test-pod")
}

func TestPoolRegisterAndCancelSession(t *testing.T) {
	pool := testPool()

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("session-1", "worker-1", cancel)

	assert.True(t, pool.CancelSession("session-1"))
	assert.Error(t, ctx.Err(), "context should be cancelled")

	assert.False(t, pool.CancelSession("unknown"))
}

func TestPoolUnregisterSession(t *testing.T) {
	pool := testPool()

	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.RegisterSession("session-1", "worker-1", cancel)
	require.Equal(t, 1, pool.ActiveSessionCount())

	pool.UnregisterSession("session-1")
	assert.Equal(t, 0, pool.ActiveSessionCount())
	assert.False(t, pool.CancelSession("session-1"))
}

func TestPoolActiveSessionCount(t *testing.T) {
	pool := testPool()
	assert.Equal(t, 0, pool.ActiveSessionCount())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterSession("session-a", "worker-1", cancel1)
	pool.RegisterSession("session-b", "worker-2", cancel2)

	assert.Equal(t, 2, pool.ActiveSessionCount())
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := testPool()

	// Stop before Start closes the channel and returns; the second call
	// must hit the sync.Once guard, not a double close.
	pool.Stop()
	assert.NotPanics(t, func() { pool.Stop() })
}
