package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	r.Register("sess-1", "pod-a-worker-0", cancel)

	require.Equal(t, 1, r.Len())
	assert.True(t, r.Cancel("sess-1"))
	assert.Error(t, ctx.Err(), "cancel function should have fired")

	// Unknown sessions are reported, not invented
	assert.False(t, r.Cancel("sess-unknown"))
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()

	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Register("sess-1", "pod-a-worker-0", cancel)
	r.Unregister("sess-1")

	assert.Zero(t, r.Len())
	assert.False(t, r.Cancel("sess-1"))

	// Unregistering twice is harmless
	r.Unregister("sess-1")
}

func TestRegistryActive(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Active())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	r.Register("sess-1", "pod-a-worker-0", cancel1)
	r.Register("sess-2", "pod-a-worker-1", cancel2)

	runs := r.Active()
	require.Len(t, runs, 2)
	ids := map[string]string{}
	for _, run := range runs {
		ids[run.SessionID] = run.WorkerID
		assert.False(t, run.StartedAt.IsZero())
	}
	assert.Equal(t, "pod-a-worker-0", ids["sess-1"])
	assert.Equal(t, "pod-a-worker-1", ids["sess-2"])
}

func TestRegistryReregisterReplaces(t *testing.T) {
	r := NewRegistry()

	ctx1, cancel1 := context.WithCancel(context.Background())
	r.Register("sess-1", "pod-a-worker-0", cancel1)

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	r.Register("sess-1", "pod-a-worker-1", cancel2)

	require.Equal(t, 1, r.Len())
	assert.True(t, r.Cancel("sess-1"))
	assert.NoError(t, ctx1.Err(), "replaced entry must not cancel the old context")
	assert.Error(t, ctx2.Err())
	cancel1()
	<-ctx1.Done()
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, cancel := context.WithCancel(context.Background())
			defer cancel()
			id := string(rune('a' + n%26))
			r.Register(id, "pod-a-worker-0", cancel)
			r.Cancel(id)
			_ = r.Active()
			r.Unregister(id)
		}(i)
	}
	wg.Wait()

	assert.Zero(t, r.Len())
}
