package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name     string
	terminal bool

	mu          sync.Mutex
	completions int
	vectors     int

	completeFn func(ctx context.Context, req CompletionRequest) (string, error)
	vectorFn   func(ctx context.Context, prompt string) ([]float64, error)
}

func (f *fakeProvider) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeProvider) Terminal() bool { return f.terminal }

func (f *fakeProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.mu.Lock()
	f.completions++
	f.mu.Unlock()
	if f.completeFn == nil {
		return "", &ProviderError{Provider: f.Name(), Class: FailTransport, Err: errors.New("unscripted")}
	}
	return f.completeFn(ctx, req)
}

func (f *fakeProvider) ReasoningVector(ctx context.Context, prompt string) ([]float64, error) {
	f.mu.Lock()
	f.vectors++
	f.mu.Unlock()
	if f.vectorFn == nil {
		return nil, &ProviderError{Provider: f.Name(), Class: FailTransport, Err: errors.New("unscripted")}
	}
	return f.vectorFn(ctx, prompt)
}

func (f *fakeProvider) completionCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completions
}

func testConfig() RouterConfig {
	return RouterConfig{RetryBaseDelay: time.Millisecond}
}

func TestRouterFailover(t *testing.T) {
	t.Run("healthy provider serves", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
		}))
		defer server.Close()

		router := NewRouter([]Provider{
			NewCloudProvider(CloudOptions{BaseURL: server.URL, Model: "test-model"}),
		}, testConfig(), nil)

		result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "hello", result.Text)
		assert.Equal(t, "cloud", result.Provider)
		assert.False(t, result.Degraded)
	})

	t.Run("outage falls through to deterministic", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		router := NewRouter([]Provider{
			NewCloudProvider(CloudOptions{BaseURL: server.URL, Model: "test-model"}),
		}, testConfig(), nil)

		result, err := router.Complete(context.Background(), CompletionRequest{
			Prompt:     "analyze",
			JSONMode:   true,
			SchemaHint: SchemaComplianceReview,
		})
		require.NoError(t, err)
		assert.Equal(t, "deterministic", result.Provider)
		assert.True(t, result.Degraded)
		assert.Contains(t, result.Text, "risk_score")
	})

	t.Run("rate limit retries then succeeds", func(t *testing.T) {
		var mu sync.Mutex
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"third time"}}]}`))
		}))
		defer server.Close()

		router := NewRouter([]Provider{
			NewCloudProvider(CloudOptions{BaseURL: server.URL, Model: "test-model"}),
		}, testConfig(), nil)

		result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "third time", result.Text)
		assert.False(t, result.Degraded)
		mu.Lock()
		assert.Equal(t, 3, calls)
		mu.Unlock()
	})

	t.Run("malformed JSON fails the provider", func(t *testing.T) {
		primary := &fakeProvider{
			name: "primary",
			completeFn: func(_ context.Context, _ CompletionRequest) (string, error) {
				return "I could not produce structured output today.", nil
			},
		}
		router := NewRouter([]Provider{primary}, testConfig(), nil)

		result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi", JSONMode: true})
		require.NoError(t, err)
		assert.Equal(t, "deterministic", result.Provider)
		assert.True(t, result.Degraded)
	})

	t.Run("fenced JSON is extracted", func(t *testing.T) {
		primary := &fakeProvider{
			name: "primary",
			completeFn: func(_ context.Context, _ CompletionRequest) (string, error) {
				return "```json\n{\"ok\": true}\n```", nil
			},
		}
		router := NewRouter([]Provider{primary}, testConfig(), nil)

		result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi", JSONMode: true})
		require.NoError(t, err)
		assert.Equal(t, `{"ok": true}`, result.Text)
		assert.False(t, result.Degraded)
	})
}

func TestRouterBreaker(t *testing.T) {
	t.Run("opens after consecutive failures", func(t *testing.T) {
		failing := &fakeProvider{name: "flaky"}
		router := NewRouter([]Provider{failing}, testConfig(), nil)

		for i := 0; i < 3; i++ {
			result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
			require.NoError(t, err)
			assert.True(t, result.Degraded)
		}
		assert.Equal(t, 3, failing.completionCalls())

		// Circuit is now open; the provider must not be called again.
		result, err := router.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "deterministic", result.Provider)
		assert.Equal(t, 3, failing.completionCalls())
	})
}

func TestRouterReasoningVector(t *testing.T) {
	t.Run("wrong dimension falls through", func(t *testing.T) {
		primary := &fakeProvider{
			name: "primary",
			vectorFn: func(_ context.Context, _ string) ([]float64, error) {
				return []float64{1, 2, 3}, nil
			},
		}
		router := NewRouter([]Provider{primary}, testConfig(), nil)

		result, err := router.ReasoningVector(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "deterministic", result.Provider)
		assert.True(t, result.Degraded)
		assert.Len(t, result.Values, DefaultVectorDim)
	})

	t.Run("deterministic vectors are reproducible", func(t *testing.T) {
		router := NewRouter(nil, testConfig(), nil)

		a, err := router.ReasoningVector(context.Background(), "same prompt")
		require.NoError(t, err)
		b, err := router.ReasoningVector(context.Background(), "same prompt")
		require.NoError(t, err)
		c, err := router.ReasoningVector(context.Background(), "different prompt")
		require.NoError(t, err)

		assert.Equal(t, a.Values, b.Values)
		assert.NotEqual(t, a.Values, c.Values)
		assert.False(t, a.Degraded)
	})
}

func TestRouterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	router := NewRouter(nil, testConfig(), nil)
	_, err := router.Complete(ctx, CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRouterConcurrencyCeiling(t *testing.T) {
	block := make(chan struct{})
	slow := &fakeProvider{
		name: "slow",
		completeFn: func(_ context.Context, _ CompletionRequest) (string, error) {
			<-block
			return "done", nil
		},
	}
	router := NewRouter([]Provider{slow}, RouterConfig{
		RetryBaseDelay: time.Millisecond,
		MaxConcurrent:  1,
	}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := router.Complete(context.Background(), CompletionRequest{Prompt: "first"})
		done <- err
	}()

	// Wait for the first call to hold the only slot.
	require.Eventually(t, func() bool {
		return slow.completionCalls() == 1
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := router.Complete(ctx, CompletionRequest{Prompt: "second"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	require.NoError(t, <-done)
}
