package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Router tuning defaults.
const (
	DefaultMaxRetries      = 2
	DefaultRetryBaseDelay  = 200 * time.Millisecond
	DefaultProviderTimeout = 60 * time.Second
	DefaultMaxConcurrent   = 8
	DefaultBreakerFailures = 3
	DefaultBreakerTimeout  = 60 * time.Second
)

// RouterConfig tunes failover behavior. Zero values take defaults.
type RouterConfig struct {
	// MaxRetries is the number of additional attempts after a rate-limited
	// call before the provider is considered failed.
	MaxRetries      int
	RetryBaseDelay  time.Duration
	ProviderTimeout time.Duration
	// MaxConcurrent caps in-flight router calls process-wide.
	MaxConcurrent int
	// BreakerFailures is the consecutive-failure count that opens a
	// provider's circuit.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	// VectorDim is the required reasoning-vector length.
	VectorDim int
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if c.ProviderTimeout <= 0 {
		c.ProviderTimeout = DefaultProviderTimeout
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = DefaultMaxConcurrent
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = DefaultBreakerFailures
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = DefaultBreakerTimeout
	}
	if c.VectorDim <= 0 {
		c.VectorDim = DefaultVectorDim
	}
	return c
}

// Router walks an ordered provider chain per call. It keeps no state
// between calls beyond circuit-breaker counters.
type Router struct {
	providers []Provider
	breakers  map[string]*gobreaker.CircuitBreaker
	sem       chan struct{}
	cfg       RouterConfig
	logger    *slog.Logger
}

// NewRouter builds a router over the given providers, in order. A
// deterministic terminal provider is appended when the chain lacks one,
// so every call can be answered.
func NewRouter(providers []Provider, cfg RouterConfig, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	hasTerminal := false
	for _, p := range providers {
		if p.Terminal() {
			hasTerminal = true
		}
	}
	if !hasTerminal {
		providers = append(providers, NewDeterministic(cfg.VectorDim))
	}

	breakers := make(map[string]*gobreaker.CircuitBreaker, len(providers))
	for _, p := range providers {
		if p.Terminal() {
			continue
		}
		breakers[p.Name()] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    p.Name(),
			Timeout: cfg.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerFailures
			},
			IsSuccessful: func(err error) bool {
				// Caller cancellation is not a provider fault.
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Info("Provider breaker state changed",
					"provider", name, "from", from.String(), "to", to.String())
			},
		})
	}

	return &Router{
		providers: providers,
		breakers:  breakers,
		sem:       make(chan struct{}, cfg.MaxConcurrent),
		cfg:       cfg,
		logger:    logger,
	}
}

// VectorDim returns the reasoning-vector length this router enforces.
func (r *Router) VectorDim() int {
	return r.cfg.VectorDim
}

// Close releases provider resources such as sidecar connections.
func (r *Router) Close() error {
	var firstErr error
	for _, p := range r.providers {
		if c, ok := p.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Complete routes one completion call. In JSON mode the completion must
// contain a balanced JSON value or the serving provider is failed.
func (r *Router) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	var lastErr error
	liveFailed := false
	for _, p := range r.providers {
		out, err := r.call(ctx, p, func(cctx context.Context) (any, error) {
			text, err := p.Complete(cctx, req)
			if err != nil {
				return nil, err
			}
			if req.JSONMode {
				cleaned, jerr := ExtractJSON(text)
				if jerr != nil {
					return nil, &ProviderError{Provider: p.Name(), Class: FailMalformed, Err: jerr}
				}
				return cleaned, nil
			}
			return text, nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if !p.Terminal() {
				liveFailed = true
			}
			r.logger.Warn("Provider failed completion", "provider", p.Name(), "error", err)
			continue
		}
		return &Completion{
			Text:     out.(string),
			Provider: p.Name(),
			Degraded: p.Terminal() && liveFailed,
		}, nil
	}
	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// ReasoningVector routes one embedding call. Results must have the
// router's configured dimension and contain only finite values.
func (r *Router) ReasoningVector(ctx context.Context, prompt string) (*Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	var lastErr error
	liveFailed := false
	for _, p := range r.providers {
		out, err := r.call(ctx, p, func(cctx context.Context) (any, error) {
			vals, err := p.ReasoningVector(cctx, prompt)
			if err != nil {
				return nil, err
			}
			if err := r.validateVector(p, vals); err != nil {
				return nil, err
			}
			return vals, nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if !p.Terminal() {
				liveFailed = true
			}
			r.logger.Warn("Provider failed reasoning vector", "provider", p.Name(), "error", err)
			continue
		}
		return &Vector{
			Values:   out.([]float64),
			Provider: p.Name(),
			Degraded: p.Terminal() && liveFailed,
		}, nil
	}
	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

func (r *Router) validateVector(p Provider, vals []float64) error {
	if len(vals) != r.cfg.VectorDim {
		return &ProviderError{
			Provider: p.Name(),
			Class:    FailMalformed,
			Err:      fmt.Errorf("vector dimension %d, want %d", len(vals), r.cfg.VectorDim),
		}
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ProviderError{
				Provider: p.Name(),
				Class:    FailMalformed,
				Err:      errors.New("non-finite vector component"),
			}
		}
	}
	return nil
}

// call runs one provider through its breaker and retry policy.
func (r *Router) call(ctx context.Context, p Provider, fn func(context.Context) (any, error)) (any, error) {
	cb := r.breakers[p.Name()]
	if cb == nil {
		return r.withRetry(ctx, p, fn)
	}
	out, err := cb.Execute(func() (any, error) {
		return r.withRetry(ctx, p, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &ProviderError{Provider: p.Name(), Class: FailBreaker, Err: err}
	}
	return out, err
}

// withRetry applies the per-attempt timeout and retries rate-limited
// attempts with jittered exponential backoff.
func (r *Router) withRetry(ctx context.Context, p Provider, fn func(context.Context) (any, error)) (any, error) {
	for attempt := 0; ; attempt++ {
		cctx, cancel := context.WithTimeout(ctx, r.cfg.ProviderTimeout)
		out, err := fn(cctx)
		cancel()
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		err = r.normalize(p, err)
		if !rateLimited(err) || attempt >= r.cfg.MaxRetries {
			return nil, err
		}
		delay := r.backoff(attempt)
		r.logger.Info("Provider rate limited, backing off",
			"provider", p.Name(), "attempt", attempt+1, "delay", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// normalize guarantees provider failures carry a ProviderError wrapper.
func (r *Router) normalize(p Provider, err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	class := FailTransport
	if errors.Is(err, context.DeadlineExceeded) {
		class = FailTimeout
	}
	return &ProviderError{Provider: p.Name(), Class: class, Err: err}
}

func rateLimited(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Status == http.StatusTooManyRequests
}

func (r *Router) backoff(attempt int) time.Duration {
	d := float64(r.cfg.RetryBaseDelay) * math.Pow(2, float64(attempt))
	jitter := 0.8 + 0.4*rand.Float64()
	return time.Duration(d * jitter)
}

func (r *Router) acquire(ctx context.Context) error {
	select {
	case r.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Router) release() {
	<-r.sem
}
