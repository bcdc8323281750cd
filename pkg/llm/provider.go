// Package llm routes completion and reasoning-vector calls across an
// ordered provider chain with per-provider circuit breaking and a
// process-wide concurrency ceiling. The chain ends in a deterministic
// provider that always answers, so the pipeline completes during
// upstream outages.
package llm

import (
	"context"
	"fmt"
)

// Schema hints understood by the deterministic fallback. Each names the
// neutral JSON shape emitted when every live provider is down.
const (
	SchemaDocumentExtraction = "document_extraction"
	SchemaComplianceReview   = "compliance_review"
	SchemaNarrative          = "narrative"
)

// CompletionRequest describes one completion call.
type CompletionRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
	JSONMode    bool
	SchemaHint  string
}

// Completion is a routed completion result. Degraded means the terminal
// deterministic provider answered after live providers failed.
type Completion struct {
	Text     string
	Provider string
	Degraded bool
}

// Vector is a routed reasoning-vector result.
type Vector struct {
	Values   []float64
	Provider string
	Degraded bool
}

// Provider is one backend in the router chain.
type Provider interface {
	Name() string
	// Terminal providers must never fail; the router does not wrap them
	// in a circuit breaker.
	Terminal() bool
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	ReasoningVector(ctx context.Context, prompt string) ([]float64, error)
}

// Failure classes attached to provider errors.
const (
	FailTransport = "transport"
	FailStatus    = "status"
	FailTimeout   = "timeout"
	FailMalformed = "malformed"
	FailBreaker   = "breaker_open"
)

// ProviderError describes why one provider failed a call.
type ProviderError struct {
	Provider string
	Class    string
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider %s: %s (status %d): %v", e.Provider, e.Class, e.Status, e.Err)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Class, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
