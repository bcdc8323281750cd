package e2e

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/procureguard/trimatch/pkg/llm"
)

// ScriptRule answers completion requests whose prompt contains a marker.
// Hold rules signal Started once and then park until the caller's context
// dies, which lets tests interrupt a run at a known stage.
type ScriptRule struct {
	Contains string
	Text     string
	Started  chan struct{}
	Hold     bool

	once sync.Once
}

// ScriptedProvider is a terminal llm.Provider driven by prompt-substring
// rules. The first matching rule wins; unmatched prompts get an empty
// JSON object. Being terminal, the router wraps it in neither a circuit
// breaker nor a fallback, so every routed call lands here.
//
// Reasoning vectors default to one constant unit vector, which makes the
// divergence guard's two streams always agree. Tests probing divergence
// install a VectorFn instead.
type ScriptedProvider struct {
	rules    []*ScriptRule
	vectorFn func(prompt string) []float64
}

// NewScriptedProvider creates a provider answering per the given rules.
func NewScriptedProvider(rules ...*ScriptRule) *ScriptedProvider {
	return &ScriptedProvider{rules: rules}
}

// WithVectorFn replaces the constant reasoning vector with a derived one.
func (p *ScriptedProvider) WithVectorFn(fn func(prompt string) []float64) *ScriptedProvider {
	p.vectorFn = fn
	return p
}

func (p *ScriptedProvider) Name() string   { return "scripted" }
func (p *ScriptedProvider) Terminal() bool { return true }

func (p *ScriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	for _, rule := range p.rules {
		if !strings.Contains(req.Prompt, rule.Contains) {
			continue
		}
		if rule.Started != nil {
			rule.once.Do(func() { close(rule.Started) })
		}
		if rule.Hold {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return rule.Text, nil
	}
	return "{}", nil
}

func (p *ScriptedProvider) ReasoningVector(_ context.Context, prompt string) ([]float64, error) {
	if p.vectorFn != nil {
		return p.vectorFn(prompt), nil
	}
	vec := make([]float64, llm.DefaultVectorDim)
	vec[0] = 1
	return vec, nil
}

// HashVectors derives reasoning vectors from the prompt text the same
// way the deterministic terminal provider does: identical prompts map to
// identical vectors, any textual difference to near-orthogonal ones.
func HashVectors() func(prompt string) []float64 {
	det := llm.NewDeterministic(0)
	return func(prompt string) []float64 {
		vec, _ := det.ReasoningVector(context.Background(), prompt)
		return vec
	}
}

// FailingProvider is a non-terminal provider that answers every call
// with a 503. Routed behind it, the router's chain degrades to the
// deterministic terminal provider, which is how tests exercise outage
// behavior end to end.
type FailingProvider struct{}

func NewFailingProvider() *FailingProvider { return &FailingProvider{} }

func (p *FailingProvider) Name() string   { return "cloud-down" }
func (p *FailingProvider) Terminal() bool { return false }

func (p *FailingProvider) Complete(context.Context, llm.CompletionRequest) (string, error) {
	return "", p.err()
}

func (p *FailingProvider) ReasoningVector(context.Context, string) ([]float64, error) {
	return nil, p.err()
}

func (p *FailingProvider) err() error {
	return &llm.ProviderError{
		Provider: "cloud-down",
		Class:    llm.FailStatus,
		Status:   503,
		Err:      errors.New("service unavailable"),
	}
}
