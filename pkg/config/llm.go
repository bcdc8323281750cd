package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfig defines one LLM provider in the failover chain. Chain
// order in the YAML list is the failover order.
type ProviderConfig struct {
	// Name identifies the provider in logs, events, and breaker state
	Name string `yaml:"name"`

	// Provider transport type (required)
	Type ProviderType `yaml:"type"`

	// Model name (required for openai and grpc providers)
	Model string `yaml:"model,omitempty"`

	// EmbedModel is the model used for reasoning vectors (openai providers)
	EmbedModel string `yaml:"embed_model,omitempty"`

	// Optional custom endpoint/base URL (openai providers)
	BaseURL string `yaml:"base_url,omitempty"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Addr is the sidecar address (grpc providers)
	Addr string `yaml:"addr,omitempty"`
}

// RouterConfig tunes the provider chain's failover behavior. Zero values
// defer to the router's own defaults, so an omitted section changes
// nothing.
type RouterConfig struct {
	MaxRetries      int           `yaml:"max_retries,omitempty"`
	RetryBaseDelay  time.Duration `yaml:"-"`
	ProviderTimeout time.Duration `yaml:"-"`
	MaxConcurrent   int           `yaml:"max_concurrent,omitempty"`
	BreakerFailures uint32        `yaml:"breaker_failures,omitempty"`
	BreakerTimeout  time.Duration `yaml:"-"`
	VectorDim       int           `yaml:"vector_dim,omitempty"`
}

// UnmarshalYAML decodes the router section, parsing duration fields from
// "60s"-style strings.
func (c *RouterConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		MaxRetries      int    `yaml:"max_retries"`
		RetryBaseDelay  string `yaml:"retry_base_delay"`
		ProviderTimeout string `yaml:"provider_timeout"`
		MaxConcurrent   int    `yaml:"max_concurrent"`
		BreakerFailures uint32 `yaml:"breaker_failures"`
		BreakerTimeout  string `yaml:"breaker_timeout"`
		VectorDim       int    `yaml:"vector_dim"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	c.MaxRetries = aux.MaxRetries
	c.MaxConcurrent = aux.MaxConcurrent
	c.BreakerFailures = aux.BreakerFailures
	c.VectorDim = aux.VectorDim
	if err := parseOptionalDuration("retry_base_delay", aux.RetryBaseDelay, &c.RetryBaseDelay); err != nil {
		return err
	}
	if err := parseOptionalDuration("provider_timeout", aux.ProviderTimeout, &c.ProviderTimeout); err != nil {
		return err
	}
	return parseOptionalDuration("breaker_timeout", aux.BreakerTimeout, &c.BreakerTimeout)
}

// LLMYAMLConfig is the llm section of trimatch.yaml.
type LLMYAMLConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	Router    *RouterConfig    `yaml:"router"`
}

// LLMConfig holds the resolved provider chain and router tuning.
type LLMConfig struct {
	// Providers in failover order. The last entry should be the
	// deterministic terminal; the router appends one when it is absent.
	Providers []ProviderConfig

	// Router tuning (zero values defer to router defaults).
	Router *RouterConfig
}
