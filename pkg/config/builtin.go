package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides the default LLM provider chain used when trimatch.yaml does
// not declare one of its own.
type BuiltinConfig struct {
	Providers []ProviderConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Providers: initBuiltinProviders(),
	}
}

// initBuiltinProviders returns the default provider chain, ordered by
// preference. The router tries them front to back; the deterministic
// terminal guarantees the pipeline always produces output.
func initBuiltinProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:       "groq",
			Type:       ProviderTypeOpenAI,
			Model:      "llama-3.3-70b-versatile",
			EmbedModel: "intfloat/multilingual-e5-large-instruct",
			BaseURL:    "https://api.groq.com/openai/v1",
			APIKeyEnv:  "GROQ_API_KEY",
		},
		{
			Name:  "ollama",
			Type:  ProviderTypeGRPC,
			Model: "mistral:7b-instruct",
			Addr:  "localhost:50051",
		},
		{
			Name: "deterministic",
			Type: ProviderTypeDeterministic,
		},
	}
}
