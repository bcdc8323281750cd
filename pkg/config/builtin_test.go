package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfig(t *testing.T) {
	// Test singleton pattern - should return same instance
	cfg1 := GetBuiltinConfig()
	cfg2 := GetBuiltinConfig()

	assert.Same(t, cfg1, cfg2, "GetBuiltinConfig should return same instance")
	assert.NotNil(t, cfg1, "Built-in config should not be nil")
}

func TestBuiltinConfigThreadSafety(t *testing.T) {
	const goroutines = 100

	var wg sync.WaitGroup
	configs := make([]*BuiltinConfig, goroutines)

	// Launch multiple goroutines to access config concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			configs[index] = GetBuiltinConfig()
		}(i)
	}

	wg.Wait()

	// All goroutines should get the same instance
	for i := 1; i < goroutines; i++ {
		assert.Same(t, configs[0], configs[i], "All goroutines should get same instance")
	}
}

func TestBuiltinProviderChain(t *testing.T) {
	cfg := GetBuiltinConfig()

	require.Len(t, cfg.Providers, 3)

	// Cloud provider first
	groq := cfg.Providers[0]
	assert.Equal(t, "groq", groq.Name)
	assert.Equal(t, ProviderTypeOpenAI, groq.Type)
	assert.Equal(t, "llama-3.3-70b-versatile", groq.Model)
	assert.Equal(t, "intfloat/multilingual-e5-large-instruct", groq.EmbedModel)
	assert.Equal(t, "https://api.groq.com/openai/v1", groq.BaseURL)
	assert.Equal(t, "GROQ_API_KEY", groq.APIKeyEnv)

	// Local sidecar second
	ollama := cfg.Providers[1]
	assert.Equal(t, "ollama", ollama.Name)
	assert.Equal(t, ProviderTypeGRPC, ollama.Type)
	assert.Equal(t, "mistral:7b-instruct", ollama.Model)
	assert.Equal(t, "localhost:50051", ollama.Addr)

	// Deterministic terminal last
	terminal := cfg.Providers[2]
	assert.Equal(t, ProviderTypeDeterministic, terminal.Type)
}

func TestBuiltinProviderChainPassesValidation(t *testing.T) {
	cfg := validTestConfig()
	v := NewValidator(cfg)

	require.NoError(t, v.validateLLMProviders())
}
