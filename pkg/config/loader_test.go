package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	// Create temporary config directory with a minimal valid config file
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify all sections are resolved
	assert.NotNil(t, cfg.System)
	assert.NotNil(t, cfg.LLM)
	assert.NotNil(t, cfg.Divergence)
	assert.NotNil(t, cfg.Compliance)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Retention)

	// Built-in provider chain is used when the file declares none
	require.Len(t, cfg.LLM.Providers, 3)
	assert.Equal(t, "groq", cfg.LLM.Providers[0].Name)
	assert.Equal(t, ProviderTypeOpenAI, cfg.LLM.Providers[0].Type)
	assert.Equal(t, "ollama", cfg.LLM.Providers[1].Name)
	assert.Equal(t, ProviderTypeDeterministic, cfg.LLM.Providers[2].Type)

	// Verify stats
	stats := cfg.Stats()
	assert.Equal(t, 3, stats.Providers)
	assert.Greater(t, stats.Workers, 0)
	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	// Write invalid YAML
	invalidYAML := `{{{`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeInvalidDuration(t *testing.T) {
	configDir := t.TempDir()

	config := `
queue:
  poll_interval: "fast"
`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Provider chain with a cloud provider missing its base_url
	invalidConfig := `
llm:
  providers:
    - name: "cloud"
      type: "openai"
      model: "llama-3.3-70b-versatile"
`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoadTrimatchYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  listen_addr: ":9090"
  allowed_ws_origins:
    - "dashboard.internal"

llm:
  providers:
    - name: "cloud"
      type: "openai"
      model: "llama-3.3-70b-versatile"
      embed_model: "intfloat/multilingual-e5-large-instruct"
      base_url: "https://api.groq.com/openai/v1"
      api_key_env: "GROQ_API_KEY"
  router:
    max_retries: 3
    provider_timeout: "30s"

divergence:
  suppress_degraded_alerts: true

compliance:
  known_vendors:
    - "Acme Industrial Supply"
    - "Globex Corporation"
  invoice_history_limit: 100

queue:
  worker_count: 2
  poll_interval: "2s"

retention:
  session_retention_days: 90
  event_ttl_days: 3
  cleanup_interval: "6h"
`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	trimatchConfig, err := loader.loadTrimatchYAML()

	require.NoError(t, err)
	require.NotNil(t, trimatchConfig.System)
	assert.Equal(t, ":9090", trimatchConfig.System.ListenAddr)
	assert.Equal(t, []string{"dashboard.internal"}, trimatchConfig.System.AllowedWSOrigins)

	require.NotNil(t, trimatchConfig.LLM)
	require.Len(t, trimatchConfig.LLM.Providers, 1)
	assert.Equal(t, "cloud", trimatchConfig.LLM.Providers[0].Name)
	assert.Equal(t, "GROQ_API_KEY", trimatchConfig.LLM.Providers[0].APIKeyEnv)
	require.NotNil(t, trimatchConfig.LLM.Router)
	assert.Equal(t, 3, trimatchConfig.LLM.Router.MaxRetries)
	assert.Equal(t, 30*time.Second, trimatchConfig.LLM.Router.ProviderTimeout)

	require.NotNil(t, trimatchConfig.Divergence)
	assert.True(t, trimatchConfig.Divergence.SuppressDegradedAlerts)

	require.NotNil(t, trimatchConfig.Compliance)
	assert.Len(t, trimatchConfig.Compliance.KnownVendors, 2)
	assert.Equal(t, 100, trimatchConfig.Compliance.InvoiceHistoryLimit)

	require.NotNil(t, trimatchConfig.Queue)
	assert.Equal(t, 2, trimatchConfig.Queue.WorkerCount)
	assert.Equal(t, 2*time.Second, trimatchConfig.Queue.PollInterval)

	require.NotNil(t, trimatchConfig.Retention)
	assert.Equal(t, 90, trimatchConfig.Retention.SessionRetentionDays)
	assert.Equal(t, 3, trimatchConfig.Retention.EventTTLDays)
	assert.Equal(t, 6*time.Hour, trimatchConfig.Retention.CleanupInterval)
}

func TestInitializeQueueOverrides(t *testing.T) {
	configDir := t.TempDir()

	// Partial queue section: unset fields keep their defaults
	config := `
queue:
  worker_count: 2
  session_timeout: "30m"
`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Minute, cfg.Queue.SessionTimeout)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Queue.HeartbeatInterval)
	assert.Equal(t, 60*time.Second, cfg.Queue.StageTimeout)
}

func TestInitializeSectionDefaults(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.False(t, cfg.Divergence.SuppressDegradedAlerts)
	assert.Empty(t, cfg.Compliance.KnownVendors)
	assert.Equal(t, 50, cfg.Compliance.InvoiceHistoryLimit)
	assert.Equal(t, 180, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 7, cfg.Retention.EventTTLDays)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)

	// Omitted router section resolves to a zero config
	require.NotNil(t, cfg.LLM.Router)
	assert.Equal(t, 0, cfg.LLM.Router.MaxRetries)
	assert.Equal(t, time.Duration(0), cfg.LLM.Router.ProviderTimeout)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm:
  providers:
    - name: "{{.TEST_PROVIDER_NAME}}"
      type: "grpc"
      model: "mistral:7b-instruct"
      addr: "{{.TEST_SIDECAR_ADDR}}"
`
	err := os.WriteFile(filepath.Join(configDir, "trimatch.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	// Set environment variables
	t.Setenv("TEST_PROVIDER_NAME", "local")
	t.Setenv("TEST_SIDECAR_ADDR", "localhost:50051")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "local", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "localhost:50051", cfg.LLM.Providers[0].Addr)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	// Create minimal valid trimatch.yaml
	trimatchYAML := `
system:
  listen_addr: ":8080"
`
	err := os.WriteFile(filepath.Join(dir, "trimatch.yaml"), []byte(trimatchYAML), 0644)
	require.NoError(t, err)

	return dir
}
