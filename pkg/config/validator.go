package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateRouter(); err != nil {
		return fmt.Errorf("router validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateCompliance(); err != nil {
		return fmt.Errorf("compliance validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	return nil
}

// validateLLMProviders checks the shape of the provider chain. It does NOT
// require API key environment variables to be present: a provider without
// credentials is skipped at startup and the chain degrades toward the
// deterministic terminal instead of refusing to boot.
func (v *ConfigValidator) validateLLMProviders() error {
	if v.cfg.LLM == nil {
		return fmt.Errorf("llm configuration is nil")
	}

	providers := v.cfg.LLM.Providers
	if len(providers) == 0 {
		return NewValidationError("llm_provider", "", "providers", fmt.Errorf("at least one provider required"))
	}

	seen := make(map[string]bool)
	for i, provider := range providers {
		if provider.Name == "" {
			return NewValidationError("llm_provider", fmt.Sprintf("[%d]", i), "name", fmt.Errorf("name required"))
		}
		if seen[provider.Name] {
			return NewValidationError("llm_provider", provider.Name, "name", fmt.Errorf("duplicate provider name"))
		}
		seen[provider.Name] = true

		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", provider.Name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		// Validate type-specific fields
		switch provider.Type {
		case ProviderTypeOpenAI:
			if provider.Model == "" {
				return NewValidationError("llm_provider", provider.Name, "model", fmt.Errorf("model required"))
			}
			if provider.BaseURL == "" {
				return NewValidationError("llm_provider", provider.Name, "base_url", fmt.Errorf("base_url required for openai providers"))
			}

		case ProviderTypeGRPC:
			if provider.Model == "" {
				return NewValidationError("llm_provider", provider.Name, "model", fmt.Errorf("model required"))
			}
			if provider.Addr == "" {
				return NewValidationError("llm_provider", provider.Name, "addr", fmt.Errorf("addr required for grpc providers"))
			}

		case ProviderTypeDeterministic:
			if i != len(providers)-1 {
				return NewValidationError("llm_provider", provider.Name, "type", fmt.Errorf("deterministic provider must be last in the chain"))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateRouter() error {
	if v.cfg.LLM == nil || v.cfg.LLM.Router == nil {
		return nil
	}

	r := v.cfg.LLM.Router
	if r.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got %d", r.MaxRetries)
	}
	if r.RetryBaseDelay < 0 {
		return fmt.Errorf("retry_base_delay must be non-negative, got %s", r.RetryBaseDelay)
	}
	if r.ProviderTimeout < 0 {
		return fmt.Errorf("provider_timeout must be non-negative, got %s", r.ProviderTimeout)
	}
	if r.MaxConcurrent < 0 {
		return fmt.Errorf("max_concurrent must be non-negative, got %d", r.MaxConcurrent)
	}
	if r.BreakerTimeout < 0 {
		return fmt.Errorf("breaker_timeout must be non-negative, got %s", r.BreakerTimeout)
	}
	if r.VectorDim < 0 {
		return fmt.Errorf("vector_dim must be non-negative, got %d", r.VectorDim)
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}

	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentSessions < 1 {
		return fmt.Errorf("max_concurrent_sessions must be at least 1, got %d", q.MaxConcurrentSessions)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %s", q.PollIntervalJitter)
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval (%s >= %s)", q.PollIntervalJitter, q.PollInterval)
	}
	if q.SessionTimeout <= 0 {
		return fmt.Errorf("session_timeout must be positive, got %s", q.SessionTimeout)
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive, got %s", q.GracefulShutdownTimeout)
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %s", q.OrphanDetectionInterval)
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %s", q.OrphanThreshold)
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %s", q.HeartbeatInterval)
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold (%s >= %s)", q.HeartbeatInterval, q.OrphanThreshold)
	}
	if q.StageTimeout <= 0 {
		return fmt.Errorf("stage_timeout must be positive, got %s", q.StageTimeout)
	}
	if q.GuardStageTimeout <= 0 {
		return fmt.Errorf("guard_stage_timeout must be positive, got %s", q.GuardStageTimeout)
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return fmt.Errorf("retention configuration is nil")
	}

	if r.SessionRetentionDays < 1 {
		return fmt.Errorf("session_retention_days must be at least 1, got %d", r.SessionRetentionDays)
	}
	if r.EventTTLDays < 1 {
		return fmt.Errorf("event_ttl_days must be at least 1, got %d", r.EventTTLDays)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be positive, got %s", r.CleanupInterval)
	}

	return nil
}

func (v *ConfigValidator) validateCompliance() error {
	c := v.cfg.Compliance
	if c == nil {
		return fmt.Errorf("compliance configuration is nil")
	}

	if c.InvoiceHistoryLimit < 1 {
		return fmt.Errorf("invoice_history_limit must be at least 1, got %d", c.InvoiceHistoryLimit)
	}

	return nil
}

// validateMasking checks extra pattern shape. Compilation is deferred to
// the masking service, which logs and skips bad regexes.
func (v *ConfigValidator) validateMasking() error {
	m := v.cfg.Masking
	if m == nil {
		return fmt.Errorf("masking configuration is nil")
	}

	for i, p := range m.ExtraPatterns {
		if p.Name == "" {
			return fmt.Errorf("extra_patterns[%d]: name is required", i)
		}
		if p.Pattern == "" {
			return fmt.Errorf("extra_patterns[%d] (%s): pattern is required", i, p.Name)
		}
	}

	return nil
}
