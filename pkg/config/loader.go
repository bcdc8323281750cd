package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// TrimatchYAMLConfig represents the complete trimatch.yaml file structure
type TrimatchYAMLConfig struct {
	System     *SystemYAMLConfig `yaml:"system"`
	LLM        *LLMYAMLConfig    `yaml:"llm"`
	Divergence *DivergenceConfig `yaml:"divergence"`
	Compliance *ComplianceConfig `yaml:"compliance"`
	Queue      *QueueConfig      `yaml:"queue"`
	Retention  *RetentionConfig  `yaml:"retention"`
	Masking    *MaskingConfig    `yaml:"masking"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load trimatch.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Fall back to the built-in provider chain when none is configured
//  5. Merge user overrides with built-in defaults
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration file
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.Providers,
		"known_vendors", stats.KnownVendors,
		"workers", stats.Workers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load trimatch.yaml (contains system, llm, divergence, compliance, queue, retention)
	trimatchConfig, err := loader.loadTrimatchYAML()
	if err != nil {
		return nil, NewLoadError("trimatch.yaml", err)
	}

	// 2. Resolve the provider chain (user-defined chain replaces built-in)
	llmCfg := resolveLLMConfig(trimatchConfig.LLM)

	// 3. Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if trimatchConfig.Queue != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(queueConfig, trimatchConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// 4. Resolve remaining sections
	divergenceCfg := resolveDivergenceConfig(trimatchConfig.Divergence)
	complianceCfg := resolveComplianceConfig(trimatchConfig.Compliance)
	retentionCfg := resolveRetentionConfig(trimatchConfig.Retention)
	systemCfg := resolveSystemConfig(trimatchConfig.System)
	maskingCfg := resolveMaskingConfig(trimatchConfig.Masking)

	return &Config{
		configDir:  configDir,
		System:     systemCfg,
		LLM:        llmCfg,
		Divergence: divergenceCfg,
		Compliance: complianceCfg,
		Queue:      queueConfig,
		Retention:  retentionCfg,
		Masking:    maskingCfg,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadTrimatchYAML() (*TrimatchYAMLConfig, error) {
	var config TrimatchYAMLConfig

	if err := l.loadYAML("trimatch.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveLLMConfig resolves the provider chain and router tuning.
// A user-defined chain replaces the built-in chain entirely; chains are
// ordered lists, not maps, so per-provider merging has no meaning.
func resolveLLMConfig(raw *LLMYAMLConfig) *LLMConfig {
	cfg := &LLMConfig{
		Router: &RouterConfig{},
	}

	if raw != nil && len(raw.Providers) > 0 {
		cfg.Providers = raw.Providers
	} else {
		// Copy the built-in chain so callers never mutate the singleton
		cfg.Providers = append([]ProviderConfig(nil), GetBuiltinConfig().Providers...)
	}

	if raw != nil && raw.Router != nil {
		cfg.Router = raw.Router
	}

	return cfg
}

// resolveDivergenceConfig resolves divergence guard configuration.
// The section replaces the defaults wholesale when present; an omitted
// suppress_degraded_alerts field reads the same as false.
func resolveDivergenceConfig(raw *DivergenceConfig) *DivergenceConfig {
	if raw != nil {
		return raw
	}
	return DefaultDivergenceConfig()
}

// resolveComplianceConfig resolves compliance configuration, applying defaults.
func resolveComplianceConfig(raw *ComplianceConfig) *ComplianceConfig {
	cfg := DefaultComplianceConfig()

	if raw == nil {
		return cfg
	}

	if len(raw.KnownVendors) > 0 {
		cfg.KnownVendors = raw.KnownVendors
	}
	if raw.InvoiceHistoryLimit > 0 {
		cfg.InvoiceHistoryLimit = raw.InvoiceHistoryLimit
	}

	return cfg
}

// resolveMaskingConfig resolves masking configuration. Like the
// divergence section, a present section replaces the defaults wholesale.
func resolveMaskingConfig(raw *MaskingConfig) *MaskingConfig {
	if raw != nil {
		return raw
	}
	return DefaultMaskingConfig()
}

// resolveRetentionConfig resolves retention configuration, applying defaults.
func resolveRetentionConfig(raw *RetentionConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if raw == nil {
		return cfg
	}

	if raw.SessionRetentionDays > 0 {
		cfg.SessionRetentionDays = raw.SessionRetentionDays
	}
	if raw.EventTTLDays > 0 {
		cfg.EventTTLDays = raw.EventTTLDays
	}
	if raw.CleanupInterval > 0 {
		cfg.CleanupInterval = raw.CleanupInterval
	}

	return cfg
}
