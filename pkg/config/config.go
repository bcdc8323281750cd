package config

// Config is the umbrella configuration object that encapsulates
// all resolved configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// HTTP server configuration
	System *SystemConfig

	// LLM provider chain and router configuration
	LLM *LLMConfig

	// Divergence guard configuration
	Divergence *DivergenceConfig

	// Compliance agent configuration
	Compliance *ComplianceConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention configuration
	Retention *RetentionConfig

	// Payment-credential masking configuration
	Masking *MaskingConfig
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers    int
	KnownVendors int
	Workers      int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLM != nil {
		s.Providers = len(c.LLM.Providers)
	}
	if c.Compliance != nil {
		s.KnownVendors = len(c.Compliance.KnownVendors)
	}
	if c.Queue != nil {
		s.Workers = c.Queue.WorkerCount
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
