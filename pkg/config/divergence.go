package config

// DivergenceConfig contains divergence guard configuration.
type DivergenceConfig struct {
	// SuppressDegradedAlerts disables divergence alerts raised while the
	// router is serving deterministic fallback output. Deployments that
	// prefer fewer alarms during provider outages can turn them off; the
	// divergence record is still persisted either way.
	SuppressDegradedAlerts bool `yaml:"suppress_degraded_alerts"`
}

// DefaultDivergenceConfig returns the built-in divergence guard defaults.
func DefaultDivergenceConfig() *DivergenceConfig {
	return &DivergenceConfig{
		SuppressDegradedAlerts: false,
	}
}
