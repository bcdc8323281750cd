package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// RetentionConfig contains data retention configuration for completed
// sessions and progress events.
type RetentionConfig struct {
	// SessionRetentionDays is how long completed sessions (and their
	// workpapers) are kept before being soft-deleted.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// EventTTLDays is how long progress events of finished sessions are
	// kept for late-connecting clients before being purged.
	EventTTLDays int `yaml:"event_ttl_days"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"-"`
}

// UnmarshalYAML decodes the retention section, parsing the interval from a
// "12h"-style string.
func (c *RetentionConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		SessionRetentionDays int    `yaml:"session_retention_days"`
		EventTTLDays         int    `yaml:"event_ttl_days"`
		CleanupInterval      string `yaml:"cleanup_interval"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	c.SessionRetentionDays = aux.SessionRetentionDays
	c.EventTTLDays = aux.EventTTLDays
	return parseOptionalDuration("cleanup_interval", aux.CleanupInterval, &c.CleanupInterval)
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 180,
		EventTTLDays:         7,
		CleanupInterval:      12 * time.Hour,
	}
}
