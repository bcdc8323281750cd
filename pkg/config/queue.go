package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how sessions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes sessions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions is the global limit of concurrent sessions being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking pending sessions.
	PollInterval time.Duration `yaml:"-"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"-"`

	// SessionTimeout is the maximum time a session can be processed.
	SessionTimeout time.Duration `yaml:"-"`

	// GracefulShutdownTimeout is the max time to wait for active sessions
	// to complete during shutdown. Should match SessionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"-"`

	// OrphanDetectionInterval is how often to scan for orphaned sessions.
	OrphanDetectionInterval time.Duration `yaml:"-"`

	// OrphanThreshold is how long a session can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"-"`

	// HeartbeatInterval is how often an active session refreshes
	// last_heartbeat_at. Must be well below OrphanThreshold.
	HeartbeatInterval time.Duration `yaml:"-"`

	// StageTimeout is the soft deadline for one pipeline stage.
	StageTimeout time.Duration `yaml:"-"`

	// GuardStageTimeout is the soft deadline for the divergence guard,
	// which runs two model analyses instead of one.
	GuardStageTimeout time.Duration `yaml:"-"`
}

// UnmarshalYAML decodes the queue section, parsing duration fields from
// "30s"-style strings.
func (c *QueueConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		WorkerCount             int    `yaml:"worker_count"`
		MaxConcurrentSessions   int    `yaml:"max_concurrent_sessions"`
		PollInterval            string `yaml:"poll_interval"`
		PollIntervalJitter      string `yaml:"poll_interval_jitter"`
		SessionTimeout          string `yaml:"session_timeout"`
		GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
		OrphanDetectionInterval string `yaml:"orphan_detection_interval"`
		OrphanThreshold         string `yaml:"orphan_threshold"`
		HeartbeatInterval       string `yaml:"heartbeat_interval"`
		StageTimeout            string `yaml:"stage_timeout"`
		GuardStageTimeout       string `yaml:"guard_stage_timeout"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	c.WorkerCount = aux.WorkerCount
	c.MaxConcurrentSessions = aux.MaxConcurrentSessions
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"poll_interval", aux.PollInterval, &c.PollInterval},
		{"poll_interval_jitter", aux.PollIntervalJitter, &c.PollIntervalJitter},
		{"session_timeout", aux.SessionTimeout, &c.SessionTimeout},
		{"graceful_shutdown_timeout", aux.GracefulShutdownTimeout, &c.GracefulShutdownTimeout},
		{"orphan_detection_interval", aux.OrphanDetectionInterval, &c.OrphanDetectionInterval},
		{"orphan_threshold", aux.OrphanThreshold, &c.OrphanThreshold},
		{"heartbeat_interval", aux.HeartbeatInterval, &c.HeartbeatInterval},
		{"stage_timeout", aux.StageTimeout, &c.StageTimeout},
		{"guard_stage_timeout", aux.GuardStageTimeout, &c.GuardStageTimeout},
	}
	for _, f := range fields {
		if err := parseOptionalDuration(f.name, f.raw, f.dst); err != nil {
			return err
		}
	}
	return nil
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentSessions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SessionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		StageTimeout:            60 * time.Second,
		GuardStageTimeout:       120 * time.Second,
	}
}
