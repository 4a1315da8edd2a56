package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// PlanRetentionDays is how many days to keep terminal plans before
	// soft-deleting them (setting deleted_at).
	PlanRetentionDays int `yaml:"plan_retention_days"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	// Per-plan cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// ContextGC is how long a terminal workflow's in-memory context log is
	// kept before the sweep drops it.
	ContextGC time.Duration `yaml:"context_gc"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// MonitorSummaryInterval is how often the performance monitor logs a
	// stats summary.
	MonitorSummaryInterval time.Duration `yaml:"monitor_summary_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		PlanRetentionDays:      365,
		EventTTL:               6 * time.Hour,
		ContextGC:              24 * time.Hour,
		CleanupInterval:        1 * time.Hour,
		MonitorSummaryInterval: 15 * time.Minute,
	}
}
