package config

import "time"

// StreamConfig contains WebSocket fan-out configuration.
type StreamConfig struct {
	// BacklogPerPlan is how many recent envelopes each plan channel retains
	// in memory for replay to late subscribers.
	BacklogPerPlan int `yaml:"backlog_per_plan"`

	// SlowSubscriberHighWater is the per-connection send queue depth at which
	// a subscriber is considered stuck and is disconnected. Must be at least
	// BacklogPerPlan so a fresh subscriber can absorb a full replay.
	SlowSubscriberHighWater int `yaml:"slow_subscriber_high_water"`

	// WriteTimeout bounds a single WebSocket write.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DefaultStreamConfig returns the built-in stream defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{
		BacklogPerPlan:          200,
		SlowSubscriberHighWater: 1000,
		WriteTimeout:            10 * time.Second,
	}
}
