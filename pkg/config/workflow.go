package config

import "time"

// WorkflowConfig contains planning and execution configuration.
// These values bound how workflows are planned, compiled, and run.
type WorkflowConfig struct {
	// PoolSize is the number of workflows that may execute concurrently.
	// Steps within one workflow are always strictly sequential; this bounds
	// parallelism across distinct plans.
	PoolSize int `yaml:"pool_size"`

	// MaxSteps caps the length of a planned agent sequence. The sanitizer
	// clamps longer sequences at planning time, so a compiled graph never
	// exceeds this.
	MaxSteps int `yaml:"max_steps"`

	// CacheMaxEntries bounds the compiled-graph LRU cache.
	CacheMaxEntries int `yaml:"cache_max_entries"`

	// AgentTimeout is the maximum wall-clock time one agent step may take.
	AgentTimeout time.Duration `yaml:"agent_timeout"`

	// AgentGracePeriod is how long the executor waits for an agent goroutine
	// to observe its cancelled context before abandoning it. An abandoned
	// agent's eventual output is dropped.
	AgentGracePeriod time.Duration `yaml:"agent_grace_period"`

	// WorkflowTimeout is the maximum wall-clock time for a whole workflow,
	// including time spent suspended at approval gates.
	WorkflowTimeout time.Duration `yaml:"workflow_timeout"`
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		PoolSize:         8,
		MaxSteps:         10,
		CacheMaxEntries:  128,
		AgentTimeout:     120 * time.Second,
		AgentGracePeriod: 5 * time.Second,
		WorkflowTimeout:  30 * time.Minute,
	}
}
