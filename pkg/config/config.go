// Package config loads and validates macaw's runtime configuration.
//
// Configuration is environment-first: every knob has a built-in default and an
// environment variable override. An optional YAML file (CONFIG_FILE, default
// macaw.yaml when present) may overlay the defaults; environment variables win
// over file values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the root runtime configuration.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Workflow  *WorkflowConfig  `yaml:"workflow"`
	Stream    *StreamConfig    `yaml:"stream"`
	Retention *RetentionConfig `yaml:"retention"`
	Policy    *Policy          `yaml:"policy"`
	LLM       *LLMConfig       `yaml:"llm"`
	MCP       *MCPConfig       `yaml:"mcp"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address for the HTTP/WebSocket server.
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8383",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds the full configuration: defaults, optional YAML overlay, then
// environment variable overrides, then validation.
func Load() (*Config, error) {
	cfg := &Config{
		Server:    DefaultServerConfig(),
		Workflow:  DefaultWorkflowConfig(),
		Stream:    DefaultStreamConfig(),
		Retention: DefaultRetentionConfig(),
		Policy:    DefaultPolicy(),
		LLM:       DefaultLLMConfig(),
		MCP:       DefaultMCPConfig(),
	}

	if err := applyFileOverlay(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration loaded",
		"addr", cfg.Server.Addr,
		"mock_mode", cfg.Policy.UseMockMode,
		"mock_llm", cfg.Policy.UseMockLLM,
		"hitl_enabled", cfg.Policy.HITLEnabled,
		"pool_size", cfg.Workflow.PoolSize,
		"max_steps", cfg.Workflow.MaxSteps)

	return cfg, nil
}

// applyFileOverlay merges an optional YAML file over the defaults.
// A missing default file is fine; an explicitly configured file must exist.
func applyFileOverlay(cfg *Config) error {
	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if path == "" {
		path = "macaw.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	// Non-zero overlay values override defaults; unset keys keep defaults.
	if err := mergo.Merge(cfg, &overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge config file %s: %w", path, err)
	}

	slog.Info("Applied config file overlay", "path", path)
	return nil
}

// applyEnvOverrides applies the environment variable surface on top of
// whatever the defaults + file overlay produced.
func applyEnvOverrides(cfg *Config) {
	cfg.Server.Addr = getEnv("HTTP_ADDR", cfg.Server.Addr)

	cfg.Policy.UseMockMode = getEnvBool("USE_MOCK_MODE", cfg.Policy.UseMockMode)
	cfg.Policy.UseMockLLM = getEnvBool("USE_MOCK_LLM", cfg.Policy.UseMockLLM)
	cfg.Policy.HITLEnabled = getEnvBool("HITL_ENABLED", cfg.Policy.HITLEnabled)

	cfg.Workflow.PoolSize = getEnvInt("WORKFLOW_POOL_SIZE", cfg.Workflow.PoolSize)
	cfg.Workflow.MaxSteps = getEnvInt("MAX_WORKFLOW_STEPS", cfg.Workflow.MaxSteps)
	cfg.Workflow.CacheMaxEntries = getEnvInt("GRAPH_CACHE_MAX_ENTRIES", cfg.Workflow.CacheMaxEntries)
	cfg.Workflow.AgentTimeout = getEnvSeconds("AGENT_TIMEOUT_SECONDS", cfg.Workflow.AgentTimeout)
	cfg.Workflow.AgentGracePeriod = getEnvSeconds("AGENT_GRACE_SECONDS", cfg.Workflow.AgentGracePeriod)
	cfg.Workflow.WorkflowTimeout = getEnvSeconds("WORKFLOW_TIMEOUT_SECONDS", cfg.Workflow.WorkflowTimeout)

	cfg.Stream.BacklogPerPlan = getEnvInt("WS_BACKLOG_PER_PLAN", cfg.Stream.BacklogPerPlan)
	cfg.Stream.SlowSubscriberHighWater = getEnvInt("WS_SLOW_SUBSCRIBER_HIGH_WATER", cfg.Stream.SlowSubscriberHighWater)

	cfg.Retention.ContextGC = getEnvHours("CONTEXT_GC_HOURS", cfg.Retention.ContextGC)
	cfg.Retention.EventTTL = getEnvHours("EVENT_TTL_HOURS", cfg.Retention.EventTTL)
	cfg.Retention.MonitorSummaryInterval = getEnvMinutes("MONITOR_SUMMARY_MINUTES", cfg.Retention.MonitorSummaryInterval)

	cfg.LLM.GRPCAddr = getEnv("LLM_GRPC_ADDR", cfg.LLM.GRPCAddr)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.MCP.GatewayURL = getEnv("MCP_GATEWAY_URL", cfg.MCP.GatewayURL)
}

// Validate checks the assembled configuration for values that would misbehave
// at runtime.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Workflow.PoolSize < 1 {
		return fmt.Errorf("workflow pool_size must be >= 1, got %d", c.Workflow.PoolSize)
	}
	if c.Workflow.MaxSteps < 2 {
		return fmt.Errorf("workflow max_steps must be >= 2 (planner plus at least one agent), got %d", c.Workflow.MaxSteps)
	}
	if c.Workflow.CacheMaxEntries < 1 {
		return fmt.Errorf("graph cache_max_entries must be >= 1, got %d", c.Workflow.CacheMaxEntries)
	}
	if c.Workflow.AgentTimeout <= 0 {
		return fmt.Errorf("agent_timeout must be positive, got %s", c.Workflow.AgentTimeout)
	}
	if c.Workflow.WorkflowTimeout < c.Workflow.AgentTimeout {
		return fmt.Errorf("workflow_timeout (%s) must be >= agent_timeout (%s)",
			c.Workflow.WorkflowTimeout, c.Workflow.AgentTimeout)
	}
	if c.Stream.BacklogPerPlan < 1 {
		return fmt.Errorf("stream backlog_per_plan must be >= 1, got %d", c.Stream.BacklogPerPlan)
	}
	if c.Stream.SlowSubscriberHighWater < c.Stream.BacklogPerPlan {
		return fmt.Errorf("slow_subscriber_high_water (%d) must be >= backlog_per_plan (%d)",
			c.Stream.SlowSubscriberHighWater, c.Stream.BacklogPerPlan)
	}
	if !c.Policy.UseMockLLM && c.LLM.GRPCAddr == "" {
		return fmt.Errorf("llm grpc_addr is required when USE_MOCK_LLM=false")
	}
	if !c.Policy.UseMockMode && c.MCP.GatewayURL == "" {
		return fmt.Errorf("mcp gateway_url is required when USE_MOCK_MODE=false")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer env var", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean env var", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	if n := getEnvInt(key, -1); n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func getEnvHours(key string, fallback time.Duration) time.Duration {
	if n := getEnvInt(key, -1); n > 0 {
		return time.Duration(n) * time.Hour
	}
	return fallback
}

func getEnvMinutes(key string, fallback time.Duration) time.Duration {
	if n := getEnvInt(key, -1); n > 0 {
		return time.Duration(n) * time.Minute
	}
	return fallback
}
