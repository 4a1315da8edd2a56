package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point CONFIG_FILE away from any real macaw.yaml in the working dir.
	t.Setenv("CONFIG_FILE", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8383", cfg.Server.Addr)
	assert.True(t, cfg.Policy.UseMockMode)
	assert.True(t, cfg.Policy.UseMockLLM)
	assert.True(t, cfg.Policy.HITLEnabled)
	assert.Equal(t, 8, cfg.Workflow.PoolSize)
	assert.Equal(t, 10, cfg.Workflow.MaxSteps)
	assert.Equal(t, 128, cfg.Workflow.CacheMaxEntries)
	assert.Equal(t, 120*time.Second, cfg.Workflow.AgentTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workflow.WorkflowTimeout)
	assert.Equal(t, 200, cfg.Stream.BacklogPerPlan)
	assert.Equal(t, 1000, cfg.Stream.SlowSubscriberHighWater)
	assert.Equal(t, 24*time.Hour, cfg.Retention.ContextGC)
	assert.Equal(t, 6*time.Hour, cfg.Retention.EventTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("USE_MOCK_MODE", "false")
	t.Setenv("MCP_GATEWAY_URL", "http://gateway:8808/mcp")
	t.Setenv("WORKFLOW_POOL_SIZE", "3")
	t.Setenv("MAX_WORKFLOW_STEPS", "5")
	t.Setenv("AGENT_TIMEOUT_SECONDS", "30")
	t.Setenv("WORKFLOW_TIMEOUT_SECONDS", "600")
	t.Setenv("GRAPH_CACHE_MAX_ENTRIES", "16")
	t.Setenv("WS_BACKLOG_PER_PLAN", "50")
	t.Setenv("CONTEXT_GC_HOURS", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.False(t, cfg.Policy.UseMockMode)
	assert.True(t, cfg.Policy.UseMockLLM) // untouched default
	assert.Equal(t, 3, cfg.Workflow.PoolSize)
	assert.Equal(t, 5, cfg.Workflow.MaxSteps)
	assert.Equal(t, 30*time.Second, cfg.Workflow.AgentTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workflow.WorkflowTimeout)
	assert.Equal(t, 16, cfg.Workflow.CacheMaxEntries)
	assert.Equal(t, 50, cfg.Stream.BacklogPerPlan)
	assert.Equal(t, 1*time.Hour, cfg.Retention.ContextGC)
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKFLOW_POOL_SIZE", "not-a-number")
	t.Setenv("USE_MOCK_LLM", "definitely")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workflow.PoolSize)
	assert.True(t, cfg.Policy.UseMockLLM)
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "macaw.yaml")
	yaml := `
workflow:
  pool_size: 2
  max_steps: 4
stream:
  backlog_per_plan: 20
  slow_subscriber_high_water: 100
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workflow.PoolSize)
	assert.Equal(t, 4, cfg.Workflow.MaxSteps)
	assert.Equal(t, 20, cfg.Stream.BacklogPerPlan)
	// Unset keys keep defaults.
	assert.Equal(t, 128, cfg.Workflow.CacheMaxEntries)
	assert.Equal(t, ":8383", cfg.Server.Addr)
}

func TestEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "macaw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workflow:\n  pool_size: 2\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("WORKFLOW_POOL_SIZE", "6")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workflow.PoolSize)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    DefaultServerConfig(),
			Workflow:  DefaultWorkflowConfig(),
			Stream:    DefaultStreamConfig(),
			Retention: DefaultRetentionConfig(),
			Policy:    DefaultPolicy(),
			LLM:       DefaultLLMConfig(),
			MCP:       DefaultMCPConfig(),
		}
	}

	t.Run("valid defaults", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("pool size", func(t *testing.T) {
		cfg := base()
		cfg.Workflow.PoolSize = 0
		assert.ErrorContains(t, cfg.Validate(), "pool_size")
	})

	t.Run("max steps too small", func(t *testing.T) {
		cfg := base()
		cfg.Workflow.MaxSteps = 1
		assert.ErrorContains(t, cfg.Validate(), "max_steps")
	})

	t.Run("workflow timeout below agent timeout", func(t *testing.T) {
		cfg := base()
		cfg.Workflow.WorkflowTimeout = 10 * time.Second
		assert.ErrorContains(t, cfg.Validate(), "workflow_timeout")
	})

	t.Run("high water below backlog", func(t *testing.T) {
		cfg := base()
		cfg.Stream.SlowSubscriberHighWater = 10
		assert.ErrorContains(t, cfg.Validate(), "slow_subscriber_high_water")
	})

	t.Run("real llm requires addr", func(t *testing.T) {
		cfg := base()
		cfg.Policy.UseMockLLM = false
		cfg.LLM.GRPCAddr = ""
		assert.ErrorContains(t, cfg.Validate(), "grpc_addr")
	})

	t.Run("real mode requires gateway", func(t *testing.T) {
		cfg := base()
		cfg.Policy.UseMockMode = false
		cfg.MCP.GatewayURL = ""
		assert.ErrorContains(t, cfg.Validate(), "gateway_url")
	})
}
