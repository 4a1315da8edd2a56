package config

import (
	"os"
	"time"
)

// MCPConfig holds settings for the MCP tool gateway that fronts the finance
// systems (invoice store, mailbox, CRM). All agents share one streamable HTTP
// endpoint; tool names are namespaced by the gateway.
type MCPConfig struct {
	// GatewayURL is the streamable HTTP endpoint of the MCP gateway.
	GatewayURL string `yaml:"gateway_url"`

	// BearerTokenEnv names the environment variable holding the gateway
	// bearer token. Empty means unauthenticated.
	BearerTokenEnv string `yaml:"bearer_token_env,omitempty"`

	// VerifySSL, when set to false, disables TLS certificate verification.
	VerifySSL *bool `yaml:"verify_ssl,omitempty"`

	// RequestTimeout bounds a single tool call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultMCPConfig returns the built-in MCP defaults.
func DefaultMCPConfig() *MCPConfig {
	return &MCPConfig{
		GatewayURL:     "http://localhost:8808/mcp",
		RequestTimeout: 30 * time.Second,
	}
}

// BearerToken resolves the configured token env var. Returns "" when
// unauthenticated.
func (c *MCPConfig) BearerToken() string {
	if c.BearerTokenEnv == "" {
		return ""
	}
	return os.Getenv(c.BearerTokenEnv)
}
