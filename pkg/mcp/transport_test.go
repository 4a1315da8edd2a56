package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/config"
)

func TestCreateTransport(t *testing.T) {
	cfg := &config.MCPConfig{
		GatewayURL: "https://mcp.example.com/mcp",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://mcp.example.com/mcp", transport.Endpoint)
	assert.Nil(t, transport.HTTPClient, "no custom client needed without auth or timeout")
}

func TestCreateTransport_MissingURL(t *testing.T) {
	_, err := createTransport(&config.MCPConfig{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a url")
}

func TestCreateTransport_WithAuth(t *testing.T) {
	t.Setenv("MCP_GATEWAY_TOKEN", "my-token")
	cfg := &config.MCPConfig{
		GatewayURL:     "https://mcp.example.com/mcp",
		BearerTokenEnv: "MCP_GATEWAY_TOKEN",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	assert.NotNil(t, transport.HTTPClient)
}

func TestCreateTransport_WithTimeout(t *testing.T) {
	cfg := &config.MCPConfig{
		GatewayURL:     "https://mcp.example.com/mcp",
		RequestTimeout: 30 * time.Second,
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	require.NotNil(t, transport.HTTPClient)
	assert.Equal(t, 30*time.Second, transport.HTTPClient.Timeout)
}

func TestCreateTransport_WithVerifySSLFalse(t *testing.T) {
	verifySSL := false
	cfg := &config.MCPConfig{
		GatewayURL: "https://mcp.example.com/mcp",
		VerifySSL:  &verifySSL,
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	assert.NotNil(t, transport.HTTPClient, "expected custom HTTP client for VerifySSL=false")
}

func TestBearerTokenTransport(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := &http.Client{
		Transport: &bearerTokenTransport{
			base:  http.DefaultTransport,
			token: "secret-token",
		},
	}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer secret-token", gotAuth)
}
