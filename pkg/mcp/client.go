// Package mcp provides the MCP (Model Context Protocol) client used by agents
// to reach the finance tool gateway: a single streamable HTTP endpoint that
// fronts the invoice store, mailbox, and CRM tool servers.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/version"
)

// ToolDefinition describes one tool exposed by the gateway.
type ToolDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolClient executes namespaced tool calls ("service.tool", e.g.
// "invoice.list_invoices"). Implementations: GatewayClient (production),
// MockToolClient (mock mode and tests).
type ToolClient interface {
	// CallTool executes a tool and returns its text content. A tool-reported
	// error (IsError result) is surfaced as a Go error carrying the content.
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)

	// ListTools returns the gateway's tool inventory.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// HealthCheck probes the gateway, reconnecting once if the session is dead.
	HealthCheck(ctx context.Context) error

	// Close shuts down the session and transport.
	Close() error
}

// GatewayClient is the production ToolClient over the MCP SDK.
// Thread-safe: agents in concurrently running workflows share one instance.
type GatewayClient struct {
	cfg *config.MCPConfig

	mu      sync.RWMutex
	session *mcpsdk.ClientSession
	client  *mcpsdk.Client

	// Serializes connect/reconnect attempts to prevent thundering herd.
	reinitMu sync.Mutex

	// Tool cache, populated on first ListTools, cleared on reconnect.
	toolCache   []*mcpsdk.Tool
	toolCacheMu sync.RWMutex

	logger *slog.Logger
}

// NewGatewayClient creates a client for the configured gateway. No connection
// is made until Connect or the first call.
func NewGatewayClient(cfg *config.MCPConfig) *GatewayClient {
	return &GatewayClient{
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// Connect establishes the gateway session. Returns nil if already connected.
func (c *GatewayClient) Connect(ctx context.Context) error {
	c.reinitMu.Lock()
	defer c.reinitMu.Unlock()
	return c.connectLocked(ctx)
}

// connectLocked performs the actual connection. Caller must hold reinitMu.
func (c *GatewayClient) connectLocked(ctx context.Context) error {
	c.mu.RLock()
	if c.session != nil {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	transport, err := createTransport(c.cfg)
	if err != nil {
		return fmt.Errorf("failed to create gateway transport: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer to avoid leaking
		// resources on handshake failure.
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to MCP gateway %q: %w", c.cfg.GatewayURL, err)
	}

	c.mu.Lock()
	c.session = session
	c.client = client
	c.mu.Unlock()

	c.logger.Info("MCP gateway connected", "url", c.cfg.GatewayURL)
	return nil
}

// CallTool executes a tool call with recovery: transport failures get one
// retry after a jittered backoff, recreating the session when the transport
// is broken.
func (c *GatewayClient) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if _, _, err := SplitToolName(name); err != nil {
		return "", err
	}

	params := &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	}

	result, err := c.callToolOnce(ctx, params)
	if err == nil {
		return c.extractResult(name, result)
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return "", err
	}

	c.logger.Info("MCP call failed, retrying",
		"tool", name, "action", action, "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if action == RetryNewSession {
		if err := c.recreateSession(ctx); err != nil {
			return "", fmt.Errorf("gateway session recreation failed: %w", err)
		}
	}

	result, err = c.callToolOnce(ctx, params)
	if err != nil {
		return "", fmt.Errorf("retry failed for %s: %w", name, err)
	}
	return c.extractResult(name, result)
}

// callToolOnce performs a single CallTool attempt, lazily connecting.
func (c *GatewayClient) callToolOnce(ctx context.Context, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.operationTimeout())
	defer cancel()

	return session.CallTool(opCtx, params)
}

// extractResult converts an MCP result to text, mapping IsError results to
// Go errors so agents fail the step.
func (c *GatewayClient) extractResult(name string, result *mcpsdk.CallToolResult) (string, error) {
	content := extractTextContent(result)
	if result.IsError {
		return content, fmt.Errorf("tool %s reported an error: %s", name, content)
	}
	return content, nil
}

// ListTools returns the gateway tool inventory. Uses cache if available.
func (c *GatewayClient) ListTools(ctx context.Context) ([]ToolDefinition, error) {
	c.toolCacheMu.RLock()
	if c.toolCache != nil {
		cached := c.toolCache
		c.toolCacheMu.RUnlock()
		return toDefinitions(cached), nil
	}
	c.toolCacheMu.RUnlock()

	session, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.operationTimeout())
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from gateway: %w", err)
	}

	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolCacheMu.Lock()
	c.toolCache = tools
	c.toolCacheMu.Unlock()

	return toDefinitions(tools), nil
}

// HealthCheck probes the gateway with an uncached ListTools, recreating the
// session and retrying once on failure.
func (c *GatewayClient) HealthCheck(ctx context.Context) error {
	c.InvalidateToolCache()

	checkCtx, cancel := context.WithTimeout(ctx, HealthPingTimeout)
	defer cancel()

	_, err := c.ListTools(checkCtx)
	if err == nil {
		return nil
	}

	c.logger.Debug("Gateway health check failed, attempting reconnect", "error", err)

	if reinitErr := c.recreateSession(ctx); reinitErr != nil {
		return fmt.Errorf("gateway unhealthy: %w", err)
	}

	retryCtx, retryCancel := context.WithTimeout(ctx, HealthPingTimeout)
	defer retryCancel()

	if _, err := c.ListTools(retryCtx); err != nil {
		return fmt.Errorf("gateway unhealthy after reconnect: %w", err)
	}
	return nil
}

// InvalidateToolCache clears the cached tool list, forcing the next ListTools
// to re-probe the gateway.
func (c *GatewayClient) InvalidateToolCache() {
	c.toolCacheMu.Lock()
	c.toolCache = nil
	c.toolCacheMu.Unlock()
}

// Close shuts down the session and transport.
func (c *GatewayClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.session != nil {
		err = c.session.Close()
		c.session = nil
		c.client = nil
	}

	c.toolCacheMu.Lock()
	c.toolCache = nil
	c.toolCacheMu.Unlock()

	return err
}

// ensureSession returns the live session, connecting lazily.
func (c *GatewayClient) ensureSession(ctx context.Context) (*mcpsdk.ClientSession, error) {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session != nil {
		return session, nil
	}

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, fmt.Errorf("no session for MCP gateway")
	}
	return c.session, nil
}

// recreateSession tears down and recreates the gateway session.
func (c *GatewayClient) recreateSession(ctx context.Context) error {
	c.reinitMu.Lock()
	defer c.reinitMu.Unlock()

	c.mu.Lock()
	if c.session != nil {
		_ = c.session.Close()
		c.session = nil
		c.client = nil
	}
	c.mu.Unlock()

	c.InvalidateToolCache()

	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	return c.connectLocked(reinitCtx)
}

func (c *GatewayClient) operationTimeout() time.Duration {
	if c.cfg.RequestTimeout > 0 {
		return c.cfg.RequestTimeout
	}
	return OperationTimeout
}

// extractTextContent concatenates TextContent items from an MCP result.
// Non-text content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, item := range result.Content {
		if tc, ok := item.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", item))
		}
	}
	return strings.Join(parts, "\n")
}

func toDefinitions(tools []*mcpsdk.Tool) []ToolDefinition {
	defs := make([]ToolDefinition, len(tools))
	for i, tool := range tools {
		defs[i] = ToolDefinition{Name: tool.Name, Description: tool.Description}
	}
	return defs
}
