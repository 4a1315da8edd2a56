// Package e2e boots a complete macaw instance — real PostgreSQL, real
// NOTIFY/LISTEN streaming, mock LLM and tool clients — and drives it through
// the public HTTP and WebSocket surface.
package e2e

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/agent"
	"github.com/finovant/macaw/pkg/api"
	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/database"
	"github.com/finovant/macaw/pkg/engine"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/faults"
	"github.com/finovant/macaw/pkg/graph"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/monitor"
	"github.com/finovant/macaw/pkg/planner"
	"github.com/finovant/macaw/pkg/services"
	"github.com/finovant/macaw/pkg/workflow"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/finovant/macaw/test/util"
)

// TestApp is a fully wired macaw instance for one test.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	LLM       *llm.MockClient
	Tools     *mcp.MockToolClient
	Engine    *engine.Engine
	Approvals *approval.Manager
	Plans     *services.PlanService
	Messages  *services.MessageService
	Events    *services.EventService

	BaseURL string // http://127.0.0.1:NNNNN
	WSBase  string // ws://127.0.0.1:NNNNN

	t *testing.T
}

type testAppConfig struct {
	workflow    *config.WorkflowConfig
	script      []llm.ScriptEntry
	hitlDefault bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkflow mutates the default workflow configuration.
func WithWorkflow(mutate func(*config.WorkflowConfig)) TestAppOption {
	return func(c *testAppConfig) { mutate(c.workflow) }
}

// WithScript pre-scripts the mock LLM client.
func WithScript(entries ...llm.ScriptEntry) TestAppOption {
	return func(c *testAppConfig) { c.script = entries }
}

// WithHITLDefault sets the server-side default for require_plan_approval.
func WithHITLDefault(v bool) TestAppOption {
	return func(c *testAppConfig) { c.hitlDefault = v }
}

// NewTestApp creates and starts a full macaw test instance. Shutdown is
// registered via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workflow: &config.WorkflowConfig{
			PoolSize:         4,
			MaxSteps:         6,
			CacheMaxEntries:  32,
			AgentTimeout:     10 * time.Second,
			AgentGracePeriod: 200 * time.Millisecond,
			WorkflowTimeout:  60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(tc)
	}

	ctx := context.Background()

	// Real database, per-test schema.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	planService := services.NewPlanService(entClient)
	messageService := services.NewMessageService(entClient)
	extractionService := services.NewExtractionService(entClient)
	eventService := services.NewEventService(entClient)
	contextService := services.NewContextService()

	// Real streaming: durable publisher + NOTIFY listener on a dedicated
	// connection. Channel names embed plan ids, so tests sharing the
	// database do not cross-talk.
	publisher := events.NewPublisher(dbClient.DB())
	catchup := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchup, 50, 256, 5*time.Second)
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// Mock clients; the rest of the pipeline is the real thing.
	llmClient := llm.NewMockClient(tc.script...)
	toolClient := mcp.NewMockToolClient()

	registry := workflow.NewRegistry()
	require.NoError(t, agent.RegisterDefaults(agent.Deps{
		Registry: registry,
		Tools:    toolClient,
		LLM:      llmClient,
		Streamer: publisher,
	}))

	mon := monitor.New()
	approvals := approval.NewManager()
	eng := engine.New(tc.workflow, engine.Deps{
		Registry:    registry,
		Planner:     planner.New(llmClient, registry, tc.workflow.MaxSteps),
		Compiler:    graph.NewCompiler(registry, tc.workflow.CacheMaxEntries, mon),
		Approvals:   approvals,
		Plans:       planService,
		Messages:    messageService,
		Extractions: extractionService,
		Events:      publisher,
		Contexts:    contextService,
		Metrics:     mon,
		Faults:      faults.NewHandler(true),
		Backlogs:    connManager,
	})

	teamService := services.NewTeamService(entClient, registry)
	server := api.NewServer(config.DefaultServerConfig(), api.Deps{
		Orchestrator: eng,
		Plans:        planService,
		Teams:        teamService,
		Approvals:    approvals,
		Registry:     registry,
		Monitor:      mon,
		ConnManager:  connManager,
		DB:           dbClient.DB(),
		HITLDefault:  tc.hitlDefault,
	})

	httpServer := httptest.NewServer(server.Router())

	app := &TestApp{
		Config:    &config.Config{Workflow: tc.workflow},
		DBClient:  dbClient,
		LLM:       llmClient,
		Tools:     toolClient,
		Engine:    eng,
		Approvals: approvals,
		Plans:     planService,
		Messages:  messageService,
		Events:    eventService,
		BaseURL:   httpServer.URL,
		WSBase:    "ws" + strings.TrimPrefix(httpServer.URL, "http"),
		t:         t,
	}

	t.Cleanup(func() {
		httpServer.Close()
		eng.Stop()
		notifyListener.Stop(context.Background())
	})

	return app
}
