// Macaw orchestrator server — plans, executes and supervises multi-agent
// back-office workflows behind an HTTP/WebSocket API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/finovant/macaw/pkg/agent"
	"github.com/finovant/macaw/pkg/api"
	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/cleanup"
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
	"github.com/finovant/macaw/pkg/version"
	"github.com/finovant/macaw/pkg/workflow"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local-dev convenience; deployed environments set real env vars.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting macaw", "version", version.Full())

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Durable services
	planService := services.NewPlanService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	extractionService := services.NewExtractionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	contextService := services.NewContextService()

	// Plans left in-flight by a previous process are unrecoverable: the
	// in-memory workflow state died with it.
	if n, err := planService.RecoverOrphans(ctx); err != nil {
		slog.Error("Orphan recovery failed", "error", err)
	} else if n > 0 {
		slog.Info("Recovered orphaned plans", "count", n)
	}

	// Streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	catchup := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchup,
		cfg.Stream.BacklogPerPlan,
		cfg.Stream.SlowSubscriberHighWater,
		cfg.Stream.WriteTimeout)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		return err
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// LLM client
	var llmClient llm.Client
	if cfg.Policy.UseMockLLM {
		llmClient = llm.NewMockClient()
		slog.Info("Using mock LLM client")
	} else {
		// grpc.NewClient dials lazily; the connection is made on first RPC.
		grpcClient, err := llm.NewGRPCClient(cfg.LLM)
		if err != nil {
			return err
		}
		defer func() {
			if err := grpcClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		llmClient = grpcClient
		slog.Info("LLM client initialized", "addr", cfg.LLM.GRPCAddr)
	}

	// MCP tool client
	var toolClient mcp.ToolClient
	if cfg.Policy.UseMockMode {
		toolClient = mcp.NewMockToolClient()
		slog.Info("Using mock tool client")
	} else {
		gateway := mcp.NewGatewayClient(cfg.MCP)
		if err := gateway.Connect(ctx); err != nil {
			return err
		}
		defer func() {
			if err := gateway.Close(); err != nil {
				slog.Error("Error closing MCP client", "error", err)
			}
		}()
		toolClient = gateway
		slog.Info("MCP gateway connected", "url", cfg.MCP.GatewayURL)
	}

	// Agents
	registry := workflow.NewRegistry()
	if err := agent.RegisterDefaults(agent.Deps{
		Registry: registry,
		Tools:    toolClient,
		LLM:      llmClient,
		Streamer: publisher,
	}); err != nil {
		return err
	}
	slog.Info("Agents registered", "count", registry.Len())

	// Performance monitor
	mon := monitor.New()
	mon.Start(ctx, cfg.Retention.MonitorSummaryInterval)
	defer mon.Stop()

	// Planner with team hints from the stored definitions
	teamService := services.NewTeamService(dbClient.Client, registry)
	taskPlanner := planner.New(llmClient, registry, cfg.Workflow.MaxSteps)
	taskPlanner.SetTeamSource(teamService)

	// Workflow engine
	approvals := approval.NewManager()
	eng := engine.New(cfg.Workflow, engine.Deps{
		Registry:    registry,
		Planner:     taskPlanner,
		Compiler:    graph.NewCompiler(registry, cfg.Workflow.CacheMaxEntries, mon),
		Approvals:   approvals,
		Plans:       planService,
		Messages:    messageService,
		Extractions: extractionService,
		Events:      publisher,
		Contexts:    contextService,
		Metrics:     mon,
		Faults:      faults.NewHandler(cfg.Policy.UseMockMode),
		Backlogs:    connManager,
	})
	defer eng.Stop()

	// Retention
	cleanupService := cleanup.NewService(cfg.Retention, planService, eventService, contextService, eng)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server
	server := api.NewServer(cfg.Server, api.Deps{
		Orchestrator: eng,
		Plans:        planService,
		Teams:        teamService,
		Approvals:    approvals,
		Registry:     registry,
		Monitor:      mon,
		ConnManager:  connManager,
		DB:           dbClient.DB(),
		HITLDefault:  cfg.Policy.HITLEnabled,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Macaw started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop accepting requests first, then drain the engine. The deferred
	// stops handle cleanup, monitor, listener and database in reverse order.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	eng.Stop()
	slog.Info("Shutdown complete")
	return nil
}
