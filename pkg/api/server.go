// Package api is the public HTTP surface: a gin server exposing plan
// submission, approval verdicts, plan queries, team management, and the
// WebSocket event endpoint.
package api

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/engine"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/monitor"
	"github.com/finovant/macaw/pkg/workflow"
)

// Orchestrator is the engine surface the handlers drive. Implemented by
// engine.Engine.
type Orchestrator interface {
	Submit(ctx context.Context, req models.CreatePlanRequest) (*ent.Plan, error)
	SubmitPlanApproval(ctx context.Context, planID string, approved bool, modifiedSequence []string, feedback string) error
	SubmitResultApproval(ctx context.Context, planID string, approved bool, feedback string) (*ent.Plan, error)
	SubmitExtractionApproval(ctx context.Context, planID string, approved bool, edited map[string]any, feedback string) (*ent.Plan, error)
	Clarify(ctx context.Context, planID, answer string) (*engine.ClarificationResult, error)
	Cancel(planID string) error
	Snapshot(planID string) (*models.WorkflowSnapshot, bool)
	ActiveCount() int
}

// PlanReader is the durable plan query surface. Implemented by
// services.PlanService.
type PlanReader interface {
	GetDetail(ctx context.Context, planID string) (*models.PlanDetail, error)
	ListPlans(ctx context.Context, filters models.PlanFilters) (*models.PlanListResponse, error)
}

// TeamStore manages uploaded team definitions. Implemented by
// services.TeamService.
type TeamStore interface {
	Upload(ctx context.Context, def *models.TeamDefinition) (*ent.Team, error)
	ListTeams(ctx context.Context) ([]*ent.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// ApprovalViewer exposes the live approval record for plan detail responses.
// Implemented by approval.Manager.
type ApprovalViewer interface {
	View(planID string) (*models.ApprovalView, bool)
}

// Deps carries the server's collaborators. DB, ConnManager, Registry and
// Monitor are optional; the matching endpoints degrade when absent.
type Deps struct {
	Orchestrator Orchestrator
	Plans        PlanReader
	Teams        TeamStore
	Approvals    ApprovalViewer
	Registry     *workflow.Registry
	Monitor      *monitor.Monitor
	ConnManager  *events.ConnectionManager
	DB           *stdsql.DB
	HITLDefault  bool
}

// Server is the HTTP API server.
type Server struct {
	cfg         *config.ServerConfig
	orch        Orchestrator
	plans       PlanReader
	teams       TeamStore
	approvals   ApprovalViewer
	registry    *workflow.Registry
	mon         *monitor.Monitor
	connManager *events.ConnectionManager
	db          *stdsql.DB
	hitlDefault bool

	httpServer *http.Server
}

// NewServer creates the API server and builds its router.
func NewServer(cfg *config.ServerConfig, d Deps) *Server {
	s := &Server{
		cfg:         cfg,
		orch:        d.Orchestrator,
		plans:       d.Plans,
		teams:       d.Teams,
		approvals:   d.Approvals,
		registry:    d.Registry,
		mon:         d.Monitor,
		connManager: d.ConnManager,
		db:          d.DB,
		hitlDefault: d.HITLDefault,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes and middleware. Exposed for
// tests, which drive it through httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(), recovery(), securityHeaders())

	r.GET("/healthz", s.healthHandler)

	api := r.Group("/api")
	{
		api.GET("/version", s.versionHandler)
		api.GET("/stats", s.statsHandler)
		api.GET("/agents", s.agentsHandler)

		api.POST("/process_request", s.processRequestHandler)
		api.GET("/plans", s.listPlansHandler)
		api.GET("/plan", s.getPlanHandler)
		api.POST("/plan_cancel", s.cancelPlanHandler)

		api.POST("/plan_approval", s.planApprovalHandler)
		api.POST("/user_clarification", s.userClarificationHandler)
		api.POST("/extraction_approval", s.extractionApprovalHandler)

		api.GET("/teams", s.listTeamsHandler)
		api.POST("/teams/upload", s.uploadTeamHandler)
		api.DELETE("/teams/:id", s.deleteTeamHandler)
	}

	r.GET("/socket/:plan_id", s.wsHandler)
	return r
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
