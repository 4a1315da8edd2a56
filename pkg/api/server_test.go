package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/engine"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/services"
)

type fakeOrch struct {
	submitted        []models.CreatePlanRequest
	submitErr        error
	planVerdicts     []bool
	planSequences    [][]string
	planErr          error
	resultVerdicts   []bool
	resultRestarted  *ent.Plan
	resultErr        error
	extractionEdits  []map[string]any
	extractionErr    error
	clarifyAnswers   []string
	clarifyResult    *engine.ClarificationResult
	clarifyErr       error
	cancelled        []string
	cancelErr        error
	snapshots        map[string]*models.WorkflowSnapshot
	activeCount      int
	restartedOnExtra *ent.Plan
}

func (f *fakeOrch) Submit(_ context.Context, req models.CreatePlanRequest) (*ent.Plan, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &ent.Plan{ID: "plan-1", SessionID: req.SessionID, Status: plan.StatusPending}, nil
}

func (f *fakeOrch) SubmitPlanApproval(_ context.Context, planID string, approved bool, modified []string, _ string) error {
	f.planVerdicts = append(f.planVerdicts, approved)
	f.planSequences = append(f.planSequences, modified)
	return f.planErr
}

func (f *fakeOrch) SubmitResultApproval(_ context.Context, planID string, approved bool, _ string) (*ent.Plan, error) {
	f.resultVerdicts = append(f.resultVerdicts, approved)
	return f.resultRestarted, f.resultErr
}

func (f *fakeOrch) SubmitExtractionApproval(_ context.Context, planID string, approved bool, edited map[string]any, _ string) (*ent.Plan, error) {
	f.extractionEdits = append(f.extractionEdits, edited)
	return f.restartedOnExtra, f.extractionErr
}

func (f *fakeOrch) Clarify(_ context.Context, planID, answer string) (*engine.ClarificationResult, error) {
	f.clarifyAnswers = append(f.clarifyAnswers, answer)
	return f.clarifyResult, f.clarifyErr
}

func (f *fakeOrch) Cancel(planID string) error {
	f.cancelled = append(f.cancelled, planID)
	return f.cancelErr
}

func (f *fakeOrch) Snapshot(planID string) (*models.WorkflowSnapshot, bool) {
	snap, ok := f.snapshots[planID]
	return snap, ok
}

func (f *fakeOrch) ActiveCount() int { return f.activeCount }

type fakePlans struct {
	details     map[string]*models.PlanDetail
	lastFilters models.PlanFilters
	list        *models.PlanListResponse
	listErr     error
}

func (f *fakePlans) GetDetail(_ context.Context, planID string) (*models.PlanDetail, error) {
	d, ok := f.details[planID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return d, nil
}

func (f *fakePlans) ListPlans(_ context.Context, filters models.PlanFilters) (*models.PlanListResponse, error) {
	f.lastFilters = filters
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.list != nil {
		return f.list, nil
	}
	return &models.PlanListResponse{Plans: []*ent.Plan{}, Limit: filters.Limit, Offset: filters.Offset}, nil
}

type fakeTeams struct {
	uploaded  []*models.TeamDefinition
	uploadErr error
	deleted   []string
	deleteErr error
}

func (f *fakeTeams) Upload(_ context.Context, def *models.TeamDefinition) (*ent.Team, error) {
	f.uploaded = append(f.uploaded, def)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &ent.Team{ID: "team-1", Name: def.Name}, nil
}

func (f *fakeTeams) ListTeams(_ context.Context) ([]*ent.Team, error) {
	return []*ent.Team{}, nil
}

func (f *fakeTeams) DeleteTeam(_ context.Context, teamID string) error {
	f.deleted = append(f.deleted, teamID)
	return f.deleteErr
}

type fakeApprovals struct {
	views map[string]*models.ApprovalView
}

func (f *fakeApprovals) View(planID string) (*models.ApprovalView, bool) {
	v, ok := f.views[planID]
	return v, ok
}

type testAPI struct {
	orch      *fakeOrch
	plans     *fakePlans
	teams     *fakeTeams
	approvals *fakeApprovals
	srv       *httptest.Server
}

func newTestAPI(t *testing.T, hitlDefault bool) *testAPI {
	t.Helper()
	a := &testAPI{
		orch:      &fakeOrch{snapshots: map[string]*models.WorkflowSnapshot{}},
		plans:     &fakePlans{details: map[string]*models.PlanDetail{}},
		teams:     &fakeTeams{},
		approvals: &fakeApprovals{views: map[string]*models.ApprovalView{}},
	}
	server := NewServer(&config.ServerConfig{Addr: ":0"}, Deps{
		Orchestrator: a.orch,
		Plans:        a.plans,
		Teams:        a.teams,
		Approvals:    a.approvals,
		HITLDefault:  hitlDefault,
	})
	a.srv = httptest.NewServer(server.Router())
	t.Cleanup(a.srv.Close)
	return a
}

func (a *testAPI) postJSON(t *testing.T, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(a.srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (a *testAPI) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.srv.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestProcessRequestAccepted(t *testing.T) {
	a := newTestAPI(t, true)

	resp, body := a.postJSON(t, "/api/process_request", map[string]any{
		"description": "Review outstanding invoices",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "plan-1", body["plan_id"])
	assert.NotEmpty(t, body["session_id"])

	require.Len(t, a.orch.submitted, 1)
	req := a.orch.submitted[0]
	assert.Equal(t, "Review outstanding invoices", req.TaskDescription)
	assert.True(t, req.RequireApproval, "server HITL default should apply")
	assert.NotEmpty(t, req.SessionID, "missing session id should be generated")
}

func TestProcessRequestApprovalOverride(t *testing.T) {
	a := newTestAPI(t, true)

	off := false
	resp, _ := a.postJSON(t, "/api/process_request", map[string]any{
		"description":           "Summarize the inbox",
		"session_id":            "sess-9",
		"require_plan_approval": off,
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	require.Len(t, a.orch.submitted, 1)
	assert.False(t, a.orch.submitted[0].RequireApproval)
	assert.Equal(t, "sess-9", a.orch.submitted[0].SessionID)
}

func TestProcessRequestRejectsEmptyDescription(t *testing.T) {
	a := newTestAPI(t, false)

	resp, body := a.postJSON(t, "/api/process_request", map[string]any{
		"description": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "description", body["field"])
	assert.Empty(t, a.orch.submitted)
}

func TestGetPlanEnrichesLiveState(t *testing.T) {
	a := newTestAPI(t, false)
	a.plans.details["plan-7"] = &models.PlanDetail{
		Plan: &ent.Plan{ID: "plan-7", SessionID: "s", Status: plan.StatusInProgress},
	}
	a.approvals.views["plan-7"] = &models.ApprovalView{Current: "EXECUTING"}
	a.orch.snapshots["plan-7"] = &models.WorkflowSnapshot{PlanID: "plan-7", CurrentStep: 2}

	resp, body := a.get(t, "/api/plan?plan_id=plan-7")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	approval, ok := body["approval"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "EXECUTING", approval["current"])

	ws, ok := body["workflow_state"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, ws["current_step"])
}

func TestGetPlanNotFound(t *testing.T) {
	a := newTestAPI(t, false)

	resp, body := a.get(t, "/api/plan?plan_id=nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "plan not found", body["error"])
}

func TestListPlansParsesFilters(t *testing.T) {
	a := newTestAPI(t, false)

	resp, _ := a.get(t, "/api/plans?session_id=s1&status=completed&limit=10&offset=20")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "s1", a.plans.lastFilters.SessionID)
	assert.Equal(t, "completed", a.plans.lastFilters.Status)
	assert.Equal(t, 10, a.plans.lastFilters.Limit)
	assert.Equal(t, 20, a.plans.lastFilters.Offset)
}

func TestListPlansRejectsBadStatus(t *testing.T) {
	a := newTestAPI(t, false)

	resp, body := a.get(t, "/api/plans?status=sideways")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "status", body["field"])
}

func TestPlanApprovalAtPlanCheckpoint(t *testing.T) {
	a := newTestAPI(t, false)
	a.approvals.views["plan-3"] = &models.ApprovalView{
		Current:           "AWAITING_PLAN_APPROVAL",
		PendingCheckpoint: "plan",
	}

	resp, body := a.postJSON(t, "/api/plan_approval", map[string]any{
		"plan_id":           "plan-3",
		"approved":          true,
		"modified_sequence": []string{"planner", "invoice", "analysis"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["modified"])

	require.Len(t, a.orch.planVerdicts, 1)
	assert.True(t, a.orch.planVerdicts[0])
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, a.orch.planSequences[0])
	assert.Empty(t, a.orch.resultVerdicts, "plan checkpoint must not route to result approval")
}

func TestPlanApprovalRoutesToResultCheckpoint(t *testing.T) {
	a := newTestAPI(t, false)
	a.approvals.views["plan-4"] = &models.ApprovalView{
		Current:           "AWAITING_RESULT_APPROVAL",
		PendingCheckpoint: "result",
	}
	a.orch.resultRestarted = &ent.Plan{ID: "plan-5"}

	resp, body := a.postJSON(t, "/api/plan_approval", map[string]any{
		"plan_id":  "plan-4",
		"approved": false,
		"feedback": "redo with current quarter data",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "plan-5", body["restarted_plan_id"])

	require.Len(t, a.orch.resultVerdicts, 1)
	assert.False(t, a.orch.resultVerdicts[0])
	assert.Empty(t, a.orch.planVerdicts)
}

func TestPlanApprovalLegacyAlias(t *testing.T) {
	a := newTestAPI(t, false)

	resp, _ := a.postJSON(t, "/api/plan_approval", map[string]any{
		"m_plan_id": "plan-8",
		"approved":  true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, a.orch.planVerdicts, 1)
}

func TestExtractionApproval(t *testing.T) {
	a := newTestAPI(t, false)

	resp, _ := a.postJSON(t, "/api/extraction_approval", map[string]any{
		"plan_id":     "plan-2",
		"approved":    true,
		"edited_data": map[string]any{"amount": 120.5},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, a.orch.extractionEdits, 1)
	assert.InDelta(t, 120.5, a.orch.extractionEdits[0]["amount"], 0.001)
}

func TestUserClarification(t *testing.T) {
	a := newTestAPI(t, false)
	a.orch.clarifyResult = &engine.ClarificationResult{Verdict: approval.VerdictApprove, Checkpoint: "plan"}

	resp, body := a.postJSON(t, "/api/user_clarification", map[string]any{
		"plan_id": "plan-6",
		"answer":  "yes, go ahead",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approve", body["verdict"])
	assert.Equal(t, "plan", body["checkpoint"])
	require.Equal(t, []string{"yes, go ahead"}, a.orch.clarifyAnswers)
}

func TestCancelConflictOnTerminalPlan(t *testing.T) {
	a := newTestAPI(t, false)
	a.orch.cancelErr = services.ErrNotCancellable

	resp, _ := a.postJSON(t, "/api/plan_cancel", map[string]any{"plan_id": "plan-9"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, []string{"plan-9"}, a.orch.cancelled)
}

func TestUploadTeamParsesYAML(t *testing.T) {
	a := newTestAPI(t, false)

	doc := strings.Join([]string{
		"name: billing-crew",
		"description: invoice follow-up",
		"agents:",
		"  - name: invoice",
		"  - name: analysis",
		"    capabilities: [reporting]",
	}, "\n")
	resp, err := http.Post(a.srv.URL+"/api/teams/upload", "application/yaml", strings.NewReader(doc))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotNil(t, body["team"])

	require.Len(t, a.teams.uploaded, 1)
	def := a.teams.uploaded[0]
	assert.Equal(t, "billing-crew", def.Name)
	require.Len(t, def.Agents, 2)
	assert.Equal(t, []string{"reporting"}, def.Agents[1].Capabilities)
}

func TestUploadTeamValidationError(t *testing.T) {
	a := newTestAPI(t, false)
	a.teams.uploadErr = services.NewValidationError("agents", "unknown agent \"payroll\"")

	resp, err := http.Post(a.srv.URL+"/api/teams/upload", "application/yaml", strings.NewReader("name: x\nagents: [{name: payroll}]"))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "agents", body["field"])
}

func TestDeleteTeam(t *testing.T) {
	a := newTestAPI(t, false)

	req, err := http.NewRequest(http.MethodDelete, a.srv.URL+"/api/teams/team-3", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "team-3", body["deleted"])
	assert.Equal(t, []string{"team-3"}, a.teams.deleted)
}

func TestVersionEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	resp, body := a.get(t, "/api/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "macaw", body["name"])
	assert.NotEmpty(t, body["version"])
}

func TestStatsEndpoint(t *testing.T) {
	a := newTestAPI(t, false)
	a.orch.activeCount = 3

	resp, body := a.get(t, "/api/stats")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["active_workflows"])
}

func TestHealthzWithoutDatabase(t *testing.T) {
	a := newTestAPI(t, false)

	resp, body := a.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", body["status"])
}

func TestSecurityHeaders(t *testing.T) {
	a := newTestAPI(t, false)

	resp, _ := a.get(t, "/api/version")
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
