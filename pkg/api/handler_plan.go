package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/models"
)

// processRequestHandler handles POST /api/process_request. Returns 202: the
// plan row exists but planning and execution happen asynchronously.
func (s *Server) processRequestHandler(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required", "field": "description"})
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	requireApproval := s.hitlDefault
	if req.RequirePlanApproval != nil {
		requireApproval = *req.RequirePlanApproval
	}

	p, err := s.orch.Submit(c.Request.Context(), models.CreatePlanRequest{
		SessionID:       sessionID,
		TaskDescription: description,
		RequireApproval: requireApproval,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"plan_id":    p.ID,
		"session_id": p.SessionID,
		"status":     string(p.Status),
	})
}

// listPlansHandler handles GET /api/plans.
func (s *Server) listPlansHandler(c *gin.Context) {
	filters := models.PlanFilters{
		SessionID: c.Query("session_id"),
		Limit:     50,
	}

	if v := c.Query("status"); v != "" {
		if err := plan.StatusValidator(plan.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v, "field": "status"})
			return
		}
		filters.Status = v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339", "field": "created_after"})
			return
		}
		filters.CreatedAfter = &t
	}

	result, err := s.plans.ListPlans(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getPlanHandler handles GET /api/plan. The durable detail is enriched with
// the live approval record and workflow snapshot when the plan is still in
// memory.
func (s *Server) getPlanHandler(c *gin.Context) {
	planID := c.Query("plan_id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}

	detail, err := s.plans.GetDetail(c.Request.Context(), planID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if view, ok := s.approvals.View(planID); ok {
		detail.Approval = view
	}
	if snap, ok := s.orch.Snapshot(planID); ok {
		detail.WorkflowState = snap
	}

	c.JSON(http.StatusOK, detail)
}

// cancelPlanHandler handles POST /api/plan_cancel.
func (s *Server) cancelPlanHandler(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}

	if err := s.orch.Cancel(req.PlanID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan_id": req.PlanID,
		"message": "plan cancellation requested",
	})
}
