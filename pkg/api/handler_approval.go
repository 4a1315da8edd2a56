package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// planApprovalHandler handles POST /api/plan_approval: a plan-checkpoint or
// result-checkpoint verdict, depending on where the plan is waiting.
func (s *Server) planApprovalHandler(c *gin.Context) {
	var req PlanApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	planID := req.planID()
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}

	view, ok := s.approvals.View(planID)
	if ok && view.PendingCheckpoint == "result" {
		restarted, err := s.orch.SubmitResultApproval(c.Request.Context(), planID, req.Approved, req.Feedback)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		resp := gin.H{"plan_id": planID, "approved": req.Approved}
		if restarted != nil {
			resp["restarted_plan_id"] = restarted.ID
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	err := s.orch.SubmitPlanApproval(c.Request.Context(), planID, req.Approved, req.ModifiedSequence, req.Feedback)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan_id":  planID,
		"approved": req.Approved,
		"modified": len(req.ModifiedSequence) > 0,
	})
}

// userClarificationHandler handles POST /api/user_clarification: a free-text
// answer interpreted into a verdict for the pending checkpoint.
func (s *Server) userClarificationHandler(c *gin.Context) {
	var req ClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}
	if strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer is required", "field": "answer"})
		return
	}

	result, err := s.orch.Clarify(c.Request.Context(), req.PlanID, req.Answer)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := gin.H{
		"plan_id":    req.PlanID,
		"verdict":    result.Verdict.String(),
		"checkpoint": result.Checkpoint,
	}
	if result.Restarted != nil {
		resp["restarted_plan_id"] = result.Restarted.ID
	}
	c.JSON(http.StatusOK, resp)
}

// extractionApprovalHandler handles POST /api/extraction_approval: a verdict
// on extracted data, optionally with human edits applied before downstream
// steps run.
func (s *Server) extractionApprovalHandler(c *gin.Context) {
	var req ExtractionApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}

	restarted, err := s.orch.SubmitExtractionApproval(c.Request.Context(), req.PlanID, req.Approved, req.EditedData, req.Feedback)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := gin.H{"plan_id": req.PlanID, "approved": req.Approved}
	if restarted != nil {
		resp["restarted_plan_id"] = restarted.ID
	}
	c.JSON(http.StatusOK, resp)
}
