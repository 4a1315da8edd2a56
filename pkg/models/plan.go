// Package models defines shared request/response types used across the
// service and API layers.
package models

import (
	"time"

	"github.com/finovant/macaw/ent"
)

// CreatePlanRequest contains fields for creating a new workflow plan.
type CreatePlanRequest struct {
	SessionID       string         `json:"session_id"`
	TaskDescription string         `json:"task_description"`
	RequireApproval bool           `json:"require_approval"`
	RestartedFrom   string         `json:"restarted_from,omitempty"`
	PlanMetadata    map[string]any `json:"plan_metadata,omitempty"`
}

// PlanFilters contains filtering options for listing plans.
type PlanFilters struct {
	SessionID      string     `json:"session_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// PlanListResponse contains a paginated plan list.
type PlanListResponse struct {
	Plans      []*ent.Plan `json:"plans"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// PlanDetail is the full picture of one workflow: the durable plan row, its
// steps and conversation, plus the live in-memory workflow and approval view.
type PlanDetail struct {
	Plan          *ent.Plan           `json:"plan"`
	Steps         []*ent.PlanStep     `json:"steps"`
	Messages      []*ent.AgentMessage `json:"messages"`
	WorkflowState *WorkflowSnapshot   `json:"workflow_state,omitempty"`
	Approval      *ApprovalView       `json:"approval,omitempty"`
}

// StepSeed describes one node of a compiled graph for durable step creation.
type StepSeed struct {
	Index           int    `json:"index"`
	AgentName       string `json:"agent_name"`
	InterruptBefore bool   `json:"interrupt_before"`
}

// PlannedUpdate carries the planner's output onto the durable plan row.
type PlannedUpdate struct {
	Sequence   []string `json:"sequence"`
	GraphType  string   `json:"graph_type"`
	GraphID    string   `json:"graph_id"`
	Summary    string   `json:"summary"`
	Complexity float64  `json:"complexity"`
	Source     string   `json:"source"`
}

// ApprovalView exposes the approval manager's record for a plan.
type ApprovalView struct {
	Current            string           `json:"current"`
	Previous           string           `json:"previous,omitempty"`
	ChangedAt          time.Time        `json:"changed_at"`
	PendingCheckpoint  string           `json:"pending_checkpoint,omitempty"`
	ExecutionHeld      bool             `json:"execution_held"`
	History            []ApprovalChange `json:"history,omitempty"`
	ClarificationAsked bool             `json:"clarification_asked,omitempty"`
}

// ApprovalChange is one recorded state transition.
type ApprovalChange struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}
