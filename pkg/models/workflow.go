package models

import "time"

// WorkflowSnapshot is a read-only view of an in-flight workflow's state,
// exposed through GET /api/plan while the workflow is live.
type WorkflowSnapshot struct {
	PlanID          string           `json:"plan_id"`
	SessionID       string           `json:"session_id"`
	TaskDescription string           `json:"task_description"`
	AgentSequence   []string         `json:"agent_sequence"`
	CurrentStep     int              `json:"current_step"`
	Results         []StepResultView `json:"results,omitempty"`
	FinalResult     string           `json:"final_result,omitempty"`
	RequireApproval bool             `json:"require_approval"`
	AwaitingInput   bool             `json:"awaiting_input"`
	StartedAt       time.Time        `json:"started_at"`
	Collected       map[string]any   `json:"collected,omitempty"`
}

// StepResultView is one agent's outcome inside a WorkflowSnapshot.
type StepResultView struct {
	Agent      string `json:"agent"`
	Status     string `json:"status"`
	Summary    string `json:"summary,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}
