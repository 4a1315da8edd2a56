package events

import "time"

// Envelope is the wire shape of every server → client message:
//
//	{"type": "...", "data": {...}, "timestamp": RFC3339, "event_id": n?}
//
// EventID is set only on durable envelopes (it is the events row id) and only
// on the NOTIFY/catchup copies; the stored payload omits it because the row id
// is not known until after the insert.
type Envelope struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	EventID   int64  `json:"event_id,omitempty"`
}

// NewEnvelope wraps a typed data payload with its type tag and a UTC
// timestamp.
func NewEnvelope(eventType string, data any) Envelope {
	return Envelope{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// PlanCreatedData is the data payload for plan_created envelopes.
// Published when a new plan row is created from a user request.
type PlanCreatedData struct {
	PlanID          string `json:"plan_id"`
	SessionID       string `json:"session_id"`
	TaskDescription string `json:"task_description"`
	Status          string `json:"status"`
}

// PlanApprovalRequestData is the data payload for plan_approval_request
// envelopes. Published when a workflow suspends awaiting human approval:
// Kind "plan" before execution (the proposed sequence), "result" after the
// final step when the workflow requires result sign-off.
type PlanApprovalRequestData struct {
	PlanID            string   `json:"plan_id"`
	Kind              string   `json:"kind"`
	Sequence          []string `json:"sequence"`
	Summary           string   `json:"summary,omitempty"`
	Complexity        float64  `json:"complexity"`
	EstimatedDuration string   `json:"estimated_duration,omitempty"`
}

// PlanApprovedData is the data payload for plan_approved envelopes.
// Modified is true when the approver edited the agent sequence.
type PlanApprovedData struct {
	PlanID   string   `json:"plan_id"`
	Sequence []string `json:"sequence"`
	Modified bool     `json:"modified"`
}

// PlanRejectedData is the data payload for plan_rejected envelopes.
type PlanRejectedData struct {
	PlanID   string `json:"plan_id"`
	Feedback string `json:"feedback,omitempty"`
}

// AgentStartedData is the data payload for agent_started envelopes.
// StepIndex is 1-based.
type AgentStartedData struct {
	PlanID     string `json:"plan_id"`
	AgentName  string `json:"agent_name"`
	StepIndex  int    `json:"step_index"`
	TotalSteps int    `json:"total_steps"`
}

// AgentMessageData is the data payload for agent_message envelopes. Sequence
// is the durable per-plan message sequence number: the row is always written
// before this envelope is published.
type AgentMessageData struct {
	PlanID    string `json:"plan_id"`
	AgentName string `json:"agent_name"`
	Kind      string `json:"kind"`
	Content   string `json:"content"`
	Sequence  int    `json:"sequence"`
}

// StepProgressData is the data payload for step_progress envelopes.
// Published when a step reaches a terminal step status.
type StepProgressData struct {
	PlanID     string `json:"plan_id"`
	AgentName  string `json:"agent_name"`
	StepIndex  int    `json:"step_index"`
	TotalSteps int    `json:"total_steps"`
	Status     string `json:"status"` // completed, failed, skipped
	Summary    string `json:"summary,omitempty"`
}

// ProgressUpdateData is the data payload for progress_update envelopes.
// Published on every approval state change; Detail carries the failure
// reason for FAILED and TIMEOUT.
type ProgressUpdateData struct {
	PlanID string `json:"plan_id"`
	State  string `json:"state"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// FinalResultData is the data payload for final_result_message envelopes.
type FinalResultData struct {
	PlanID string `json:"plan_id"`
	Result string `json:"result"`
}

// ExtractionApprovalRequestData is the data payload for
// extraction_approval_request envelopes. Fields holds the structured values
// the agent pulled from the source document, awaiting human review.
type ExtractionApprovalRequestData struct {
	PlanID    string         `json:"plan_id"`
	AgentName string         `json:"agent_name"`
	Fields    map[string]any `json:"fields"`
}

// StreamData is the data payload for the three agent_stream_* transient
// envelopes. Delta is set only on agent_streaming.
type StreamData struct {
	PlanID    string `json:"plan_id"`
	AgentName string `json:"agent_name,omitempty"`
	StreamID  string `json:"stream_id"`
	Delta     string `json:"delta,omitempty"`
}

// ErrorData is the data payload for error envelopes.
type ErrorData struct {
	PlanID  string `json:"plan_id,omitempty"`
	Message string `json:"message"`
}
