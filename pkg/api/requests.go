package api

// ProcessRequest is the body of POST /api/process_request.
type ProcessRequest struct {
	SessionID   string `json:"session_id"`
	Description string `json:"description"`

	// RequirePlanApproval overrides the server's HITL default when set.
	RequirePlanApproval *bool `json:"require_plan_approval,omitempty"`
}

// PlanApprovalRequest is the body of POST /api/plan_approval. MPlanID is the
// legacy alias some clients still send; PlanID wins when both are set.
type PlanApprovalRequest struct {
	PlanID           string   `json:"plan_id"`
	MPlanID          string   `json:"m_plan_id"`
	Approved         bool     `json:"approved"`
	ModifiedSequence []string `json:"modified_sequence,omitempty"`
	Feedback         string   `json:"feedback,omitempty"`
}

func (r *PlanApprovalRequest) planID() string {
	if r.PlanID != "" {
		return r.PlanID
	}
	return r.MPlanID
}

// ClarificationRequest is the body of POST /api/user_clarification.
type ClarificationRequest struct {
	PlanID    string `json:"plan_id"`
	RequestID string `json:"request_id,omitempty"`
	Answer    string `json:"answer"`
}

// ExtractionApprovalRequest is the body of POST /api/extraction_approval.
type ExtractionApprovalRequest struct {
	PlanID     string         `json:"plan_id"`
	Approved   bool           `json:"approved"`
	EditedData map[string]any `json:"edited_data,omitempty"`
	Feedback   string         `json:"feedback,omitempty"`
}

// CancelRequest is the body of POST /api/plan_cancel.
type CancelRequest struct {
	PlanID string `json:"plan_id"`
}
