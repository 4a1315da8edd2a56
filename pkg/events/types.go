// Package events delivers workflow envelopes to WebSocket clients, with
// PostgreSQL NOTIFY/LISTEN carrying them between pods.
//
// Envelopes come in two tiers. Durable envelopes are written to the events
// table and broadcast in the same transaction; the row id becomes the
// envelope's event_id, which clients track as last_event_id for catchup
// after a reconnect. Transient envelopes (stream deltas, global progress
// ticks) are NOTIFY-only: lost on disconnect, with the final content always
// arriving through a durable envelope.
//
// Agent output streams follow a three-part pattern:
//
//	agent_stream_start  {stream_id}
//	agent_streaming     {stream_id, delta}  (repeated, transient)
//	agent_stream_end    {stream_id}
//
// followed by a durable agent_message carrying the full text. Clients
// concatenate deltas for a live typing effect but must treat the
// agent_message as authoritative.
package events

// Durable event types (events row + NOTIFY).
const (
	EventTypePlanCreated               = "plan_created"
	EventTypePlanApprovalRequest       = "plan_approval_request"
	EventTypePlanApproved              = "plan_approved"
	EventTypePlanRejected              = "plan_rejected"
	EventTypeAgentStarted              = "agent_started"
	EventTypeAgentMessage              = "agent_message"
	EventTypeStepProgress              = "step_progress"
	EventTypeProgressUpdate            = "progress_update"
	EventTypeFinalResult               = "final_result_message"
	EventTypeExtractionApprovalRequest = "extraction_approval_request"
	EventTypeError                     = "error"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeStreamStart = "agent_stream_start"
	EventTypeStreaming   = "agent_streaming"
	EventTypeStreamEnd   = "agent_stream_end"
)

// Control event types emitted by the connection manager, never published.
const (
	EventTypeConnectionEstablished = "connection.established"
	EventTypeSubscriptionConfirmed = "subscription.confirmed"
	EventTypeCatchupBatch          = "catchup.batch"
	EventTypeCatchupOverflow       = "catchup.overflow"
	EventTypePong                  = "pong"
)

// GlobalPlansChannel carries plan lifecycle envelopes (plan_created, state
// changes) for dashboard-style subscribers that watch every plan.
const GlobalPlansChannel = "plans"

// planChannelPrefix prefixes per-plan channel names.
const planChannelPrefix = "plan:"

// PlanChannel returns the channel name for a specific plan's events.
// Format: "plan:{plan_id}"
func PlanChannel(planID string) string {
	return planChannelPrefix + planID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // channel name (e.g. "plan:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
