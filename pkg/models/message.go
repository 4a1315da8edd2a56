package models

// CreateMessageRequest contains fields for appending an agent message to a
// plan's durable conversation. The sequence number is assigned by the message
// service, never by callers.
type CreateMessageRequest struct {
	PlanID          string         `json:"plan_id"`
	AgentName       string         `json:"agent_name"`
	Kind            string         `json:"kind"`
	Content         string         `json:"content"`
	MessageMetadata map[string]any `json:"message_metadata,omitempty"`
}

// CreateEventRequest contains fields for persisting a durable event envelope.
type CreateEventRequest struct {
	PlanID  string `json:"plan_id"`
	Channel string `json:"channel"`
	Payload string `json:"payload"`
}
